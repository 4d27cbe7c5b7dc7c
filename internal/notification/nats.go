package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// TransferSubject is the NATS subject transfer events are published to.
const TransferSubject = "minibank.transfers"

// NATSNotifier publishes transfer events as JSON to a NATS subject.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
}

// NewNATSNotifier constructs a notifier over an established connection.
func NewNATSNotifier(conn *nats.Conn, subject string) *NATSNotifier {
	if subject == "" {
		subject = TransferSubject
	}
	return &NATSNotifier{conn: conn, subject: subject}
}

// Send publishes the event.
func (n *NATSNotifier) Send(_ context.Context, event TransferEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode transfer event: %w", err)
	}
	if err := n.conn.Publish(n.subject, payload); err != nil {
		return fmt.Errorf("publish transfer event: %w", err)
	}
	return nil
}
