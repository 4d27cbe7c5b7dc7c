package notification

import (
	"context"
	"log/slog"
)

// TransferEvent describes a completed outgoing transfer.
type TransferEvent struct {
	SenderPhone string  `json:"senderPhone"`
	Receiver    string  `json:"receiver"`
	Bank        string  `json:"bank"`
	Account     string  `json:"account"`
	Amount      float64 `json:"amount"`
	NewBalance  float64 `json:"newBalance"`
	Timestamp   string  `json:"timestamp"`
}

// Notifier delivers transfer events to downstream systems. Delivery is
// best-effort; a failed notification never fails the transfer.
type Notifier interface {
	Send(ctx context.Context, event TransferEvent) error
}

// LoggerNotifier writes events to the structured logger. It is the
// default when no message broker is configured.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the event to the logger.
func (n *LoggerNotifier) Send(_ context.Context, event TransferEvent) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("transfer completed",
		"sender", event.SenderPhone,
		"receiver", event.Receiver,
		"bank", event.Bank,
		"amount", event.Amount,
		"newBalance", event.NewBalance,
	)
	return nil
}
