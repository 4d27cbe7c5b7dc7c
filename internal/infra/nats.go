package infra

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// NewNATSConn dials the NATS server and verifies the connection.
func NewNATSConn(url string) (*nats.Conn, error) {
	if url == "" {
		return nil, fmt.Errorf("nats url is required")
	}

	conn, err := nats.Connect(url, nats.Name("minibank"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return conn, nil
}
