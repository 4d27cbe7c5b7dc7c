package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	masterKeyHeader  = "X-Master-Key"
	binVersionHeader = "X-Bin-Version"
)

// JSONBinStore reads and writes a single hosted JSON document ("bin") over
// HTTP. Reads unwrap the service's {"record": ...} envelope; writes upload
// the raw payload, replacing the bin contents.
type JSONBinStore struct {
	client *http.Client
	url    string
	apiKey string
}

// NewJSONBinStore builds a store for the given bin. baseURL is the API root
// (e.g. https://api.jsonbin.io/v3) and may point at a test server.
func NewJSONBinStore(baseURL, binID, apiKey string, timeout time.Duration) *JSONBinStore {
	return &JSONBinStore{
		client: &http.Client{Timeout: timeout},
		url:    fmt.Sprintf("%s/b/%s", baseURL, binID),
		apiKey: apiKey,
	}
}

type binEnvelope struct {
	Record json.RawMessage `json:"record"`
}

// Get fetches the bin and returns the unwrapped record.
func (s *JSONBinStore) Get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var envelope binEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrUnavailable, err)
	}
	if len(envelope.Record) == 0 {
		return nil, ErrNotFound
	}
	return envelope.Record, nil
}

// Put replaces the bin contents with payload.
func (s *JSONBinStore) Put(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Ping performs a read and reports the bin reachable even when empty.
func (s *JSONBinStore) Ping(ctx context.Context) error {
	if _, err := s.Get(ctx); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (s *JSONBinStore) setHeaders(req *http.Request) {
	req.Header.Set(masterKeyHeader, s.apiKey)
	req.Header.Set(binVersionHeader, "latest")
}
