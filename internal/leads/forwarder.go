package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dentadvisor-quiz-service/internal/domain"
)

// Forwarder delivers a captured lead to a downstream sink.
type Forwarder interface {
	Submit(ctx context.Context, lead domain.Lead) error
}

// HTTPForwarder posts leads as JSON to an external intake endpoint.
type HTTPForwarder struct {
	endpoint string
	client   *http.Client
}

func NewHTTPForwarder(endpoint string, client *http.Client) *HTTPForwarder {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPForwarder{endpoint: endpoint, client: client}
}

func (f *HTTPForwarder) Submit(ctx context.Context, lead domain.Lead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("forward lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("forward lead: endpoint returned %d", resp.StatusCode)
	}
	return nil
}

type multi []Forwarder

// Multi fans a lead out to every sink. All sinks are attempted even
// when an earlier one fails.
func Multi(fs ...Forwarder) Forwarder {
	return multi(fs)
}

func (m multi) Submit(ctx context.Context, lead domain.Lead) error {
	var errs []error
	for _, f := range m {
		if err := f.Submit(ctx, lead); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
