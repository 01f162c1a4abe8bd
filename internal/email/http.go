package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// HTTPMailer posts messages to a Resend-compatible JSON endpoint.
// It is safe for concurrent use by multiple goroutines.
type HTTPMailer struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// HTTPOption customizes an HTTPMailer.
type HTTPOption func(*HTTPMailer)

// WithHTTPClient replaces the default traced client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(m *HTTPMailer) { m.client = c }
}

// NewHTTPMailer creates a mailer for endpoint authenticated by apiKey.
func NewHTTPMailer(endpoint, apiKey string, timeout time.Duration, opts ...HTTPOption) (*HTTPMailer, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("email endpoint is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("email api key is required")
	}
	m := &HTTPMailer{
		endpoint: endpoint,
		apiKey:   apiKey,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

var _ Mailer = (*HTTPMailer)(nil)

// Send delivers msg. Transport failures wrap ErrNetwork; non-2xx responses
// return *ProviderError. No retry is attempted.
func (m *HTTPMailer) Send(ctx context.Context, msg Message) (SendResult, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return SendResult{}, fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return SendResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SendResult{}, decodeProviderError(resp)
	}

	var res SendResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return SendResult{}, fmt.Errorf("decode provider response: %w", err)
	}
	return res, nil
}

func decodeProviderError(resp *http.Response) error {
	perr := &ProviderError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return perr
	}
	var payload struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		perr.Name = payload.Name
		perr.Message = payload.Message
	}
	return perr
}
