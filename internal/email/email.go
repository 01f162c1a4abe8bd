// Package email delivers contact inquiries through a transactional email API.
package email

import (
	"context"
	"errors"
	"fmt"
)

// ErrNetwork marks failures to reach the provider at all (DNS, dial, TLS, timeout).
var ErrNetwork = errors.New("email provider unreachable")

// Message is one outbound email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html,omitempty"`
}

// SendResult is the provider's acknowledgement.
type SendResult struct {
	ID string `json:"id"`
}

// Mailer sends email.
type Mailer interface {
	Send(ctx context.Context, msg Message) (SendResult, error)
}

// ProviderError is a non-2xx response from the provider.
type ProviderError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("email provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("email provider returned status %d: %s", e.StatusCode, e.Message)
}

// Rejected reports whether the provider refused the payload itself, as opposed
// to failing on its side or rejecting our credentials.
func (e *ProviderError) Rejected() bool {
	return e.StatusCode == 400 || e.StatusCode == 422
}
