// Package metrics holds domain Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Contact submission outcomes.
const (
	OutcomeSent          = "sent"
	OutcomeInvalid       = "invalid"
	OutcomeSpam          = "spam"
	OutcomeRateLimited   = "rate_limited"
	OutcomeNetworkError  = "network_error"
	OutcomeProviderError = "provider_error"
)

// ContactMetrics counts contact form submissions by outcome.
type ContactMetrics struct {
	submissions *prometheus.CounterVec
}

// NewContactMetrics registers the contact collectors on reg.
func NewContactMetrics(reg prometheus.Registerer) (*ContactMetrics, error) {
	m := &ContactMetrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Contact form submissions by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(m.submissions); err != nil {
		return nil, err
	}
	return m, nil
}

// Observe counts one submission.
func (m *ContactMetrics) Observe(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}
