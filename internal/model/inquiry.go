package model

import "time"

// InquiryStatus tracks delivery of a contact inquiry to the salon inbox.
type InquiryStatus string

const (
	InquiryPending InquiryStatus = "pending"
	InquirySent    InquiryStatus = "sent"
	InquiryFailed  InquiryStatus = "failed"
)

// Inquiry is one contact form submission.
type Inquiry struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone,omitempty"`
	Service           string        `json:"service,omitempty"`
	Message           string        `json:"message"`
	ClientIP          string        `json:"-"`
	UserAgent         string        `json:"-"`
	Status            InquiryStatus `json:"status"`
	ProviderMessageID string        `json:"provider_message_id,omitempty"`
	LastError         string        `json:"-"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
