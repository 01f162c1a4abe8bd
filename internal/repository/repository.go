// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"
	"time"

	"salonweb/internal/model"
)

// InquiryRepository archives contact inquiries using SQL queries only.
// No business logic here, strictly persistence operations.
type InquiryRepository interface {
	// Create inserts a new inquiry. The caller provides ID, Status and timestamps.
	Create(ctx context.Context, inq *model.Inquiry) error

	// UpdateStatus records the delivery outcome for an inquiry.
	// It returns ErrNotFound when no row matches id.
	UpdateStatus(ctx context.Context, id string, update StatusUpdate) error
}

// StatusUpdate is the delivery outcome written by UpdateStatus.
type StatusUpdate struct {
	Status            model.InquiryStatus
	ProviderMessageID string
	LastError         string
	UpdatedAt         time.Time
}
