package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"salonweb/internal/model"
	"salonweb/internal/repository"
)

// InquiryPostgres is a PostgreSQL implementation of repository.InquiryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type InquiryPostgres struct {
	db *sql.DB
}

// NewInquiryPostgres creates a new InquiryPostgres repository.
func NewInquiryPostgres(db *sql.DB) *InquiryPostgres {
	return &InquiryPostgres{db: db}
}

var _ repository.InquiryRepository = (*InquiryPostgres)(nil)

// Create inserts a new inquiry row.
func (r *InquiryPostgres) Create(ctx context.Context, inq *model.Inquiry) error {
	const q = `
		INSERT INTO inquiries (id, name, email, phone, service, message, client_ip, user_agent, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, q,
		inq.ID,
		inq.Name,
		inq.Email,
		nullable(inq.Phone),
		nullable(inq.Service),
		inq.Message,
		nullable(inq.ClientIP),
		nullable(inq.UserAgent),
		string(inq.Status),
		inq.CreatedAt,
		inq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// UpdateStatus sets status, provider message ID and last error for an inquiry.
func (r *InquiryPostgres) UpdateStatus(ctx context.Context, id string, u repository.StatusUpdate) error {
	const q = `
		UPDATE inquiries
		SET status = $2, provider_message_id = $3, last_error = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		id,
		string(u.Status),
		nullable(u.ProviderMessageID),
		nullable(u.LastError),
		u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
