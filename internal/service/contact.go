package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"salonweb/internal/apperr"
	"salonweb/internal/contact"
	"salonweb/internal/email"
	"salonweb/internal/metrics"
	"salonweb/internal/model"
	"salonweb/internal/ratelimit"
	"salonweb/internal/repository"
)

var tracer = otel.Tracer("salonweb/internal/service")

// SubmitInput is one contact form post plus request metadata.
type SubmitInput struct {
	Form      contact.Form
	ClientIP  string
	UserAgent string
}

// SubmitResult describes an accepted submission. Dropped is set when the
// honeypot caught a bot: the visitor sees success but nothing is sent.
type SubmitResult struct {
	InquiryID         string              `json:"id"`
	Status            model.InquiryStatus `json:"status"`
	Dropped           bool                `json:"-"`
	ProviderMessageID string              `json:"-"`
}

// ContactService defines the contact form use case.
type ContactService interface {
	// Submit validates the form, applies the honeypot and per-IP rate limit,
	// then emails the inquiry to the salon. It never retries delivery.
	// Errors are *apperr.Error values classified as validation, rate_limited,
	// network or server failures.
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)
}

// Limiter counts submissions per key.
type Limiter interface {
	Allow(key string) ratelimit.Decision
}

// OutcomeRecorder counts submissions by outcome.
type OutcomeRecorder interface {
	Observe(outcome string)
}

// ContactOptions configures NewContactService.
type ContactOptions struct {
	Recipient string
	From      string
	// Repo archives inquiries when set.
	Repo     repository.InquiryRepository
	Recorder OutcomeRecorder
	Logger   *zap.Logger
	Now      func() time.Time
	NewID    func() string
}

type contactService struct {
	mailer  email.Mailer
	limiter Limiter
	opts    ContactOptions
}

// NewContactService constructs a ContactService.
func NewContactService(mailer email.Mailer, limiter Limiter, opts ContactOptions) ContactService {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &contactService{mailer: mailer, limiter: limiter, opts: opts}
}

func (s *contactService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	ctx, span := tracer.Start(ctx, "contact.submit")
	defer span.End()

	log := s.opts.Logger.With(zap.String("client_ip", in.ClientIP))

	if fields := contact.Validate(in.Form); fields != nil {
		s.observe(metrics.OutcomeInvalid)
		span.SetAttributes(attribute.String("contact.outcome", metrics.OutcomeInvalid))
		return nil, apperr.Validation(fields)
	}

	form := contact.Normalize(in.Form)
	id := s.opts.NewID()

	if contact.IsSpam(form) {
		s.observe(metrics.OutcomeSpam)
		span.SetAttributes(attribute.String("contact.outcome", metrics.OutcomeSpam))
		log.Info("contact_honeypot_triggered")
		return &SubmitResult{InquiryID: id, Status: model.InquirySent, Dropped: true}, nil
	}

	if d := s.limiter.Allow(in.ClientIP); !d.Allowed {
		s.observe(metrics.OutcomeRateLimited)
		span.SetAttributes(attribute.String("contact.outcome", metrics.OutcomeRateLimited))
		log.Warn("contact_rate_limited", zap.Int("count", d.Count), zap.Duration("retry_after", d.RetryAfter))
		return nil, apperr.RateLimited(d.RetryAfter)
	}

	now := s.opts.Now().UTC()
	inq := model.Inquiry{
		ID:        id,
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Service:   form.Service,
		Message:   form.Message,
		ClientIP:  in.ClientIP,
		UserAgent: in.UserAgent,
		Status:    model.InquiryPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(attribute.String("contact.inquiry_id", id))

	archived := s.archive(ctx, log, &inq)

	msg, err := email.InquiryMessage(ctx, inq, s.opts.From, s.opts.Recipient)
	if err != nil {
		s.observe(metrics.OutcomeProviderError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, apperr.E(apperr.KindServer, err)
	}

	res, err := s.mailer.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		if archived {
			s.updateStatus(ctx, log, id, repository.StatusUpdate{Status: model.InquiryFailed, LastError: err.Error()})
		}
		return nil, s.deliveryError(log, inq, err)
	}

	if archived {
		s.updateStatus(ctx, log, id, repository.StatusUpdate{Status: model.InquirySent, ProviderMessageID: res.ID})
	}
	s.observe(metrics.OutcomeSent)
	span.SetAttributes(attribute.String("contact.outcome", metrics.OutcomeSent))
	log.Info("contact_inquiry_sent", zap.String("inquiry_id", id), zap.String("provider_message_id", res.ID))

	return &SubmitResult{InquiryID: id, Status: model.InquirySent, ProviderMessageID: res.ID}, nil
}

func (s *contactService) deliveryError(log *zap.Logger, inq model.Inquiry, err error) error {
	if errors.Is(err, email.ErrNetwork) {
		s.observe(metrics.OutcomeNetworkError)
		log.Error("contact_delivery_unreachable", zap.String("inquiry_id", inq.ID), zap.Error(err))
		appErr := apperr.E(apperr.KindNetwork, err)
		appErr.Mailto = email.Mailto(s.opts.Recipient, inq)
		return appErr
	}

	s.observe(metrics.OutcomeProviderError)
	log.Error("contact_delivery_failed", zap.String("inquiry_id", inq.ID), zap.Error(err))

	var perr *email.ProviderError
	if errors.As(err, &perr) && perr.Rejected() {
		appErr := apperr.E(apperr.KindValidation, err)
		appErr.Message = "We couldn't deliver a message with those details. Please double-check your email address."
		return appErr
	}
	return apperr.E(apperr.KindServer, err)
}

// archive stores the inquiry as pending. Failures are logged and never block delivery.
func (s *contactService) archive(ctx context.Context, log *zap.Logger, inq *model.Inquiry) bool {
	if s.opts.Repo == nil {
		return false
	}
	if err := s.opts.Repo.Create(ctx, inq); err != nil {
		log.Warn("contact_archive_failed", zap.String("inquiry_id", inq.ID), zap.Error(err))
		return false
	}
	return true
}

func (s *contactService) updateStatus(ctx context.Context, log *zap.Logger, id string, u repository.StatusUpdate) {
	u.UpdatedAt = s.opts.Now().UTC()
	if err := s.opts.Repo.UpdateStatus(ctx, id, u); err != nil {
		log.Warn("contact_archive_status_failed", zap.String("inquiry_id", id), zap.Error(err))
	}
}

func (s *contactService) observe(outcome string) {
	if s.opts.Recorder != nil {
		s.opts.Recorder.Observe(outcome)
	}
}
