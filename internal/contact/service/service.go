package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/weblior/contact-api/internal/contact/domain"
	"github.com/weblior/contact-api/internal/contact/mailer"
	"github.com/weblior/contact-api/internal/contact/ratelimit"
	"github.com/weblior/contact-api/internal/contact/spam"
	"github.com/weblior/contact-api/internal/contact/validate"
)

const notifyTimeout = 15 * time.Second

// Service runs the contact submission guard pipeline:
// rate limit -> parse -> validate -> spam check -> accept.
//
// The rate-limit slot is charged before parsing on purpose, so a
// malformed or spammy body still spends the client's quota.
type Service struct {
	limiter   ratelimit.Limiter
	validator *validate.SubmissionValidator
	filter    *spam.Filter
	sender    mailer.Sender

	fromAddress   string
	businessEmail string

	now func() time.Time
}

func New(limiter ratelimit.Limiter, v *validate.SubmissionValidator, f *spam.Filter, sender mailer.Sender, fromAddress, businessEmail string) *Service {
	return &Service{
		limiter:       limiter,
		validator:     v,
		filter:        f,
		sender:        sender,
		fromAddress:   fromAddress,
		businessEmail: businessEmail,
		now:           time.Now,
	}
}

// WithClock overrides the service's time source for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit decides whether to accept a raw submission body from the
// given client. Rejections come back as *domain.Rejection; any other
// error is a server-side failure. On acceptance the notification
// emails are sent in the background and never affect the result.
func (s *Service) Submit(ctx context.Context, rawBody []byte, clientID string) (*domain.Accepted, error) {
	logger := NewLogger(ctx)

	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("rate limit check: %w", err)
	}
	if !allowed {
		logger.LogWarnf("submit", "rate limit exceeded client=%s", clientID)
		return nil, domain.NewRejection(domain.KindRateLimited)
	}

	var sub domain.Submission
	if err := json.Unmarshal(rawBody, &sub); err != nil {
		return nil, domain.NewRejection(domain.KindBadRequest)
	}

	if details := s.validator.Validate(&sub); len(details) > 0 {
		return nil, domain.NewValidationRejection(details)
	}

	if reason := s.filter.Check(sub.ProjectPurpose, sub.AdditionalInfo); reason != spam.ReasonNone {
		logger.LogWarnf("submit", "spam heuristic hit reason=%s client=%s", reason, clientID)
		return nil, domain.NewRejection(domain.KindSpamDetected)
	}

	accepted := &domain.Accepted{
		ID: fmt.Sprintf("contact_%d", s.now().UnixNano()),
	}

	logger.LogInfof("submit", "accepted id=%s client=%s", accepted.ID, clientID)

	// Fire and forget: the response must not wait on delivery, and a
	// delivery failure must not turn an accepted submission into an
	// error.
	go s.notify(logger, sub, accepted.ID)

	return accepted, nil
}

func (s *Service) notify(logger *Logger, sub domain.Submission, submissionID string) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogErrorf("notify", "panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if s.businessEmail != "" {
		if err := s.sender.Send(ctx, mailer.OwnerAlert(s.fromAddress, s.businessEmail, &sub, submissionID)); err != nil {
			logger.LogError("notify_owner", err)
		}
	}

	if err := s.sender.Send(ctx, mailer.CustomerReply(s.fromAddress, &sub)); err != nil {
		logger.LogError("notify_customer", err)
	}
}
