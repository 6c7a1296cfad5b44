package processor

import (
	"context"
	"errors"
	"fmt"

	"reception-server/internal/observability"
)

var (
	ErrMailNotConfigured = errors.New("email sender is not configured")
	ErrSendFailed        = errors.New("failed to send email")
)

// Mailer delivers one plain-text email and returns the provider message ID.
type Mailer interface {
	SendEmail(ctx context.Context, from, to, subject, textContent string) (string, error)
}

type EmailProcessor struct {
	mailer        Mailer
	defaultSender string
	logger        *observability.Logger
}

// New creates an EmailProcessor. A nil mailer or empty sender means the
// notifier credentials were absent at startup; sends then fail with
// ErrMailNotConfigured.
func New(mailer Mailer, defaultSender string, logger *observability.Logger) *EmailProcessor {
	return &EmailProcessor{
		mailer:        mailer,
		defaultSender: defaultSender,
		logger:        logger,
	}
}

// SendNotification sends one email from the configured sender. Single
// synchronous attempt, no retry.
func (p *EmailProcessor) SendNotification(ctx context.Context, to, subject, message string) error {
	if p.mailer == nil || p.defaultSender == "" {
		return ErrMailNotConfigured
	}

	if _, err := p.mailer.SendEmail(ctx, p.defaultSender, to, subject, message); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
