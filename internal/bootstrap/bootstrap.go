package bootstrap

import (
	"context"
	"fmt"

	"reception-server/internal/config"
	"reception-server/internal/observability"

	bookingHandler "reception-server/internal/booking/handler"
	bookingProcessor "reception-server/internal/booking/processor"
	"reception-server/internal/clients/groq"
	"reception-server/internal/clients/mail"
	"reception-server/internal/clients/sheets"
	emailHandler "reception-server/internal/email/handler"
	emailProcessor "reception-server/internal/email/processor"
	relayHandler "reception-server/internal/relay/handler"
	relayProcessor "reception-server/internal/relay/processor"
	voiceCallHandler "reception-server/internal/voicecall/handler"
	voiceCallProcessor "reception-server/internal/voicecall/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Logger *observability.Logger

	VoiceCallHandler voiceCallHandler.Handler
	BookingHandler   bookingHandler.Handler
	EmailHandler     emailHandler.Handler
	RelayHandler     relayHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	groqClient, err := groq.NewClient(groq.Config{
		APIKey:  cfg.Completion.APIKey,
		Model:   cfg.Completion.Model,
		Timeout: cfg.Completion.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq client: %w", err)
	}

	if cfg.Voice.PublicBaseURL == "" {
		logger.Warn(ctx, "PUBLIC_BASE_URL is not set: the gather prompt will have no callback target and Twilio cannot post transcriptions back")
	}

	voiceProcessor := voiceCallProcessor.New(groqClient, cfg.Voice.PublicBaseURL, logger)
	deps.VoiceCallHandler = voiceCallHandler.New(voiceProcessor, logger)

	// Booking ledger is optional; without credentials the endpoint reports
	// a configuration error per request instead of failing mid-append.
	var ledger bookingProcessor.BookingLedger
	if cfg.LedgerConfigured() {
		sheetsClient, err := sheets.NewClient(ctx, sheets.Credentials{
			ClientEmail: cfg.Ledger.ClientEmail,
			PrivateKey:  cfg.Ledger.PrivateKey,
		}, cfg.Ledger.SpreadsheetID, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets client: %w", err)
		}
		ledger = sheetsClient
	} else {
		logger.Warn(ctx, "booking ledger credentials are not set: /api/booking will reject requests")
	}
	deps.BookingHandler = bookingHandler.New(bookingProcessor.New(ledger, logger), logger)

	// Mail notifier is optional the same way
	var mailer emailProcessor.Mailer
	if cfg.MailConfigured() {
		mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		mailer = mailClient
	} else {
		logger.Warn(ctx, "email credentials are not set: /api/email will reject requests")
	}
	deps.EmailHandler = emailHandler.New(emailProcessor.New(mailer, cfg.Mail.DefaultSender, logger), logger)

	if cfg.Relay.WebhookURL == "" {
		logger.Warn(ctx, "AUTOMATION_WEBHOOK_URL is not set: /api/send-message will fail")
	}
	deps.RelayHandler = relayHandler.New(relayProcessor.New(cfg.Relay.WebhookURL, logger), logger)

	return deps, nil
}
