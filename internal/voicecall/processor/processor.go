package processor

import (
	"context"
	"strings"

	"reception-server/internal/observability"
	"reception-server/internal/voicecall/twilio"
)

// CompletionClient produces a receptionist reply for one transcribed
// utterance. An empty utterance is valid input. Implementations make a
// single bounded attempt and return an error rather than retrying.
type CompletionClient interface {
	Complete(ctx context.Context, systemInstruction, utterance string) (string, error)
}

// VoiceCallProcessor renders the two documents of the single-turn dialogue.
// It holds no per-call state; the two requests are correlated only by the
// shared callback URL.
type VoiceCallProcessor struct {
	completions CompletionClient
	callbackURL string
	logger      *observability.Logger
}

func New(completions CompletionClient, publicBaseURL string, logger *observability.Logger) *VoiceCallProcessor {
	callbackURL := ""
	if publicBaseURL != "" {
		callbackURL = strings.TrimSuffix(publicBaseURL, "/") + "/api/twilio"
	}
	return &VoiceCallProcessor{
		completions: completions,
		callbackURL: callbackURL,
		logger:      logger,
	}
}

// GreetingDocument renders the gather-prompt document for the initial
// request. It has no side effects and does not depend on the request.
func (p *VoiceCallProcessor) GreetingDocument() (string, error) {
	return twilio.GatherPrompt(p.callbackURL)
}

// ReplyDocument asks the completion service for a receptionist reply to the
// transcribed utterance and renders it as a speak document. Upstream
// failure and blank replies degrade to the fixed apology; the only error
// this can return is a rendering failure.
func (p *VoiceCallProcessor) ReplyDocument(ctx context.Context, utterance string) (string, error) {
	reply, err := p.completions.Complete(ctx, PersonaInstruction, utterance)
	if err != nil {
		p.logger.Error(ctx, "completion failed, substituting fallback reply", err)
		reply = FallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		reply = FallbackReply
	}
	return twilio.SpeakReply(reply)
}
