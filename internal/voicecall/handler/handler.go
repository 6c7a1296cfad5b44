package handler

import (
	"net/http"

	"reception-server/internal/observability"
	"reception-server/internal/voicecall/processor"

	"github.com/gin-gonic/gin"
)

// fallbackDocument is the last-resort response when even TwiML rendering
// fails. Twilio must always receive a well-formed document; a broken
// response would leave the caller in silence.
const fallbackDocument = `<?xml version="1.0" encoding="UTF-8"?><Response><Say language="hu-HU">Elnézést, hiba történt a feldolgozás során.</Say></Response>`

type Handler struct {
	voiceProcessor *processor.VoiceCallProcessor
	logger         *observability.Logger
}

func New(voiceProcessor *processor.VoiceCallProcessor, logger *observability.Logger) Handler {
	return Handler{
		voiceProcessor: voiceProcessor,
		logger:         logger,
	}
}

// HandleInboundCall answers Twilio's initial request with the gather-prompt
// document. It never fails: a missing public base URL only leaves the
// gather without a callback target.
func (h Handler) HandleInboundCall(c *gin.Context) {
	ctx := c.Request.Context()

	document, err := h.voiceProcessor.GreetingDocument()
	if err != nil {
		h.logger.Error(ctx, "failed to render gather prompt", err)
		document = fallbackDocument
	}

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, document)
}

// HandleSpeechResult answers Twilio's gather callback. The SpeechResult
// form field may be absent or empty when the caller was silent or
// unintelligible; that is a valid turn and still goes to the completion
// service. The response is always 200 with a speak document, regardless of
// backend health.
func (h Handler) HandleSpeechResult(c *gin.Context) {
	ctx := c.Request.Context()

	utterance := c.PostForm("SpeechResult")
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "utterance_length", Value: len(utterance)},
	)

	document, err := h.voiceProcessor.ReplyDocument(ctx, utterance)
	if err != nil {
		h.logger.Error(ctx, "failed to render speak reply", err)
		document = fallbackDocument
	}

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, document)
}
