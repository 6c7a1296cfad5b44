package handler

import (
	"net/http"
	"strings"

	"reception-server/internal/observability"
	"reception-server/internal/relay/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	relayProcessor *processor.RelayProcessor
	logger         *observability.Logger
}

func New(relayProcessor *processor.RelayProcessor, logger *observability.Logger) Handler {
	return Handler{
		relayProcessor: relayProcessor,
		logger:         logger,
	}
}

// SendMessageRequest represents the HTTP request for relaying a chat message
type SendMessageRequest struct {
	Message string `json:"message"`
}

// HandleSendMessage handles POST /api/send-message. The relay contract uses
// an error key on failure instead of the booking/email message key.
func (h Handler) HandleSendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Üres üzenet",
		})
		return
	}

	if err := h.relayProcessor.ForwardMessage(ctx, req.Message); err != nil {
		h.logger.Error(ctx, "failed to relay chat message", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Hiba történt az üzenet továbbításakor.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
