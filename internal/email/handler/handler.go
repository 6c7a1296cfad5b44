package handler

import (
	"net/http"

	"reception-server/internal/apierrors"
	"reception-server/internal/email/processor"
	"reception-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	emailProcessor *processor.EmailProcessor
	logger         *observability.Logger
}

func New(emailProcessor *processor.EmailProcessor, logger *observability.Logger) Handler {
	return Handler{
		emailProcessor: emailProcessor,
		logger:         logger,
	}
}

// EmailRequest represents the HTTP request for sending a notification email
type EmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// HandleSendEmail handles POST /api/email
func (h Handler) HandleSendEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "invalid email request", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing fields: to, subject and message are required.",
		})
		return
	}

	if err := h.emailProcessor.SendNotification(ctx, req.To, req.Subject, req.Message); err != nil {
		h.logger.Error(ctx, "failed to send notification email", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email sent",
	})
}
