package handler

import (
	"fmt"
	"net/http"

	"reception-server/internal/apierrors"
	"reception-server/internal/booking/processor"
	"reception-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	bookingProcessor *processor.BookingProcessor
	logger           *observability.Logger
}

func New(bookingProcessor *processor.BookingProcessor, logger *observability.Logger) Handler {
	return Handler{
		bookingProcessor: bookingProcessor,
		logger:           logger,
	}
}

// BookingRequest represents the HTTP request for recording an appointment
type BookingRequest struct {
	Name    string `json:"name" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
}

// HandleCreateBooking handles POST /api/booking
func (h Handler) HandleCreateBooking(c *gin.Context) {
	ctx := c.Request.Context()

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "invalid booking request", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Hiányzó adatok. Név, dátum és időpont szükséges.",
		})
		return
	}

	booking := processor.Booking{
		Name:    req.Name,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
	}

	if err := h.bookingProcessor.RecordBooking(ctx, booking); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Sikeresen rögzítettem %s időpontját %s %s-ra.", req.Name, req.Date, req.Time),
	})
}

// HandleLiveness handles GET /api/booking, used to confirm the endpoint is up
func (h Handler) HandleLiveness(c *gin.Context) {
	c.String(http.StatusOK, "Mosoly Dental booking endpoint működik ✅")
}
