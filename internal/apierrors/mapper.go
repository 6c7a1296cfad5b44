package apierrors

import (
	"errors"

	bookingProcessor "reception-server/internal/booking/processor"
	emailProcessor "reception-server/internal/email/processor"
)

// MapError converts domain errors from the sibling processors to APIErrors.
// Unknown errors become a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, bookingProcessor.ErrLedgerNotConfigured):
		return InternalError("A foglalási napló nincs beállítva.")

	case errors.Is(err, bookingProcessor.ErrLedgerAppend):
		return InternalError("Hiba az időpont rögzítésében: " + err.Error())

	case errors.Is(err, emailProcessor.ErrMailNotConfigured):
		return InternalError("Email sender is not configured")

	case errors.Is(err, emailProcessor.ErrSendFailed):
		return InternalError("Failed to send email")
	}

	return InternalError("An internal error occurred. Please try again later.")
}
