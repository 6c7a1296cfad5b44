package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reception-server/internal/observability"
)

// bookingSheetRange is the ledger tab the clinic staff reads; the tab must
// exist in the spreadsheet.
const bookingSheetRange = "Foglalások!A:F"

var (
	ErrLedgerNotConfigured = errors.New("booking ledger is not configured")
	ErrLedgerAppend        = errors.New("failed to record booking")
)

// BookingLedger appends one row to the remote spreadsheet.
type BookingLedger interface {
	AppendRow(ctx context.Context, sheetRange string, row []interface{}) error
}

// Booking is one confirmed appointment to persist.
type Booking struct {
	Name    string
	Phone   string
	Date    string
	Time    string
	Service string
}

type BookingProcessor struct {
	ledger BookingLedger
	logger *observability.Logger
}

// New creates a BookingProcessor. A nil ledger means the spreadsheet
// credentials were absent at startup; every append then fails with
// ErrLedgerNotConfigured instead of surfacing mid-call auth errors.
func New(ledger BookingLedger, logger *observability.Logger) *BookingProcessor {
	return &BookingProcessor{
		ledger: ledger,
		logger: logger,
	}
}

// RecordBooking appends a timestamped row for the booking. Single attempt,
// no retry; the ledger append is idempotent only on success.
func (p *BookingProcessor) RecordBooking(ctx context.Context, booking Booking) error {
	if p.ledger == nil {
		return ErrLedgerNotConfigured
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "booking_name", Value: booking.Name},
		observability.Field{Key: "booking_date", Value: booking.Date},
		observability.Field{Key: "booking_time", Value: booking.Time},
	)

	row := []interface{}{
		time.Now().UTC().Format(time.RFC3339),
		booking.Name,
		booking.Phone,
		booking.Date,
		booking.Time,
		booking.Service,
	}

	if err := p.ledger.AppendRow(ctx, bookingSheetRange, row); err != nil {
		p.logger.Error(ctx, "failed to append booking row", err)
		return fmt.Errorf("%w: %v", ErrLedgerAppend, err)
	}

	p.logger.Info(ctx, "booking recorded")
	return nil
}
