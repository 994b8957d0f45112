//go:build unit || e2e

package builder

import (
	"time"

	"quoteflow/internal/usecase/queries"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	QuoteID        uuid.UUID
	QuoteRequestID uuid.UUID
	RequestID      uuid.UUID
	VendorID       uuid.UUID
	CustomerID     uuid.UUID
	Location       string
	Total          float64
	DepositPercent int
	BalancePercent int
	Now            time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		QuoteID:        uuid.New(),
		QuoteRequestID: uuid.New(),
		RequestID:      uuid.New(),
		VendorID:       uuid.New(),
		CustomerID:     uuid.New(),
		Location:       "Lakeside Pavilion",
		Total:          600,
		DepositPercent: 50,
		BalancePercent: 50,
		Now:            time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRecord() shared.BookingRecord {
	return shared.BookingRecord{
		QuoteID:        b.QuoteID,
		QuoteRequestID: b.QuoteRequestID,
		RequestID:      b.RequestID,
		VendorID:       b.VendorID,
		CustomerID:     b.CustomerID,
		Location:       b.Location,
		Total:          b.Total,
		DepositPercent: b.DepositPercent,
		BalancePercent: b.BalancePercent,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:             uuid.New(),
		QuoteID:        b.QuoteID,
		RequestID:      b.RequestID,
		RequestTitle:   "Summer Wedding",
		VendorID:       b.VendorID,
		CustomerID:     b.CustomerID,
		Location:       b.Location,
		Total:          b.Total,
		DepositPercent: b.DepositPercent,
		BalancePercent: b.BalancePercent,
		CreatedAt:      b.Now,
	}
}
