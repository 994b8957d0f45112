package repository

import (
	"context"

	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b shared.BookingRecord) (uuid.UUID, error) {
	id := uuid.New()
	const query = `
		INSERT INTO bookings (
			id, quote_id, quote_request_id, request_id, vendor_id, customer_id,
			location, total, deposit_percent, balance_percent
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err := tx.Exec(ctx, query,
		id, b.QuoteID, b.QuoteRequestID, b.RequestID, b.VendorID, b.CustomerID,
		b.Location, b.Total, b.DepositPercent, b.BalancePercent,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking already exists for quote", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
