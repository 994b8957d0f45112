package repository

import (
	"context"

	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteRequestRepository struct{}

func NewQuoteRequestRepository() *QuoteRequestRepository {
	return &QuoteRequestRepository{}
}

var _ shared.QuoteRequestRepository = (*QuoteRequestRepository)(nil)

func (r *QuoteRequestRepository) Create(ctx context.Context, tx db.DBTX, requestID, vendorID, customerID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	const query = `
		INSERT INTO quote_requests (id, request_id, vendor_id, customer_id)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, id, requestID, vendorID, customerID)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("vendor is already matched to this request", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("request does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create quote request", err)
	}
	return id, nil
}
