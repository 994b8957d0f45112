package repository

import (
	"context"
	"encoding/json"

	"quoteflow/internal/domain/quote"
	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/pkg/pgconv"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type QuoteRepository struct{}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

var _ shared.QuoteRepository = (*QuoteRepository)(nil)

func lineItemsJSON(items []quote.LineItem) ([]byte, error) {
	rows := make([]shared.QuoteLineItem, len(items))
	for i, li := range items {
		rows[i] = shared.QuoteLineItem{
			Service:  li.Service(),
			Quantity: li.Quantity(),
			Hours:    li.Hours(),
			Rate:     li.Rate(),
			Subtotal: li.Subtotal(),
		}
	}
	return json.Marshal(rows)
}

func (r *QuoteRepository) Create(ctx context.Context, tx db.DBTX, q *quote.Quote) (uuid.UUID, error) {
	items, err := lineItemsJSON(q.LineItems())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode line items", err)
	}

	const query = `
		INSERT INTO quotes (
			id, quote_request_id, vendor_id, customer_id,
			line_items, total, deposit_percent, balance_percent,
			validity_duration, custom_expiry_date, personal_message,
			status, revision, sent_at, expires_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`

	_, err = tx.Exec(ctx, query,
		q.ID(), q.QuoteRequestID(), q.VendorID(), q.CustomerID(),
		items, q.Total(), q.PaymentTerms().DepositPercent(), q.PaymentTerms().BalancePercent(),
		string(q.Validity().Duration()), pgconv.TimePtrToPgtype(q.Validity().CustomExpiry()), q.PersonalMessage(),
		q.Status().String(), q.Revision(), pgconv.TimePtrToPgtype(q.SentAt()), pgconv.TimePtrToPgtype(q.ExpiresAt()),
		q.CreatedAt(), q.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("active quote already exists for quote request", err, infra.KindConflict)
		}
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("quote request does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create quote", err)
	}
	return q.ID(), nil
}

// Save writes every mutable field under the compare-and-swap precondition.
// Zero affected rows means a concurrent transition won.
func (r *QuoteRepository) Save(ctx context.Context, tx db.DBTX, q *quote.Quote, expected shared.CAS) (int64, error) {
	items, err := lineItemsJSON(q.LineItems())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode line items", err)
	}

	const query = `
		UPDATE quotes SET
			line_items = $1, total = $2,
			deposit_percent = $3, balance_percent = $4,
			validity_duration = $5, custom_expiry_date = $6,
			personal_message = $7, status = $8, revision = $9,
			sent_at = $10, expires_at = $11, updated_at = $12,
			version = version + 1
		WHERE id = $13 AND status = $14 AND version = $15`

	tag, err := tx.Exec(ctx, query,
		items, q.Total(),
		q.PaymentTerms().DepositPercent(), q.PaymentTerms().BalancePercent(),
		string(q.Validity().Duration()), pgconv.TimePtrToPgtype(q.Validity().CustomExpiry()),
		q.PersonalMessage(), q.Status().String(), q.Revision(),
		pgconv.TimePtrToPgtype(q.SentAt()), pgconv.TimePtrToPgtype(q.ExpiresAt()), q.UpdatedAt(),
		q.ID(), expected.Status, expected.Version,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to save quote", err)
	}
	return tag.RowsAffected(), nil
}

func (r *QuoteRepository) ArchiveRevision(ctx context.Context, tx db.DBTX, prior *shared.QuoteSnapshot, decisionNote *string) error {
	items, err := json.Marshal(prior.LineItems)
	if err != nil {
		return infra.WrapRepoErr("failed to encode archived line items", err)
	}

	const query = `
		INSERT INTO quote_revisions (
			id, quote_id, revision, line_items, total,
			deposit_percent, balance_percent, personal_message,
			status, decision_note, expires_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err = tx.Exec(ctx, query,
		uuid.New(), prior.ID, prior.Revision, items, prior.Total,
		prior.DepositPercent, prior.BalancePercent, prior.PersonalMessage,
		prior.Status, pgconv.StringPtrToPgtype(decisionNote), pgconv.TimePtrToPgtype(prior.ExpiresAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to archive quote revision", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return asPgError(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return asPgError(err, &pgErr) && pgErr.Code == "23503"
}
