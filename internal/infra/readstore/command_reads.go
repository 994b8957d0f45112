package readstore

import (
	"context"
	"encoding/json"

	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/pkg/pgconv"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the snapshot loads the write path needs before applying
// a guard. It is bound to whatever executor the caller is running on, so the
// same code works inside and outside a transaction.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(db db.DBTX) *CommandReads {
	return &CommandReads{db: db}
}

var _ shared.CommandReads = (*CommandReads)(nil)

func (r *CommandReads) QuoteByID(ctx context.Context, id uuid.UUID) (*shared.QuoteSnapshot, error) {
	const query = `
		SELECT q.id, q.quote_request_id, q.vendor_id, q.customer_id,
		       q.line_items, q.total, q.deposit_percent, q.balance_percent,
		       q.validity_duration, q.custom_expiry_date, q.personal_message,
		       q.status, q.revision, q.version, q.sent_at, q.expires_at,
		       cr.status AS request_status,
		       q.created_at, q.updated_at
		FROM quotes q
		JOIN quote_requests qr ON qr.id = q.quote_request_id
		JOIN customer_requests cr ON cr.id = qr.request_id
		WHERE q.id = $1`

	var (
		snap         shared.QuoteSnapshot
		rawItems     []byte
		customExpiry pgtype.Timestamptz
		sentAt       pgtype.Timestamptz
		expiresAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.QuoteRequestID, &snap.VendorID, &snap.CustomerID,
		&rawItems, &snap.Total, &snap.DepositPercent, &snap.BalancePercent,
		&snap.ValidityDuration, &customExpiry, &snap.PersonalMessage,
		&snap.Status, &snap.Revision, &snap.Version, &sentAt, &expiresAt,
		&snap.RequestStatus,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load quote", err)
	}
	if err := json.Unmarshal(rawItems, &snap.LineItems); err != nil {
		return nil, infra.WrapRepoErr("failed to decode line items", err)
	}
	snap.CustomExpiryDate = pgconv.TimePtrFromPgtype(customExpiry)
	snap.SentAt = pgconv.TimePtrFromPgtype(sentAt)
	snap.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	return &snap, nil
}

func (r *CommandReads) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	const query = `
		SELECT cr.id, cr.customer_id, cr.service_category_id,
		       cr.title, cr.description, cr.start_date, cr.end_date,
		       cr.guest_count, cr.location,
		       cr.budget_allocations, cr.attachments,
		       cr.status, cr.version,
		       EXISTS (
		           SELECT 1 FROM quotes q
		           JOIN quote_requests qr ON qr.id = q.quote_request_id
		           WHERE qr.request_id = cr.id AND q.status <> 'draft'
		       ) AS has_vendor_response,
		       cr.created_at, cr.updated_at
		FROM customer_requests cr
		WHERE cr.id = $1`

	var (
		snap      shared.RequestSnapshot
		startDate pgtype.Timestamptz
		endDate   pgtype.Timestamptz
		rawAllocs []byte
		rawAtts   []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.CustomerID, &snap.ServiceCategoryID,
		&snap.Title, &snap.Description, &startDate, &endDate,
		&snap.GuestCount, &snap.Location,
		&rawAllocs, &rawAtts,
		&snap.Status, &snap.Version,
		&snap.HasVendorResponse,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load request", err)
	}
	if err := json.Unmarshal(rawAllocs, &snap.Allocations); err != nil {
		return nil, infra.WrapRepoErr("failed to decode budget allocations", err)
	}
	if err := json.Unmarshal(rawAtts, &snap.Attachments); err != nil {
		return nil, infra.WrapRepoErr("failed to decode attachments", err)
	}
	snap.StartDate = pgconv.TimeFromPgtype(startDate)
	snap.EndDate = pgconv.TimeFromPgtype(endDate)
	return &snap, nil
}

func (r *CommandReads) QuoteRequestByID(ctx context.Context, id uuid.UUID) (*shared.QuoteRequestSnapshot, error) {
	const query = `
		SELECT qr.id, qr.request_id, qr.vendor_id, qr.customer_id,
		       cr.status AS request_status, cr.location,
		       EXISTS (
		           SELECT 1 FROM quotes q
		           WHERE q.quote_request_id = qr.id
		             AND q.status NOT IN ('declined', 'withdrawn', 'expired', 'converted')
		       ) AS has_active_quote,
		       qr.created_at
		FROM quote_requests qr
		JOIN customer_requests cr ON cr.id = qr.request_id
		WHERE qr.id = $1`

	var snap shared.QuoteRequestSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.RequestID, &snap.VendorID, &snap.CustomerID,
		&snap.RequestStatus, &snap.RequestLocation,
		&snap.HasActiveQuote,
		&snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load quote request", err)
	}
	return &snap, nil
}
