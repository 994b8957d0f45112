package readstore

import (
	"context"
	"encoding/json"
	"time"

	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/pkg/pgconv"
	"quoteflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type QuoteReadStore struct {
	db db.DBTX
}

func NewQuoteReadStore(db db.DBTX) *QuoteReadStore {
	return &QuoteReadStore{db: db}
}

var _ queries.QuoteViewRepo = (*QuoteReadStore)(nil)

const quoteRecordColumns = `
	q.id, q.quote_request_id, qr.request_id, cr.title, cr.status,
	q.vendor_id, q.customer_id,
	q.line_items, q.total, q.deposit_percent, q.balance_percent,
	q.validity_duration, q.custom_expiry_date, q.personal_message,
	q.status, q.revision, q.sent_at, q.expires_at,
	q.created_at, q.updated_at`

const quoteRecordFrom = `
	FROM quotes q
	JOIN quote_requests qr ON qr.id = q.quote_request_id
	JOIN customer_requests cr ON cr.id = qr.request_id`

func scanQuoteRecord(row pgx.Row) (*queries.QuoteRecord, error) {
	var (
		rec          queries.QuoteRecord
		rawItems     []byte
		customExpiry pgtype.Timestamptz
		sentAt       pgtype.Timestamptz
		expiresAt    pgtype.Timestamptz
	)
	err := row.Scan(
		&rec.ID, &rec.QuoteRequestID, &rec.RequestID, &rec.RequestTitle, &rec.RequestStatus,
		&rec.VendorID, &rec.CustomerID,
		&rawItems, &rec.Total, &rec.DepositPercent, &rec.BalancePercent,
		&rec.ValidityDuration, &customExpiry, &rec.PersonalMessage,
		&rec.Status, &rec.Revision, &sentAt, &expiresAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawItems, &rec.LineItems); err != nil {
		return nil, err
	}
	rec.CustomExpiryDate = pgconv.TimePtrFromPgtype(customExpiry)
	rec.SentAt = pgconv.TimePtrFromPgtype(sentAt)
	rec.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	return &rec, nil
}

func (r *QuoteReadStore) collectQuoteRecords(ctx context.Context, query string, args ...any) ([]*queries.QuoteRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	defer rows.Close()

	var recs []*queries.QuoteRecord
	for rows.Next() {
		rec, err := scanQuoteRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote rows", err)
	}
	return recs, nil
}

func (r *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteRecord, error) {
	query := `SELECT` + quoteRecordColumns + quoteRecordFrom + ` WHERE q.id = $1`
	rec, err := scanQuoteRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}
	return rec, nil
}

func (r *QuoteReadStore) FindByVendorFirstPage(ctx context.Context, vendorID uuid.UUID, limit int32) ([]*queries.QuoteRecord, error) {
	query := `SELECT` + quoteRecordColumns + quoteRecordFrom + `
		WHERE q.vendor_id = $1
		ORDER BY q.created_at DESC, q.id DESC
		LIMIT $2`
	return r.collectQuoteRecords(ctx, query, vendorID, limit)
}

func (r *QuoteReadStore) FindByVendorKeyset(ctx context.Context, vendorID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.QuoteRecord, error) {
	query := `SELECT` + quoteRecordColumns + quoteRecordFrom + `
		WHERE q.vendor_id = $1 AND (q.created_at, q.id) < ($2, $3)
		ORDER BY q.created_at DESC, q.id DESC
		LIMIT $4`
	return r.collectQuoteRecords(ctx, query, vendorID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *QuoteReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.QuoteRecord, error) {
	query := `SELECT` + quoteRecordColumns + quoteRecordFrom + `
		WHERE q.customer_id = $1
		ORDER BY q.created_at DESC, q.id DESC
		LIMIT $2`
	return r.collectQuoteRecords(ctx, query, customerID, limit)
}

func (r *QuoteReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.QuoteRecord, error) {
	query := `SELECT` + quoteRecordColumns + quoteRecordFrom + `
		WHERE q.customer_id = $1 AND (q.created_at, q.id) < ($2, $3)
		ORDER BY q.created_at DESC, q.id DESC
		LIMIT $4`
	return r.collectQuoteRecords(ctx, query, customerID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *QuoteReadStore) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*queries.QuoteRecord, error) {
	query := `SELECT` + quoteRecordColumns + quoteRecordFrom + `
		WHERE qr.request_id = $1
		ORDER BY q.created_at DESC, q.id DESC`
	return r.collectQuoteRecords(ctx, query, requestID)
}

func (r *QuoteReadStore) FindRevisions(ctx context.Context, quoteID uuid.UUID) ([]*queries.QuoteRevisionView, error) {
	const query = `
		SELECT revision, line_items, total, deposit_percent, balance_percent,
		       personal_message, status, decision_note, expires_at, superseded_at
		FROM quote_revisions
		WHERE quote_id = $1
		ORDER BY revision ASC`

	rows, err := r.db.Query(ctx, query, quoteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quote revisions", err)
	}
	defer rows.Close()

	var views []*queries.QuoteRevisionView
	for rows.Next() {
		var (
			v            queries.QuoteRevisionView
			rawItems     []byte
			decisionNote pgtype.Text
			expiresAt    pgtype.Timestamptz
		)
		err := rows.Scan(
			&v.Revision, &rawItems, &v.Total, &v.DepositPercent, &v.BalancePercent,
			&v.PersonalMessage, &v.Status, &decisionNote, &expiresAt, &v.SupersededAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote revision row", err)
		}
		if err := json.Unmarshal(rawItems, &v.LineItems); err != nil {
			return nil, infra.WrapRepoErr("failed to decode archived line items", err)
		}
		v.DecisionNote = pgconv.StringPtrFromPgtype(decisionNote)
		v.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote revision rows", err)
	}
	return views, nil
}
