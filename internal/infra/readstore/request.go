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
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

var _ queries.RequestViewRepo = (*RequestReadStore)(nil)

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const query = `
		SELECT cr.id, cr.customer_id, cr.service_category_id,
		       cr.title, cr.description, cr.start_date, cr.end_date,
		       cr.guest_count, cr.location,
		       cr.budget_allocations, cr.attachments,
		       cr.status,
		       EXISTS (
		           SELECT 1 FROM quotes q
		           JOIN quote_requests qr ON qr.id = q.quote_request_id
		           WHERE qr.request_id = cr.id AND q.status <> 'draft'
		       ) AS has_vendor_response,
		       cr.created_at, cr.updated_at
		FROM customer_requests cr
		WHERE cr.id = $1`

	var (
		view      queries.RequestView
		startDate pgtype.Timestamptz
		endDate   pgtype.Timestamptz
		rawAllocs []byte
		rawAtts   []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.CustomerID, &view.ServiceCategoryID,
		&view.Title, &view.Description, &startDate, &endDate,
		&view.GuestCount, &view.Location,
		&rawAllocs, &rawAtts,
		&view.Status,
		&view.HasVendorResponse,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	if err := json.Unmarshal(rawAllocs, &view.Allocations); err != nil {
		return nil, infra.WrapRepoErr("failed to decode budget allocations", err)
	}
	if err := json.Unmarshal(rawAtts, &view.Attachments); err != nil {
		return nil, infra.WrapRepoErr("failed to decode attachments", err)
	}
	view.StartDate = pgconv.TimePtrFromPgtype(startDate)
	view.EndDate = pgconv.TimePtrFromPgtype(endDate)
	return &view, nil
}

const requestListColumns = `
	cr.id, cr.title, cr.start_date, cr.guest_count, cr.status,
	(SELECT count(*) FROM quotes q
	 JOIN quote_requests qr ON qr.id = q.quote_request_id
	 WHERE qr.request_id = cr.id AND q.status <> 'draft') AS quote_count,
	cr.created_at`

func (r *RequestReadStore) collectListItems(ctx context.Context, query string, args ...any) ([]*queries.RequestListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	var items []*queries.RequestListItem
	for rows.Next() {
		var (
			item      queries.RequestListItem
			startDate pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Title, &startDate, &item.GuestCount, &item.Status, &item.QuoteCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		item.StartDate = pgconv.TimePtrFromPgtype(startDate)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return items, nil
}

func (r *RequestReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	query := `SELECT` + requestListColumns + `
		FROM customer_requests cr
		WHERE cr.customer_id = $1
		ORDER BY cr.created_at DESC, cr.id DESC
		LIMIT $2`
	return r.collectListItems(ctx, query, customerID, limit)
}

func (r *RequestReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	query := `SELECT` + requestListColumns + `
		FROM customer_requests cr
		WHERE cr.customer_id = $1 AND (cr.created_at, cr.id) < ($2, $3)
		ORDER BY cr.created_at DESC, cr.id DESC
		LIMIT $4`
	return r.collectListItems(ctx, query, customerID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *RequestReadStore) IsVendorMatched(ctx context.Context, requestID, vendorID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM quote_requests
			WHERE request_id = $1 AND vendor_id = $2
		)`

	var matched bool
	if err := r.db.QueryRow(ctx, query, requestID, vendorID).Scan(&matched); err != nil {
		return false, infra.WrapRepoErr("failed to check vendor match", err)
	}
	return matched, nil
}
