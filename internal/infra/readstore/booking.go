package readstore

import (
	"context"

	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/pkg/pgconv"
	"quoteflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

var _ queries.BookingViewRepo = (*BookingReadStore)(nil)

const bookingColumns = `
	b.id, b.quote_id, b.request_id, cr.title,
	b.vendor_id, b.customer_id, b.location,
	b.total, b.deposit_percent, b.balance_percent, b.created_at`

const bookingFrom = `
	FROM bookings b
	JOIN customer_requests cr ON cr.id = b.request_id`

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.QuoteID, &v.RequestID, &v.RequestTitle,
		&v.VendorID, &v.CustomerID, &v.Location,
		&v.Total, &v.DepositPercent, &v.BalancePercent, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *BookingReadStore) findOne(ctx context.Context, query string, arg any) (*queries.BookingView, error) {
	view, err := scanBookingView(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + bookingFrom + ` WHERE b.id = $1`
	return r.findOne(ctx, query, id)
}

func (r *BookingReadStore) FindByQuoteID(ctx context.Context, quoteID uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + bookingFrom + ` WHERE b.quote_id = $1`
	return r.findOne(ctx, query, quoteID)
}

func (r *BookingReadStore) collect(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindByVendor(ctx context.Context, vendorID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + bookingFrom + `
		WHERE b.vendor_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2`
	return r.collect(ctx, query, vendorID, limit)
}

func (r *BookingReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + bookingFrom + `
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2`
	return r.collect(ctx, query, customerID, limit)
}

func (r *BookingReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + bookingFrom + `
		ORDER BY b.created_at DESC
		LIMIT $1`
	return r.collect(ctx, query, limit)
}
