package repository

import (
	"context"
	"encoding/json"
	"time"

	"quoteflow/internal/domain/request"
	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

var _ shared.RequestRepository = (*RequestRepository)(nil)

func allocationsJSON(allocs []request.BudgetAllocation) ([]byte, error) {
	rows := make([]shared.BudgetAllocationSnapshot, len(allocs))
	for i, a := range allocs {
		rows[i] = shared.BudgetAllocationSnapshot{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	return json.Marshal(rows)
}

func attachmentsJSON(atts []request.Attachment) ([]byte, error) {
	rows := make([]shared.AttachmentSnapshot, len(atts))
	for i, a := range atts {
		rows[i] = shared.AttachmentSnapshot{ID: a.ID, URL: a.URL, Name: a.Name}
	}
	return json.Marshal(rows)
}

func nullableTime(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, cr *request.CustomerRequest) (uuid.UUID, error) {
	allocs, err := allocationsJSON(cr.Allocations())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode budget allocations", err)
	}
	atts, err := attachmentsJSON(cr.Attachments())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode attachments", err)
	}

	d := cr.Details()
	const query = `
		INSERT INTO customer_requests (
			id, customer_id, service_category_id,
			title, description, start_date, end_date, guest_count, location,
			budget_allocations, attachments, status, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

	_, err = tx.Exec(ctx, query,
		cr.ID(), cr.CustomerID(), cr.ServiceCategoryID(),
		d.Title, d.Description, nullableTime(d.StartDate), nullableTime(d.EndDate), d.GuestCount, d.Location,
		allocs, atts, cr.Status().String(), cr.CreatedAt(), cr.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer request", err)
	}
	return cr.ID(), nil
}

func (r *RequestRepository) Save(ctx context.Context, tx db.DBTX, cr *request.CustomerRequest, expected shared.CAS) (int64, error) {
	allocs, err := allocationsJSON(cr.Allocations())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode budget allocations", err)
	}
	atts, err := attachmentsJSON(cr.Attachments())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode attachments", err)
	}

	d := cr.Details()
	const query = `
		UPDATE customer_requests SET
			service_category_id = $1, title = $2, description = $3,
			start_date = $4, end_date = $5, guest_count = $6, location = $7,
			budget_allocations = $8, attachments = $9,
			status = $10, updated_at = $11,
			version = version + 1
		WHERE id = $12 AND status = $13 AND version = $14`

	tag, err := tx.Exec(ctx, query,
		cr.ServiceCategoryID(), d.Title, d.Description,
		nullableTime(d.StartDate), nullableTime(d.EndDate), d.GuestCount, d.Location,
		allocs, atts,
		cr.Status().String(), cr.UpdatedAt(),
		cr.ID(), expected.Status, expected.Version,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to save customer request", err)
	}
	return tag.RowsAffected(), nil
}
