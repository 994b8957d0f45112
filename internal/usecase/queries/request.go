package queries

import (
	"context"
	"time"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/infra"
	"quoteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*RequestListItem, error)
	FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RequestListItem, error)
	IsVendorMatched(ctx context.Context, requestID, vendorID uuid.UUID) (bool, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*RequestView, error)
	ListByCustomer(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*RequestListItem, *Cursor, error)
}

type requestQueriesImpl struct {
	repo RequestViewRepo
}

func NewRequestQueries(repo RequestViewRepo) RequestQueries {
	return &requestQueriesImpl{repo: repo}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*RequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, err
	}
	switch {
	case act.IsAdmin():
	case act.IsCustomer():
		if view.CustomerID != act.ID {
			return nil, errs.Mark(errs.New("request belongs to another customer"), errs.ErrNotAuthorized)
		}
	case act.IsVendor():
		// Matched vendors need the event details to prepare a quote.
		matched, err := q.repo.IsVendorMatched(ctx, id, act.ID)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, errs.Mark(errs.New("vendor is not matched to this request"), errs.ErrNotAuthorized)
		}
	default:
		return nil, errs.Mark(errs.New("unknown actor role"), errs.ErrNotAuthorized)
	}
	return view, nil
}

func (q *requestQueriesImpl) ListByCustomer(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*RequestListItem, *Cursor, error) {
	if !act.IsCustomer() && !act.IsAdmin() {
		return nil, nil, errs.Mark(errs.New("request listing requires a customer actor"), errs.ErrNotAuthorized)
	}
	limit = ValidateLimit(limit)

	var (
		items []*RequestListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.repo.FindByCustomerFirstPage(ctx, act.ID, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, errs.ErrValidation)
		}
		items, err = q.repo.FindByCustomerKeyset(ctx, act.ID, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == limit && len(items) > 0 {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}
