package queries

import (
	"context"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/infra"
	"quoteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByQuoteID(ctx context.Context, quoteID uuid.UUID) (*BookingView, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*BookingView, error)
	FindRecent(ctx context.Context, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*BookingView, error)
	GetByQuoteID(ctx context.Context, act actor.Actor, quoteID uuid.UUID) (*BookingView, error)
	ListByActor(ctx context.Context, act actor.Actor, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func participantOnly(act actor.Actor, view *BookingView) error {
	if act.IsAdmin() || view.VendorID == act.ID || view.CustomerID == act.ID {
		return nil
	}
	return errs.Mark(errs.New("booking is not visible to caller"), errs.ErrNotAuthorized)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	if err := participantOnly(act, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByQuoteID(ctx context.Context, act actor.Actor, quoteID uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByQuoteID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	if err := participantOnly(act, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByActor(ctx context.Context, act actor.Actor, limit int) ([]*BookingView, error) {
	limit = ValidateLimit(limit)
	switch {
	case act.IsVendor():
		return q.repo.FindByVendor(ctx, act.ID, int32(limit))
	case act.IsCustomer():
		return q.repo.FindByCustomer(ctx, act.ID, int32(limit))
	case act.IsAdmin():
		return q.repo.FindRecent(ctx, int32(limit))
	default:
		return nil, errs.Mark(errs.New("unknown actor role"), errs.ErrNotAuthorized)
	}
}
