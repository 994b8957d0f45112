package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventDetailsInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	GuestCount  int
	Location    string
}

type BudgetAllocationInput struct {
	SpecialtyID    uuid.UUID
	BudgetedAmount float64
}

type AttachmentInput struct {
	URL  string
	Name string
}

type RequestInput struct {
	ServiceCategoryID uuid.UUID
	Details           EventDetailsInput
	Allocations       []BudgetAllocationInput
	Attachments       []AttachmentInput
}

type CreateRequestResult struct {
	RequestID uuid.UUID
}

type MatchVendorResult struct {
	QuoteRequestID uuid.UUID
}

type RequestCommands interface {
	CreateDraft(ctx context.Context, act actor.Actor, in RequestInput) (*CreateRequestResult, error)
	UpdateDraft(ctx context.Context, act actor.Actor, requestID uuid.UUID, in RequestInput) error
	Submit(ctx context.Context, act actor.Actor, requestID uuid.UUID) error
	ReopenDraft(ctx context.Context, act actor.Actor, requestID uuid.UUID) error
	Cancel(ctx context.Context, act actor.Actor, requestID uuid.UUID) error
	MatchVendor(ctx context.Context, act actor.Actor, requestID, vendorID uuid.UUID) (*MatchVendorResult, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func detailsFromInput(in EventDetailsInput) request.EventDetails {
	return request.EventDetails{
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		GuestCount:  in.GuestCount,
		Location:    in.Location,
	}
}

func allocationsFromInput(in []BudgetAllocationInput) []request.BudgetAllocation {
	allocs := make([]request.BudgetAllocation, len(in))
	for i, a := range in {
		allocs[i] = request.BudgetAllocation{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	return allocs
}

func attachmentsFromInput(in []AttachmentInput) []request.Attachment {
	atts := make([]request.Attachment, len(in))
	for i, a := range in {
		atts[i] = request.Attachment{ID: uuid.New(), URL: a.URL, Name: a.Name}
	}
	return atts
}

func requestFromSnapshot(snap *shared.RequestSnapshot) *request.CustomerRequest {
	details := request.EventDetails{
		Title:       snap.Title,
		Description: snap.Description,
		StartDate:   snap.StartDate,
		EndDate:     snap.EndDate,
		GuestCount:  snap.GuestCount,
		Location:    snap.Location,
	}
	allocs := make([]request.BudgetAllocation, len(snap.Allocations))
	for i, a := range snap.Allocations {
		allocs[i] = request.BudgetAllocation{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]request.Attachment, len(snap.Attachments))
	for i, a := range snap.Attachments {
		atts[i] = request.Attachment{ID: a.ID, URL: a.URL, Name: a.Name}
	}
	return request.Reconstruct(
		snap.ID, snap.CustomerID, snap.ServiceCategoryID,
		details, allocs, atts,
		request.Status(snap.Status), snap.CreatedAt, snap.UpdatedAt,
	)
}

func requestCAS(snap *shared.RequestSnapshot) shared.CAS {
	return shared.CAS{Status: snap.Status, Version: snap.Version}
}

func markRequestErr(err error) error {
	switch {
	case errors.Is(err, request.ErrEmptyTitle),
		errors.Is(err, request.ErrInvalidStartDate),
		errors.Is(err, request.ErrEndBeforeStart),
		errors.Is(err, request.ErrNegativeGuestCount),
		errors.Is(err, request.ErrNoBudgetAllocations),
		errors.Is(err, request.ErrNonPositiveBudget):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrInvalidState)
	}
}

func saveRequestWithCAS(ctx context.Context, tx shared.Tx, r *request.CustomerRequest, expected shared.CAS) error {
	affected, err := tx.Requests().Save(ctx, tx.DB(), r, expected)
	if err != nil {
		return markRepoErr(err, errs.ErrRequestNotFound)
	}
	if affected == 0 {
		return errs.Mark(errs.New("request changed concurrently"), errs.ErrConflict)
	}
	return nil
}

func (uc *requestUseCaseImpl) CreateDraft(ctx context.Context, act actor.Actor, in RequestInput) (*CreateRequestResult, error) {
	if !act.IsCustomer() {
		return nil, errs.Mark(errs.New("only customers create requests"), errs.ErrNotAuthorized)
	}

	now := uc.clock.Now()
	r := request.NewDraft(act.ID, in.ServiceCategoryID, detailsFromInput(in.Details), allocationsFromInput(in.Allocations), attachmentsFromInput(in.Attachments), now)

	var result CreateRequestResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Requests().Create(ctx, tx.DB(), r)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		result.RequestID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *requestUseCaseImpl) UpdateDraft(ctx context.Context, act actor.Actor, requestID uuid.UUID, in RequestInput) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		if !act.IsAdmin() && snap.CustomerID != act.ID {
			return errs.Mark(errs.New("request belongs to another customer"), errs.ErrNotAuthorized)
		}

		r := requestFromSnapshot(snap)
		if err := r.UpdateDraft(detailsFromInput(in.Details), in.ServiceCategoryID, allocationsFromInput(in.Allocations), attachmentsFromInput(in.Attachments), now); err != nil {
			return markRequestErr(err)
		}
		return saveRequestWithCAS(ctx, tx, r, requestCAS(snap))
	})
}

func (uc *requestUseCaseImpl) Submit(ctx context.Context, act actor.Actor, requestID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		if !act.IsAdmin() && snap.CustomerID != act.ID {
			return errs.Mark(errs.New("request belongs to another customer"), errs.ErrNotAuthorized)
		}

		r := requestFromSnapshot(snap)
		if err := r.Submit(now); err != nil {
			return markRequestErr(err)
		}
		if err := saveRequestWithCAS(ctx, tx, r, requestCAS(snap)); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"request_id":  r.ID(),
			"customer_id": r.CustomerID(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode notification payload")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "request.submitted", payload, now)
	})
}

func (uc *requestUseCaseImpl) ReopenDraft(ctx context.Context, act actor.Actor, requestID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		if !act.IsAdmin() && snap.CustomerID != act.ID {
			return errs.Mark(errs.New("request belongs to another customer"), errs.ErrNotAuthorized)
		}

		r := requestFromSnapshot(snap)
		if err := r.ReopenDraft(snap.HasVendorResponse, now); err != nil {
			return markRequestErr(err)
		}
		return saveRequestWithCAS(ctx, tx, r, requestCAS(snap))
	})
}

func (uc *requestUseCaseImpl) Cancel(ctx context.Context, act actor.Actor, requestID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		if !act.IsAdmin() && snap.CustomerID != act.ID {
			return errs.Mark(errs.New("request belongs to another customer"), errs.ErrNotAuthorized)
		}

		r := requestFromSnapshot(snap)
		if err := r.Cancel(now); err != nil {
			return markRequestErr(err)
		}
		if err := saveRequestWithCAS(ctx, tx, r, requestCAS(snap)); err != nil {
			return err
		}

		// Outstanding quotes are invalidated lazily on their next read; the
		// notification tells vendors immediately.
		payload, err := json.Marshal(map[string]any{
			"request_id":  r.ID(),
			"customer_id": r.CustomerID(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode notification payload")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "request.cancelled", payload, now)
	})
}

// MatchVendor pairs a vendor with a submitted request, opening the slot the
// vendor quotes into. Matching is a platform action.
func (uc *requestUseCaseImpl) MatchVendor(ctx context.Context, act actor.Actor, requestID, vendorID uuid.UUID) (*MatchVendorResult, error) {
	if !act.IsAdmin() {
		return nil, errs.Mark(errs.New("only platform operators match vendors"), errs.ErrNotAuthorized)
	}

	now := uc.clock.Now()
	var result MatchVendorResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}

		r := requestFromSnapshot(snap)
		if err := r.MarkMatched(now); err != nil {
			return markRequestErr(err)
		}

		id, err := tx.QuoteRequests().Create(ctx, tx.DB(), requestID, vendorID, snap.CustomerID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		result.QuoteRequestID = id

		if err := saveRequestWithCAS(ctx, tx, r, requestCAS(snap)); err != nil {
			return err
		}

		payload, err := json.Marshal(map[string]any{
			"quote_request_id": id,
			"request_id":       requestID,
			"vendor_id":        vendorID,
			"customer_id":      snap.CustomerID,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode notification payload")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "request.matched", payload, now)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
