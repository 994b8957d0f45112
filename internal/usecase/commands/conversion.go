package commands

import (
	"context"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/domain/quote"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type AcceptAndBookResult struct {
	QuoteID   uuid.UUID
	BookingID uuid.UUID
}

type ConversionCommands interface {
	// AcceptAndBook records the customer's acceptance and converts the quote
	// into a booking. Acceptance commits on its own so a booking failure
	// leaves the quote accepted and the conversion retryable.
	AcceptAndBook(ctx context.Context, act actor.Actor, quoteID uuid.UUID, locationOverride *string) (*AcceptAndBookResult, error)
}

type conversionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewConversionUseCase(uow shared.UnitOfWork, clk clock.Clock) ConversionCommands {
	return &conversionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *conversionUseCaseImpl) AcceptAndBook(ctx context.Context, act actor.Actor, quoteID uuid.UUID, locationOverride *string) (*AcceptAndBookResult, error) {
	if err := uc.accept(ctx, act, quoteID); err != nil {
		return nil, err
	}
	return uc.book(ctx, act, quoteID, locationOverride)
}

// accept is phase one: move the quote to accepted in its own transaction.
// A quote already accepted passes through, which is what makes a failed
// booking retryable.
func (uc *conversionUseCaseImpl) accept(ctx context.Context, act actor.Actor, quoteID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		if !act.IsAdmin() && snap.CustomerID != act.ID {
			return errs.Mark(errs.New("quote is addressed to another customer"), errs.ErrNotAuthorized)
		}
		if quote.Status(snap.Status) == quote.StatusConverted {
			return errs.Mark(errs.New("quote was already converted"), errs.ErrAlreadyConverted)
		}
		if quote.Status(snap.Status) == quote.StatusAccepted {
			// Prior acceptance committed but booking did not; retry resumes
			// at phase two.
			return nil
		}
		if err := coerceStaleQuote(ctx, tx, snap, now); err != nil {
			return err
		}

		q := quoteFromSnapshot(snap)
		if err := q.Respond(quote.DecisionAccept, "", now); err != nil {
			return markQuoteErr(err)
		}
		if err := saveWithCAS(ctx, tx, q, snapshotCAS(snap)); err != nil {
			return err
		}
		return enqueueQuoteEvent(ctx, tx, "quote.accepted", q, now)
	})
}

// book is phase two: create the booking durably, then finalize the quote and
// close the parent request, all in one transaction.
func (uc *conversionUseCaseImpl) book(ctx context.Context, act actor.Actor, quoteID uuid.UUID, locationOverride *string) (*AcceptAndBookResult, error) {
	now := uc.clock.Now()
	var result AcceptAndBookResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		switch quote.Status(snap.Status) {
		case quote.StatusAccepted:
		case quote.StatusConverted:
			return errs.Mark(errs.New("quote was already converted"), errs.ErrAlreadyConverted)
		default:
			return errs.Mark(errs.New("quote is no longer accepted"), errs.ErrConflict)
		}
		if snap.RequestStatus == request.StatusCancelled.String() {
			return errs.Mark(errs.New("parent request was cancelled"), errs.ErrInvalidState)
		}

		slot, err := tx.Reads().QuoteRequestByID(ctx, snap.QuoteRequestID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteRequestNotFound)
		}

		location := slot.RequestLocation
		if locationOverride != nil && *locationOverride != "" {
			location = *locationOverride
		}

		bookingID, err := tx.Bookings().Create(ctx, tx.DB(), shared.BookingRecord{
			QuoteID:        snap.ID,
			QuoteRequestID: snap.QuoteRequestID,
			RequestID:      slot.RequestID,
			VendorID:       snap.VendorID,
			CustomerID:     snap.CustomerID,
			Location:       location,
			Total:          snap.Total,
			DepositPercent: snap.DepositPercent,
			BalancePercent: snap.BalancePercent,
		})
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}

		q := quoteFromSnapshot(snap)
		if err := q.MarkConverted(now); err != nil {
			return markQuoteErr(err)
		}
		if err := saveWithCAS(ctx, tx, q, snapshotCAS(snap)); err != nil {
			return err
		}

		// Conversion ends the request's shopping phase.
		reqSnap, err := tx.Reads().RequestByID(ctx, slot.RequestID)
		if err != nil {
			return markRepoErr(err, errs.ErrRequestNotFound)
		}
		if !request.Status(reqSnap.Status).IsTerminal() {
			r := requestFromSnapshot(reqSnap)
			if err := r.Close(now); err != nil {
				return markRequestErr(err)
			}
			if err := saveRequestWithCAS(ctx, tx, r, requestCAS(reqSnap)); err != nil {
				return err
			}
		}

		result = AcceptAndBookResult{QuoteID: snap.ID, BookingID: bookingID}
		return enqueueQuoteEvent(ctx, tx, "quote.converted", q, now)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
