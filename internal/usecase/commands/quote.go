package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/domain/expiry"
	"quoteflow/internal/domain/quote"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/infra"
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type LineItemInput struct {
	Service  string
	Quantity int
	Hours    float64
	Rate     float64
}

// QuoteContentInput is the revisable body of a quote as the caller supplies
// it. It is validated into domain values before anything is persisted.
type QuoteContentInput struct {
	LineItems        []LineItemInput
	DepositPercent   int
	BalancePercent   int
	ValidityDuration string
	CustomExpiryDate *time.Time
	PersonalMessage  string
}

type CreateQuoteResult struct {
	QuoteID uuid.UUID
}

type QuoteCommands interface {
	CreateDraft(ctx context.Context, act actor.Actor, quoteRequestID uuid.UUID, in QuoteContentInput) (*CreateQuoteResult, error)
	UpdateDraft(ctx context.Context, act actor.Actor, quoteID uuid.UUID, in QuoteContentInput) error
	Send(ctx context.Context, act actor.Actor, quoteID uuid.UUID) error
	Respond(ctx context.Context, act actor.Actor, quoteID uuid.UUID, decision quote.Decision, note string) error
	Revise(ctx context.Context, act actor.Actor, quoteID uuid.UUID, in QuoteContentInput) error
	Withdraw(ctx context.Context, act actor.Actor, quoteID uuid.UUID) error
}

type quoteUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewQuoteUseCase(uow shared.UnitOfWork, clk clock.Clock) QuoteCommands {
	return &quoteUseCaseImpl{uow: uow, clock: clk}
}

// buildContent validates raw input into the domain content value. All
// failures are marked as validation errors for the transport layer.
func buildContent(in QuoteContentInput, now time.Time) (quote.Content, error) {
	items := make([]quote.LineItem, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		item, err := quote.NewLineItem(li.Service, li.Quantity, li.Hours, li.Rate)
		if err != nil {
			return quote.Content{}, errs.Mark(err, errs.ErrValidation)
		}
		items = append(items, item)
	}

	terms, err := quote.NewPaymentTerms(in.DepositPercent, in.BalancePercent)
	if err != nil {
		return quote.Content{}, errs.Mark(err, errs.ErrValidation)
	}

	validity, err := quote.NewValidity(quote.ValidityDuration(in.ValidityDuration), in.CustomExpiryDate, now)
	if err != nil {
		return quote.Content{}, errs.Mark(err, errs.ErrValidation)
	}

	return quote.Content{
		LineItems:       items,
		PaymentTerms:    terms,
		Validity:        validity,
		PersonalMessage: in.PersonalMessage,
	}, nil
}

// quoteFromSnapshot rebuilds the aggregate for a guarded transition.
func quoteFromSnapshot(snap *shared.QuoteSnapshot) *quote.Quote {
	items := make([]quote.LineItem, 0, len(snap.LineItems))
	for _, li := range snap.LineItems {
		items = append(items, quote.ReconstructLineItem(li.Service, li.Quantity, li.Hours, li.Rate))
	}
	content := quote.Content{
		LineItems:       items,
		PaymentTerms:    quote.ReconstructPaymentTerms(snap.DepositPercent, snap.BalancePercent),
		Validity:        quote.ReconstructValidity(quote.ValidityDuration(snap.ValidityDuration), snap.CustomExpiryDate),
		PersonalMessage: snap.PersonalMessage,
	}
	return quote.Reconstruct(
		snap.ID, snap.QuoteRequestID, snap.VendorID, snap.CustomerID,
		content, quote.Status(snap.Status), snap.Revision,
		snap.SentAt, snap.ExpiresAt, snap.CreatedAt, snap.UpdatedAt,
	)
}

func snapshotCAS(snap *shared.QuoteSnapshot) shared.CAS {
	return shared.CAS{Status: snap.Status, Version: snap.Version}
}

// markQuoteErr translates domain guard failures into the workflow taxonomy.
func markQuoteErr(err error) error {
	switch {
	case errors.Is(err, quote.ErrAlreadyConverted):
		return errs.Mark(err, errs.ErrAlreadyConverted)
	case errors.Is(err, quote.ErrQuoteExpired):
		return errs.Mark(err, errs.ErrExpired)
	case errors.Is(err, quote.ErrNoteRequired),
		errors.Is(err, quote.ErrInvalidDecision),
		errors.Is(err, quote.ErrEmptyLineItems),
		errors.Is(err, quote.ErrZeroTotal):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrInvalidState)
	}
}

// markRepoErr maps repository failures onto the taxonomy; notFound names the
// entity the caller asked for.
func markRepoErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrConflict)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

// coerceStaleQuote persists any lazily observed terminal state before a
// mutation proceeds. A non-nil return is the error the caller must surface:
// the quote is no longer actionable. Losing the persist race is fine; the
// winner stored the same coercion.
func coerceStaleQuote(ctx context.Context, tx shared.Tx, snap *shared.QuoteSnapshot, now time.Time) error {
	s := quote.Status(snap.Status)
	if (s.AwaitingDecision() || s == quote.StatusAccepted) && expiry.IsExpired(snap.ExpiresAt, now) {
		q := quoteFromSnapshot(snap)
		if err := q.MarkExpired(now); err == nil {
			_, _ = tx.Quotes().Save(ctx, tx.DB(), q, snapshotCAS(snap))
		}
		return errs.Mark(errs.New("quote validity window has passed"), errs.ErrExpired)
	}
	if snap.RequestStatus == request.StatusCancelled.String() && !s.IsTerminal() {
		if s.AwaitingDecision() {
			q := quoteFromSnapshot(snap)
			if err := q.Withdraw(now); err == nil {
				_, _ = tx.Quotes().Save(ctx, tx.DB(), q, snapshotCAS(snap))
			}
		}
		return errs.Mark(errs.New("parent request was cancelled"), errs.ErrInvalidState)
	}
	return nil
}

func enqueueQuoteEvent(ctx context.Context, tx shared.Tx, topic string, q *quote.Quote, runAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"quote_id":         q.ID(),
		"quote_request_id": q.QuoteRequestID(),
		"vendor_id":        q.VendorID(),
		"customer_id":      q.CustomerID(),
		"status":           q.Status().String(),
		"revision":         q.Revision(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, runAt)
}

func (uc *quoteUseCaseImpl) CreateDraft(ctx context.Context, act actor.Actor, quoteRequestID uuid.UUID, in QuoteContentInput) (*CreateQuoteResult, error) {
	if !act.IsVendor() {
		return nil, errs.Mark(errs.New("only vendors create quotes"), errs.ErrNotAuthorized)
	}

	now := uc.clock.Now()
	content, err := buildContent(in, now)
	if err != nil {
		return nil, err
	}

	var result CreateQuoteResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Reads().QuoteRequestByID(ctx, quoteRequestID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteRequestNotFound)
		}
		if slot.VendorID != act.ID {
			return errs.Mark(errs.New("quote request belongs to another vendor"), errs.ErrNotAuthorized)
		}
		if request.Status(slot.RequestStatus).IsTerminal() {
			return errs.Mark(errs.New("request no longer accepts quotes"), errs.ErrInvalidState)
		}
		if slot.HasActiveQuote {
			return errs.Mark(errs.New("an active quote already exists for this request"), errs.ErrConflict)
		}

		q, err := quote.NewDraft(&quote.Services{Clock: uc.clock}, quoteRequestID, act.ID, slot.CustomerID, content)
		if err != nil {
			return markQuoteErr(err)
		}
		id, err := tx.Quotes().Create(ctx, tx.DB(), q)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteRequestNotFound)
		}
		result.QuoteID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *quoteUseCaseImpl) UpdateDraft(ctx context.Context, act actor.Actor, quoteID uuid.UUID, in QuoteContentInput) error {
	now := uc.clock.Now()
	content, err := buildContent(in, now)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		if !act.IsAdmin() && snap.VendorID != act.ID {
			return errs.Mark(errs.New("quote belongs to another vendor"), errs.ErrNotAuthorized)
		}
		if request.Status(snap.RequestStatus).IsTerminal() {
			return errs.Mark(errs.New("parent request is closed"), errs.ErrInvalidState)
		}

		q := quoteFromSnapshot(snap)
		if err := q.UpdateDraft(content, now); err != nil {
			return markQuoteErr(err)
		}
		return saveWithCAS(ctx, tx, q, snapshotCAS(snap))
	})
}

func (uc *quoteUseCaseImpl) Send(ctx context.Context, act actor.Actor, quoteID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		if !act.IsAdmin() && snap.VendorID != act.ID {
			return errs.Mark(errs.New("quote belongs to another vendor"), errs.ErrNotAuthorized)
		}
		if request.Status(snap.RequestStatus).IsTerminal() {
			return errs.Mark(errs.New("parent request no longer accepts quotes"), errs.ErrInvalidState)
		}

		q := quoteFromSnapshot(snap)
		if err := q.Send(now); err != nil {
			return markQuoteErr(err)
		}
		if err := saveWithCAS(ctx, tx, q, snapshotCAS(snap)); err != nil {
			return err
		}
		return enqueueQuoteEvent(ctx, tx, "quote.sent", q, now)
	})
}

func (uc *quoteUseCaseImpl) Respond(ctx context.Context, act actor.Actor, quoteID uuid.UUID, decision quote.Decision, note string) error {
	if decision == quote.DecisionAccept {
		// Acceptance books; it runs through the conversion flow.
		return errs.Mark(errs.New("accept is handled by the conversion flow"), errs.ErrValidation)
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		if !act.IsAdmin() && snap.CustomerID != act.ID {
			return errs.Mark(errs.New("quote is addressed to another customer"), errs.ErrNotAuthorized)
		}
		if err := coerceStaleQuote(ctx, tx, snap, now); err != nil {
			return err
		}

		q := quoteFromSnapshot(snap)
		if err := q.Respond(decision, note, now); err != nil {
			return markQuoteErr(err)
		}

		if decision == quote.DecisionRequestChanges {
			// Archive the content the customer commented on; the revise that
			// follows overwrites it in place.
			if err := tx.Quotes().ArchiveRevision(ctx, tx.DB(), snap, &note); err != nil {
				return markRepoErr(err, errs.ErrQuoteNotFound)
			}
		}
		if err := saveWithCAS(ctx, tx, q, snapshotCAS(snap)); err != nil {
			return err
		}
		// Topic mirrors the resulting status: quote.declined or
		// quote.changes_requested.
		return enqueueQuoteEvent(ctx, tx, "quote."+q.Status().String(), q, now)
	})
}

func (uc *quoteUseCaseImpl) Revise(ctx context.Context, act actor.Actor, quoteID uuid.UUID, in QuoteContentInput) error {
	now := uc.clock.Now()
	content, err := buildContent(in, now)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		if !act.IsAdmin() && snap.VendorID != act.ID {
			return errs.Mark(errs.New("quote belongs to another vendor"), errs.ErrNotAuthorized)
		}
		if err := coerceStaleQuote(ctx, tx, snap, now); err != nil {
			return err
		}

		// Content superseded on a changes request was archived with the
		// customer's note at respond time; archive here only when revising
		// straight from the awaiting state.
		if quote.Status(snap.Status) != quote.StatusChangesRequested {
			if err := tx.Quotes().ArchiveRevision(ctx, tx.DB(), snap, nil); err != nil {
				return markRepoErr(err, errs.ErrQuoteNotFound)
			}
		}

		q := quoteFromSnapshot(snap)
		if err := q.Revise(content, now); err != nil {
			return markQuoteErr(err)
		}
		if err := saveWithCAS(ctx, tx, q, snapshotCAS(snap)); err != nil {
			return err
		}
		return enqueueQuoteEvent(ctx, tx, "quote.revised", q, now)
	})
}

func (uc *quoteUseCaseImpl) Withdraw(ctx context.Context, act actor.Actor, quoteID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			return markRepoErr(err, errs.ErrQuoteNotFound)
		}
		if !act.IsAdmin() && snap.VendorID != act.ID {
			return errs.Mark(errs.New("quote belongs to another vendor"), errs.ErrNotAuthorized)
		}
		if err := coerceStaleQuote(ctx, tx, snap, now); err != nil {
			return err
		}

		q := quoteFromSnapshot(snap)
		if err := q.Withdraw(now); err != nil {
			return markQuoteErr(err)
		}
		if err := saveWithCAS(ctx, tx, q, snapshotCAS(snap)); err != nil {
			return err
		}
		return enqueueQuoteEvent(ctx, tx, "quote.withdrawn", q, now)
	})
}

// saveWithCAS persists the transition and maps a lost race to a conflict the
// caller can retry against fresh state.
func saveWithCAS(ctx context.Context, tx shared.Tx, q *quote.Quote, expected shared.CAS) error {
	affected, err := tx.Quotes().Save(ctx, tx.DB(), q, expected)
	if err != nil {
		return markRepoErr(err, errs.ErrQuoteNotFound)
	}
	if affected == 0 {
		return errs.Mark(errs.New("quote changed concurrently"), errs.ErrConflict)
	}
	return nil
}
