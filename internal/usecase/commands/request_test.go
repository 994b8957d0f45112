//go:build unit

package commands_test

import (
	"context"
	"testing"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/domain/quote"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/shared"
	"quoteflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestScenario struct {
	store    *fakeStore
	clk      *clock.MockClock
	uc       commands.RequestCommands
	customer actor.Actor
	admin    actor.Actor
	reqID    uuid.UUID
}

func seedRequest(t *testing.T, status request.Status) *requestScenario {
	t.Helper()

	store := newFakeStore()
	clk := clock.NewMockClock(anchor)

	b := builder.NewRequestBuilder()
	b.Now = anchor
	snap := b.BuildSnapshot(status)
	store.requests[snap.ID] = snap

	return &requestScenario{
		store:    store,
		clk:      clk,
		uc:       commands.NewRequestUseCase(newFakeUoW(store), clk),
		customer: actor.Actor{ID: b.CustomerID, Role: actor.RoleCustomer},
		admin:    actor.Actor{ID: uuid.New(), Role: actor.RoleAdmin},
		reqID:    snap.ID,
	}
}

func TestRequestCommands_CreateDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("customer drafts a request", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		result, err := s.uc.CreateDraft(ctx, s.customer, builder.NewRequestBuilder().BuildInput())
		require.NoError(t, err)

		stored := s.store.requests[result.RequestID]
		require.NotNil(t, stored)
		assert.Equal(t, "draft", stored.Status)
	})

	t.Run("partial drafts are accepted", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		in := builder.NewRequestBuilder().With(func(rb *builder.RequestBuilder) {
			rb.Title = ""
			rb.Allocations = nil
		}).BuildInput()

		_, err := s.uc.CreateDraft(ctx, s.customer, in)
		assert.NoError(t, err)
	})

	t.Run("vendors cannot create requests", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		vendor := actor.Actor{ID: uuid.New(), Role: actor.RoleVendor}
		_, err := s.uc.CreateDraft(ctx, vendor, builder.NewRequestBuilder().BuildInput())
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestRequestCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("submit a complete draft", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		require.NoError(t, s.uc.Submit(ctx, s.customer, s.reqID))
		assert.Equal(t, "submitted", s.store.requests[s.reqID].Status)
		assert.Equal(t, []string{"request.submitted"}, s.store.topics())
	})

	t.Run("incomplete draft fails the submit guard", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		s.store.requests[s.reqID].Allocations = nil

		err := s.uc.Submit(ctx, s.customer, s.reqID)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "draft", s.store.requests[s.reqID].Status)
	})

	t.Run("another customer cannot submit", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		other := actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
		assert.ErrorIs(t, s.uc.Submit(ctx, other, s.reqID), errs.ErrNotAuthorized)
	})

	t.Run("unknown request", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		assert.ErrorIs(t, s.uc.Submit(ctx, s.customer, uuid.New()), errs.ErrRequestNotFound)
	})
}

func TestRequestCommands_ReopenDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("reopen while vendors are silent", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)
		require.NoError(t, s.uc.ReopenDraft(ctx, s.customer, s.reqID))
		assert.Equal(t, "draft", s.store.requests[s.reqID].Status)
	})

	t.Run("locked after a vendor responded", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)

		// a sent quote against this request locks the edit path
		qb := builder.NewQuoteBuilder()
		qsnap := qb.BuildSnapshot(quote.StatusSent)
		s.store.quotes[qsnap.ID] = qsnap
		s.store.slots[qb.QuoteRequestID] = &shared.QuoteRequestSnapshot{
			ID:         qb.QuoteRequestID,
			RequestID:  s.reqID,
			VendorID:   qb.VendorID,
			CustomerID: qb.CustomerID,
			CreatedAt:  anchor,
		}

		err := s.uc.ReopenDraft(ctx, s.customer, s.reqID)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "submitted", s.store.requests[s.reqID].Status)
	})

	t.Run("draft quotes do not lock the request", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)

		qb := builder.NewQuoteBuilder()
		qsnap := qb.BuildSnapshot(quote.StatusDraft)
		s.store.quotes[qsnap.ID] = qsnap
		s.store.slots[qb.QuoteRequestID] = &shared.QuoteRequestSnapshot{
			ID:         qb.QuoteRequestID,
			RequestID:  s.reqID,
			VendorID:   qb.VendorID,
			CustomerID: qb.CustomerID,
			CreatedAt:  anchor,
		}

		assert.NoError(t, s.uc.ReopenDraft(ctx, s.customer, s.reqID))
	})
}

func TestRequestCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel notifies matched vendors", func(t *testing.T) {
		s := seedRequest(t, request.StatusMatched)
		require.NoError(t, s.uc.Cancel(ctx, s.customer, s.reqID))

		assert.Equal(t, "cancelled", s.store.requests[s.reqID].Status)
		assert.Equal(t, []string{"request.cancelled"}, s.store.topics())
	})

	t.Run("closed requests stay closed", func(t *testing.T) {
		s := seedRequest(t, request.StatusClosed)
		assert.ErrorIs(t, s.uc.Cancel(ctx, s.customer, s.reqID), errs.ErrInvalidState)
	})
}

func TestRequestCommands_MatchVendor(t *testing.T) {
	ctx := context.Background()

	t.Run("platform matches a vendor", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)
		vendorID := uuid.New()

		result, err := s.uc.MatchVendor(ctx, s.admin, s.reqID, vendorID)
		require.NoError(t, err)

		slot := s.store.slots[result.QuoteRequestID]
		require.NotNil(t, slot)
		assert.Equal(t, vendorID, slot.VendorID)
		assert.Equal(t, "matched", s.store.requests[s.reqID].Status)
		assert.Equal(t, []string{"request.matched"}, s.store.topics())
	})

	t.Run("matching again adds another slot", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)
		_, err := s.uc.MatchVendor(ctx, s.admin, s.reqID, uuid.New())
		require.NoError(t, err)

		_, err = s.uc.MatchVendor(ctx, s.admin, s.reqID, uuid.New())
		require.NoError(t, err)
		assert.Len(t, s.store.slots, 2)
	})

	t.Run("same vendor is matched once", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)
		vendorID := uuid.New()
		_, err := s.uc.MatchVendor(ctx, s.admin, s.reqID, vendorID)
		require.NoError(t, err)

		_, err = s.uc.MatchVendor(ctx, s.admin, s.reqID, vendorID)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("matching is admin-only", func(t *testing.T) {
		s := seedRequest(t, request.StatusSubmitted)
		_, err := s.uc.MatchVendor(ctx, s.customer, s.reqID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("drafts cannot be matched", func(t *testing.T) {
		s := seedRequest(t, request.StatusDraft)
		_, err := s.uc.MatchVendor(ctx, s.admin, s.reqID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
