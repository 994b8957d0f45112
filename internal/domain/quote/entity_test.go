//go:build unit

package quote_test

import (
	"testing"
	"time"

	"quoteflow/internal/domain/quote"
	"quoteflow/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(quote.LineItem{}, quote.PaymentTerms{}, quote.Validity{}),
	cmpopts.EquateEmpty(),
}

type contentCase struct {
	name   string
	mutate func(*builder.QuoteBuilder)
	errIs  error
}

func runContentCases(t *testing.T, cases []contentCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewQuoteBuilder().With(tc.mutate)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestQuote(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewQuoteBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, quote.StatusDraft, actual.Status())
		assert.Equal(t, 0, actual.Revision())
		assert.Nil(t, actual.SentAt())
		assert.Nil(t, actual.ExpiresAt())
		assert.Equal(t, 600.0, actual.Total())

		expected, err := builder.NewQuoteBuilder().BuildContent()
		require.NoError(t, err)
		if diff := cmp.Diff(expected, actual.Content(), cmpOpts...); diff != "" {
			t.Errorf("Content mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("line item validation", func(t *testing.T) {
		runContentCases(t, []contentCase{
			{
				name:   "no line items",
				mutate: func(b *builder.QuoteBuilder) { b.LineItems = nil },
				errIs:  quote.ErrEmptyLineItems,
			},
			{
				name: "blank service name",
				mutate: func(b *builder.QuoteBuilder) {
					b.LineItems = []builder.LineItemSpec{{Service: "   ", Quantity: 1, Hours: 2, Rate: 100}}
				},
				errIs: quote.ErrEmptyServiceName,
			},
			{
				name: "zero quantity",
				mutate: func(b *builder.QuoteBuilder) {
					b.LineItems = []builder.LineItemSpec{{Service: "Catering", Quantity: 0, Hours: 2, Rate: 100}}
				},
				errIs: quote.ErrNonPositiveQuantity,
			},
			{
				name: "negative hours",
				mutate: func(b *builder.QuoteBuilder) {
					b.LineItems = []builder.LineItemSpec{{Service: "Catering", Quantity: 1, Hours: -1, Rate: 100}}
				},
				errIs: quote.ErrNonPositiveHours,
			},
			{
				name: "zero rate",
				mutate: func(b *builder.QuoteBuilder) {
					b.LineItems = []builder.LineItemSpec{{Service: "Catering", Quantity: 1, Hours: 2, Rate: 0}}
				},
				errIs: quote.ErrNonPositiveRate,
			},
		})
	})

	t.Run("payment terms validation", func(t *testing.T) {
		runContentCases(t, []contentCase{
			{
				name:   "terms must sum to 100",
				mutate: func(b *builder.QuoteBuilder) { b.DepositPercent = 30; b.BalancePercent = 60 },
				errIs:  quote.ErrInvalidPaymentTerms,
			},
			{
				name:   "zero deposit is allowed",
				mutate: func(b *builder.QuoteBuilder) { b.DepositPercent = 0; b.BalancePercent = 100 },
			},
			{
				name:   "full deposit is allowed",
				mutate: func(b *builder.QuoteBuilder) { b.DepositPercent = 100; b.BalancePercent = 0 },
			},
		})
	})

	t.Run("validity validation", func(t *testing.T) {
		runContentCases(t, []contentCase{
			{
				name:   "unknown duration",
				mutate: func(b *builder.QuoteBuilder) { b.ValidityDuration = "90_days" },
				errIs:  quote.ErrInvalidValidity,
			},
			{
				name:   "custom without date",
				mutate: func(b *builder.QuoteBuilder) { b.ValidityDuration = quote.ValidityCustom },
				errIs:  quote.ErrMissingCustomExpiry,
			},
			{
				name: "custom date in the past",
				mutate: func(b *builder.QuoteBuilder) {
					past := b.Now.Add(-time.Hour)
					b.ValidityDuration = quote.ValidityCustom
					b.CustomExpiryDate = &past
				},
				errIs: quote.ErrPastCustomExpiry,
			},
			{
				name: "custom date in the future",
				mutate: func(b *builder.QuoteBuilder) {
					future := b.Now.Add(72 * time.Hour)
					b.ValidityDuration = quote.ValidityCustom
					b.CustomExpiryDate = &future
				},
			},
		})
	})
}

func TestQuote_Send(t *testing.T) {
	b := builder.NewQuoteBuilder()

	t.Run("send starts the validity window", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, q.Send(b.Now))

		assert.Equal(t, quote.StatusSent, q.Status())
		require.NotNil(t, q.SentAt())
		require.NotNil(t, q.ExpiresAt())
		assert.Equal(t, b.Now.Add(7*24*time.Hour), *q.ExpiresAt())
	})

	t.Run("send is draft-only", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))

		assert.ErrorIs(t, q.Send(b.Now), quote.ErrNotDraft)
	})
}

func TestQuote_Respond(t *testing.T) {
	b := builder.NewQuoteBuilder()

	sent := func(t *testing.T) *quote.Quote {
		t.Helper()
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		return q
	}

	t.Run("accept", func(t *testing.T) {
		q := sent(t)
		require.NoError(t, q.Respond(quote.DecisionAccept, "", b.Now.Add(time.Hour)))
		assert.Equal(t, quote.StatusAccepted, q.Status())
	})

	t.Run("decline is terminal", func(t *testing.T) {
		q := sent(t)
		require.NoError(t, q.Respond(quote.DecisionDecline, "", b.Now.Add(time.Hour)))
		assert.Equal(t, quote.StatusDeclined, q.Status())
		assert.True(t, q.Status().IsTerminal())
	})

	t.Run("request changes needs a note", func(t *testing.T) {
		q := sent(t)
		assert.ErrorIs(t, q.Respond(quote.DecisionRequestChanges, "   ", b.Now), quote.ErrNoteRequired)

		require.NoError(t, q.Respond(quote.DecisionRequestChanges, "Can you include setup?", b.Now))
		assert.Equal(t, quote.StatusChangesRequested, q.Status())
	})

	t.Run("no response after the window", func(t *testing.T) {
		q := sent(t)
		late := b.Now.Add(7*24*time.Hour + time.Second)
		assert.ErrorIs(t, q.Respond(quote.DecisionAccept, "", late), quote.ErrQuoteExpired)
	})

	t.Run("exactly at expiry is still actionable", func(t *testing.T) {
		q := sent(t)
		atBoundary := b.Now.Add(7 * 24 * time.Hour)
		assert.NoError(t, q.Respond(quote.DecisionAccept, "", atBoundary))
	})

	t.Run("no response on a draft", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, q.Respond(quote.DecisionAccept, "", b.Now), quote.ErrNotAwaiting)
	})

	t.Run("unknown decision", func(t *testing.T) {
		q := sent(t)
		assert.ErrorIs(t, q.Respond(quote.Decision("maybe"), "", b.Now), quote.ErrInvalidDecision)
	})
}

func TestQuote_Revise(t *testing.T) {
	b := builder.NewQuoteBuilder()

	revisedContent := func(t *testing.T) quote.Content {
		t.Helper()
		content, err := builder.NewQuoteBuilder().With(func(rb *builder.QuoteBuilder) {
			rb.LineItems = []builder.LineItemSpec{{Service: "DJ set", Quantity: 1, Hours: 6, Rate: 140}}
		}).BuildContent()
		require.NoError(t, err)
		return content
	}

	t.Run("revise replaces content and restarts the window", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Respond(quote.DecisionRequestChanges, "More hours please", b.Now))

		reviseAt := b.Now.Add(24 * time.Hour)
		require.NoError(t, q.Revise(revisedContent(t), reviseAt))

		assert.Equal(t, quote.StatusRevised, q.Status())
		assert.Equal(t, 1, q.Revision())
		assert.Equal(t, 840.0, q.Total())
		require.NotNil(t, q.ExpiresAt())
		assert.Equal(t, reviseAt.Add(7*24*time.Hour), *q.ExpiresAt())
	})

	t.Run("revise directly from sent", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))

		require.NoError(t, q.Revise(revisedContent(t), b.Now))
		assert.Equal(t, quote.StatusRevised, q.Status())
	})

	t.Run("revised quote can be revised again", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Revise(revisedContent(t), b.Now))

		require.NoError(t, q.Revise(revisedContent(t), b.Now))
		assert.Equal(t, 2, q.Revision())
	})

	t.Run("no revise on a draft", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, q.Revise(revisedContent(t), b.Now), quote.ErrNotRevisable)
	})

	t.Run("no revise after decline", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Respond(quote.DecisionDecline, "", b.Now))

		assert.ErrorIs(t, q.Revise(revisedContent(t), b.Now), quote.ErrNotRevisable)
	})
}

func TestQuote_Withdraw(t *testing.T) {
	b := builder.NewQuoteBuilder()

	t.Run("withdraw a sent quote", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))

		require.NoError(t, q.Withdraw(b.Now))
		assert.Equal(t, quote.StatusWithdrawn, q.Status())
	})

	t.Run("no withdraw after acceptance", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Respond(quote.DecisionAccept, "", b.Now))

		assert.ErrorIs(t, q.Withdraw(b.Now), quote.ErrNotWithdrawable)
	})

	t.Run("no withdraw on a draft", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, q.Withdraw(b.Now), quote.ErrNotWithdrawable)
	})
}

func TestQuote_Conversion(t *testing.T) {
	b := builder.NewQuoteBuilder()

	accepted := func(t *testing.T) *quote.Quote {
		t.Helper()
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Respond(quote.DecisionAccept, "", b.Now))
		return q
	}

	t.Run("convert from accepted", func(t *testing.T) {
		q := accepted(t)
		require.NoError(t, q.MarkConverted(b.Now))
		assert.Equal(t, quote.StatusConverted, q.Status())
	})

	t.Run("converted is immutable", func(t *testing.T) {
		q := accepted(t)
		require.NoError(t, q.MarkConverted(b.Now))

		assert.ErrorIs(t, q.MarkConverted(b.Now), quote.ErrAlreadyConverted)
		assert.ErrorIs(t, q.Withdraw(b.Now), quote.ErrAlreadyConverted)
		assert.ErrorIs(t, q.Respond(quote.DecisionDecline, "", b.Now), quote.ErrAlreadyConverted)
		assert.ErrorIs(t, q.Send(b.Now), quote.ErrAlreadyConverted)

		content, err := builder.NewQuoteBuilder().BuildContent()
		require.NoError(t, err)
		assert.ErrorIs(t, q.Revise(content, b.Now), quote.ErrAlreadyConverted)
	})

	t.Run("no conversion straight from sent", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))

		assert.ErrorIs(t, q.MarkConverted(b.Now), quote.ErrIllegalTransition)
	})
}

func TestQuote_MarkExpired(t *testing.T) {
	b := builder.NewQuoteBuilder()

	t.Run("expire a sent quote", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))

		require.NoError(t, q.MarkExpired(b.Now.Add(8*24*time.Hour)))
		assert.Equal(t, quote.StatusExpired, q.Status())
	})

	t.Run("idempotent on terminal quotes", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Withdraw(b.Now))

		require.NoError(t, q.MarkExpired(b.Now))
		assert.Equal(t, quote.StatusWithdrawn, q.Status())
	})

	t.Run("accepted quotes can still expire", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))
		require.NoError(t, q.Respond(quote.DecisionAccept, "", b.Now))

		require.NoError(t, q.MarkExpired(b.Now.Add(8*24*time.Hour)))
		assert.Equal(t, quote.StatusExpired, q.Status())
	})
}

func TestQuote_UpdateDraft(t *testing.T) {
	b := builder.NewQuoteBuilder()

	t.Run("draft content is replaceable", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)

		content, err := builder.NewQuoteBuilder().With(func(rb *builder.QuoteBuilder) {
			rb.LineItems = []builder.LineItemSpec{{Service: "Catering", Quantity: 120, Hours: 1, Rate: 45}}
		}).BuildContent()
		require.NoError(t, err)

		require.NoError(t, q.UpdateDraft(content, b.Now))
		assert.Equal(t, 5400.0, q.Total())
		assert.Equal(t, 0, q.Revision())
	})

	t.Run("only drafts are editable in place", func(t *testing.T) {
		q, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, q.Send(b.Now))

		content, err := builder.NewQuoteBuilder().BuildContent()
		require.NoError(t, err)
		assert.ErrorIs(t, q.UpdateDraft(content, b.Now), quote.ErrNotDraft)
	})
}

func TestLineItem_Subtotal(t *testing.T) {
	li, err := quote.NewLineItem("Photography", 2, 3.5, 99.99)
	require.NoError(t, err)
	assert.Equal(t, 699.93, li.Subtotal())

	total := quote.Total([]quote.LineItem{li, li})
	assert.Equal(t, 1399.86, total)
}
