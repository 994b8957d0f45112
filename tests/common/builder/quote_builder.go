//go:build unit || e2e

package builder

import (
	"time"

	domquote "quoteflow/internal/domain/quote"
	reqdto "quoteflow/internal/handler/dto/request"
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/queries"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type LineItemSpec struct {
	Service  string
	Quantity int
	Hours    float64
	Rate     float64
}

type QuoteBuilder struct {
	QuoteRequestID   uuid.UUID
	VendorID         uuid.UUID
	CustomerID       uuid.UUID
	LineItems        []LineItemSpec
	DepositPercent   int
	BalancePercent   int
	ValidityDuration domquote.ValidityDuration
	CustomExpiryDate *time.Time
	PersonalMessage  string
	Now              time.Time
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		QuoteRequestID: uuid.New(),
		VendorID:       uuid.New(),
		CustomerID:     uuid.New(),
		LineItems: []LineItemSpec{
			{Service: "DJ set", Quantity: 1, Hours: 4, Rate: 150},
		},
		DepositPercent:   50,
		BalancePercent:   50,
		ValidityDuration: domquote.Validity7Days,
		PersonalMessage:  "Looking forward to your event!",
		Now:              time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildContent() (domquote.Content, error) {
	items := make([]domquote.LineItem, 0, len(b.LineItems))
	for _, li := range b.LineItems {
		item, err := domquote.NewLineItem(li.Service, li.Quantity, li.Hours, li.Rate)
		if err != nil {
			return domquote.Content{}, err
		}
		items = append(items, item)
	}
	terms, err := domquote.NewPaymentTerms(b.DepositPercent, b.BalancePercent)
	if err != nil {
		return domquote.Content{}, err
	}
	validity, err := domquote.NewValidity(b.ValidityDuration, b.CustomExpiryDate, b.Now)
	if err != nil {
		return domquote.Content{}, err
	}
	return domquote.Content{
		LineItems:       items,
		PaymentTerms:    terms,
		Validity:        validity,
		PersonalMessage: b.PersonalMessage,
	}, nil
}

func (b *QuoteBuilder) BuildDomain() (*domquote.Quote, error) {
	content, err := b.BuildContent()
	if err != nil {
		return nil, err
	}
	services := &domquote.Services{Clock: clock.NewMockClock(b.Now)}
	return domquote.NewDraft(services, b.QuoteRequestID, b.VendorID, b.CustomerID, content)
}

// BuildSnapshot produces a command-side snapshot in the given status. Sent
// and expiry timestamps follow the status so the reconstruction guards hold.
func (b *QuoteBuilder) BuildSnapshot(status domquote.Status) *shared.QuoteSnapshot {
	items := make([]shared.QuoteLineItem, len(b.LineItems))
	var total float64
	for i, li := range b.LineItems {
		sub := float64(li.Quantity) * li.Hours * li.Rate
		items[i] = shared.QuoteLineItem{
			Service:  li.Service,
			Quantity: li.Quantity,
			Hours:    li.Hours,
			Rate:     li.Rate,
			Subtotal: sub,
		}
		total += sub
	}
	snap := &shared.QuoteSnapshot{
		ID:               uuid.New(),
		QuoteRequestID:   b.QuoteRequestID,
		VendorID:         b.VendorID,
		CustomerID:       b.CustomerID,
		LineItems:        items,
		Total:            total,
		DepositPercent:   b.DepositPercent,
		BalancePercent:   b.BalancePercent,
		ValidityDuration: string(b.ValidityDuration),
		CustomExpiryDate: b.CustomExpiryDate,
		PersonalMessage:  b.PersonalMessage,
		Status:           string(status),
		Revision:         0,
		Version:          1,
		RequestStatus:    "matched",
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
	if status != domquote.StatusDraft {
		sentAt := b.Now
		expiresAt := sentAt.Add(7 * 24 * time.Hour)
		snap.SentAt = &sentAt
		snap.ExpiresAt = &expiresAt
	}
	return snap
}

func (b *QuoteBuilder) BuildContentInput() commands.QuoteContentInput {
	items := make([]commands.LineItemInput, len(b.LineItems))
	for i, li := range b.LineItems {
		items[i] = commands.LineItemInput{
			Service:  li.Service,
			Quantity: li.Quantity,
			Hours:    li.Hours,
			Rate:     li.Rate,
		}
	}
	return commands.QuoteContentInput{
		LineItems:        items,
		DepositPercent:   b.DepositPercent,
		BalancePercent:   b.BalancePercent,
		ValidityDuration: string(b.ValidityDuration),
		CustomExpiryDate: b.CustomExpiryDate,
		PersonalMessage:  b.PersonalMessage,
	}
}

func (b *QuoteBuilder) BuildCreateRequestDTO() reqdto.CreateQuoteRequest {
	items := make([]reqdto.LineItemRequest, len(b.LineItems))
	for i, li := range b.LineItems {
		items[i] = reqdto.LineItemRequest{
			Service:  li.Service,
			Quantity: li.Quantity,
			Hours:    li.Hours,
			Rate:     li.Rate,
		}
	}
	return reqdto.CreateQuoteRequest{
		QuoteRequestID: b.QuoteRequestID,
		QuoteContentRequest: reqdto.QuoteContentRequest{
			LineItems:        items,
			DepositPercent:   b.DepositPercent,
			BalancePercent:   b.BalancePercent,
			ValidityDuration: string(b.ValidityDuration),
			CustomExpiryDate: b.CustomExpiryDate,
			PersonalMessage:  b.PersonalMessage,
		},
	}
}

func (b *QuoteBuilder) BuildListItem(status string) *queries.QuoteListItem {
	var total float64
	for _, li := range b.LineItems {
		total += float64(li.Quantity) * li.Hours * li.Rate
	}
	item := &queries.QuoteListItem{
		ID:            uuid.New(),
		RequestID:     uuid.New(),
		RequestTitle:  "Summer Wedding",
		Status:        status,
		Total:         total,
		Revision:      0,
		TimeRemaining: "none",
		CreatedAt:     b.Now,
	}
	if status != string(domquote.StatusDraft) {
		expiresAt := b.Now.Add(7 * 24 * time.Hour)
		item.ExpiresAt = &expiresAt
		item.TimeRemaining = "days"
	}
	return item
}

func (b *QuoteBuilder) BuildView(status string) *queries.QuoteView {
	items := make([]queries.QuoteLineItemView, len(b.LineItems))
	var total float64
	for i, li := range b.LineItems {
		sub := float64(li.Quantity) * li.Hours * li.Rate
		items[i] = queries.QuoteLineItemView{
			Service:  li.Service,
			Quantity: li.Quantity,
			Hours:    li.Hours,
			Rate:     li.Rate,
			Subtotal: sub,
		}
		total += sub
	}
	view := &queries.QuoteView{
		ID:               uuid.New(),
		QuoteRequestID:   b.QuoteRequestID,
		RequestID:        uuid.New(),
		RequestTitle:     "Summer Wedding",
		VendorID:         b.VendorID,
		CustomerID:       b.CustomerID,
		LineItems:        items,
		Total:            total,
		DepositPercent:   b.DepositPercent,
		BalancePercent:   b.BalancePercent,
		ValidityDuration: string(b.ValidityDuration),
		CustomExpiryDate: b.CustomExpiryDate,
		PersonalMessage:  b.PersonalMessage,
		Status:           status,
		Revision:         0,
		TimeRemaining:    "none",
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
	if status != string(domquote.StatusDraft) {
		sentAt := b.Now
		expiresAt := sentAt.Add(7 * 24 * time.Hour)
		view.SentAt = &sentAt
		view.ExpiresAt = &expiresAt
	}
	return view
}
