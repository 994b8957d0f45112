package request

import (
	"strings"
	"time"

	"quoteflow/internal/usecase/commands"

	"github.com/google/uuid"
)

type LineItemRequest struct {
	Service  string  `json:"service" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Hours    float64 `json:"hours" binding:"required,gt=0"`
	Rate     float64 `json:"rate" binding:"required,gt=0"`
}

type QuoteContentRequest struct {
	LineItems        []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	DepositPercent   int               `json:"deposit_percent" binding:"min=0,max=100"`
	BalancePercent   int               `json:"balance_percent" binding:"min=0,max=100"`
	ValidityDuration string            `json:"validity_duration" binding:"required,oneof=7_days 14_days 30_days custom"`
	CustomExpiryDate *time.Time        `json:"custom_expiry_date,omitempty"`
	PersonalMessage  string            `json:"personal_message,omitempty"`
}

func (r QuoteContentRequest) ToInput() commands.QuoteContentInput {
	items := make([]commands.LineItemInput, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = commands.LineItemInput{
			Service:  strings.TrimSpace(li.Service),
			Quantity: li.Quantity,
			Hours:    li.Hours,
			Rate:     li.Rate,
		}
	}
	return commands.QuoteContentInput{
		LineItems:        items,
		DepositPercent:   r.DepositPercent,
		BalancePercent:   r.BalancePercent,
		ValidityDuration: r.ValidityDuration,
		CustomExpiryDate: r.CustomExpiryDate,
		PersonalMessage:  strings.TrimSpace(r.PersonalMessage),
	}
}

type CreateQuoteRequest struct {
	QuoteRequestID uuid.UUID `json:"quote_request_id" binding:"required"`
	QuoteContentRequest
}

// RespondToQuoteRequest carries the customer decision. Note is required when
// requesting changes; Location optionally overrides the event location when
// accepting.
type RespondToQuoteRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=accept decline request_changes"`
	Note     string  `json:"note,omitempty"`
	Location *string `json:"location,omitempty"`
}
