package response

import (
	"time"

	"quoteflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	Service  string  `json:"service"`
	Quantity int     `json:"quantity"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
}

type QuoteResponse struct {
	ID               uuid.UUID          `json:"id"`
	QuoteRequestID   uuid.UUID          `json:"quoteRequestId"`
	RequestID        uuid.UUID          `json:"requestId"`
	RequestTitle     string             `json:"requestTitle"`
	VendorID         uuid.UUID          `json:"vendorId"`
	CustomerID       uuid.UUID          `json:"customerId"`
	LineItems        []LineItemResponse `json:"lineItems"`
	Total            float64            `json:"total"`
	DepositPercent   int                `json:"depositPercent"`
	BalancePercent   int                `json:"balancePercent"`
	ValidityDuration string             `json:"validityDuration"`
	CustomExpiryDate *time.Time         `json:"customExpiryDate,omitempty"`
	PersonalMessage  string             `json:"personalMessage,omitempty"`
	Status           string             `json:"status"`
	Revision         int                `json:"revision"`
	SentAt           *time.Time         `json:"sentAt,omitempty"`
	ExpiresAt        *time.Time         `json:"expiresAt,omitempty"`
	TimeRemaining    string             `json:"timeRemaining"`
	IsUrgent         bool               `json:"isUrgent"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type QuoteListItemResponse struct {
	ID            uuid.UUID  `json:"id"`
	RequestID     uuid.UUID  `json:"requestId"`
	RequestTitle  string     `json:"requestTitle"`
	Status        string     `json:"status"`
	Total         float64    `json:"total"`
	Revision      int        `json:"revision"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	TimeRemaining string     `json:"timeRemaining"`
	IsUrgent      bool       `json:"isUrgent"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type QuoteListResponse struct {
	Items      []*QuoteListItemResponse `json:"items"`
	NextCursor string                   `json:"nextCursor,omitempty"`
}

type QuoteRevisionResponse struct {
	Revision        int                `json:"revision"`
	LineItems       []LineItemResponse `json:"lineItems"`
	Total           float64            `json:"total"`
	DepositPercent  int                `json:"depositPercent"`
	BalancePercent  int                `json:"balancePercent"`
	PersonalMessage string             `json:"personalMessage,omitempty"`
	Status          string             `json:"status"`
	DecisionNote    *string            `json:"decisionNote,omitempty"`
	ExpiresAt       *time.Time         `json:"expiresAt,omitempty"`
	SupersededAt    time.Time          `json:"supersededAt"`
}

func fromLineItemViews(items []queries.QuoteLineItemView) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, li := range items {
		out[i] = LineItemResponse{
			Service:  li.Service,
			Quantity: li.Quantity,
			Hours:    li.Hours,
			Rate:     li.Rate,
			Subtotal: li.Subtotal,
		}
	}
	return out
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		ID:               v.ID,
		QuoteRequestID:   v.QuoteRequestID,
		RequestID:        v.RequestID,
		RequestTitle:     v.RequestTitle,
		VendorID:         v.VendorID,
		CustomerID:       v.CustomerID,
		LineItems:        fromLineItemViews(v.LineItems),
		Total:            v.Total,
		DepositPercent:   v.DepositPercent,
		BalancePercent:   v.BalancePercent,
		ValidityDuration: v.ValidityDuration,
		CustomExpiryDate: v.CustomExpiryDate,
		PersonalMessage:  v.PersonalMessage,
		Status:           v.Status,
		Revision:         v.Revision,
		SentAt:           v.SentAt,
		ExpiresAt:        v.ExpiresAt,
		TimeRemaining:    v.TimeRemaining,
		IsUrgent:         v.IsUrgent,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromQuoteListItems(items []*queries.QuoteListItem, next *queries.Cursor) *QuoteListResponse {
	out := make([]*QuoteListItemResponse, len(items))
	for i, item := range items {
		out[i] = &QuoteListItemResponse{
			ID:            item.ID,
			RequestID:     item.RequestID,
			RequestTitle:  item.RequestTitle,
			Status:        item.Status,
			Total:         item.Total,
			Revision:      item.Revision,
			ExpiresAt:     item.ExpiresAt,
			TimeRemaining: item.TimeRemaining,
			IsUrgent:      item.IsUrgent,
			CreatedAt:     item.CreatedAt,
		}
	}
	resp := &QuoteListResponse{Items: out}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromQuoteRevisionViews(views []*queries.QuoteRevisionView) []*QuoteRevisionResponse {
	out := make([]*QuoteRevisionResponse, len(views))
	for i, v := range views {
		out[i] = &QuoteRevisionResponse{
			Revision:        v.Revision,
			LineItems:       fromLineItemViews(v.LineItems),
			Total:           v.Total,
			DepositPercent:  v.DepositPercent,
			BalancePercent:  v.BalancePercent,
			PersonalMessage: v.PersonalMessage,
			Status:          v.Status,
			DecisionNote:    v.DecisionNote,
			ExpiresAt:       v.ExpiresAt,
			SupersededAt:    v.SupersededAt,
		}
	}
	return out
}
