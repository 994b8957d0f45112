package response

import (
	"time"

	"quoteflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	QuoteID        uuid.UUID `json:"quoteId"`
	RequestID      uuid.UUID `json:"requestId"`
	RequestTitle   string    `json:"requestTitle"`
	VendorID       uuid.UUID `json:"vendorId"`
	CustomerID     uuid.UUID `json:"customerId"`
	Location       string    `json:"location"`
	Total          float64   `json:"total"`
	DepositPercent int       `json:"depositPercent"`
	BalancePercent int       `json:"balancePercent"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		QuoteID:        v.QuoteID,
		RequestID:      v.RequestID,
		RequestTitle:   v.RequestTitle,
		VendorID:       v.VendorID,
		CustomerID:     v.CustomerID,
		Location:       v.Location,
		Total:          v.Total,
		DepositPercent: v.DepositPercent,
		BalancePercent: v.BalancePercent,
		CreatedAt:      v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
