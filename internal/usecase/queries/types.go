package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type QuoteLineItemView struct {
	Service  string  `json:"service"`
	Quantity int     `json:"quantity"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
}

type QuoteView struct {
	ID               uuid.UUID           `json:"id"`
	QuoteRequestID   uuid.UUID           `json:"quote_request_id"`
	RequestID        uuid.UUID           `json:"request_id"`
	RequestTitle     string              `json:"request_title"`
	VendorID         uuid.UUID           `json:"vendor_id"`
	CustomerID       uuid.UUID           `json:"customer_id"`
	LineItems        []QuoteLineItemView `json:"line_items"`
	Total            float64             `json:"total"`
	DepositPercent   int                 `json:"deposit_percent"`
	BalancePercent   int                 `json:"balance_percent"`
	ValidityDuration string              `json:"validity_duration"`
	CustomExpiryDate *time.Time          `json:"custom_expiry_date,omitempty"`
	PersonalMessage  string              `json:"personal_message,omitempty"`
	Status           string              `json:"status"`
	Revision         int                 `json:"revision"`
	SentAt           *time.Time          `json:"sent_at,omitempty"`
	ExpiresAt        *time.Time          `json:"expires_at,omitempty"`
	TimeRemaining    string              `json:"time_remaining"`
	IsUrgent         bool                `json:"is_urgent"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type QuoteListItem struct {
	ID            uuid.UUID  `json:"id"`
	RequestID     uuid.UUID  `json:"request_id"`
	RequestTitle  string     `json:"request_title"`
	Status        string     `json:"status"`
	Total         float64    `json:"total"`
	Revision      int        `json:"revision"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	TimeRemaining string     `json:"time_remaining"`
	IsUrgent      bool       `json:"is_urgent"`
	CreatedAt     time.Time  `json:"created_at"`
}

type QuoteRevisionView struct {
	Revision        int                 `json:"revision"`
	LineItems       []QuoteLineItemView `json:"line_items"`
	Total           float64             `json:"total"`
	DepositPercent  int                 `json:"deposit_percent"`
	BalancePercent  int                 `json:"balance_percent"`
	PersonalMessage string              `json:"personal_message,omitempty"`
	Status          string              `json:"status"`
	DecisionNote    *string             `json:"decision_note,omitempty"`
	ExpiresAt       *time.Time          `json:"expires_at,omitempty"`
	SupersededAt    time.Time           `json:"superseded_at"`
}

type BudgetAllocationView struct {
	SpecialtyID    uuid.UUID `json:"specialty_id"`
	BudgetedAmount float64   `json:"budgeted_amount"`
}

type AttachmentView struct {
	ID   uuid.UUID `json:"id"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
}

type RequestView struct {
	ID                uuid.UUID              `json:"id"`
	CustomerID        uuid.UUID              `json:"customer_id"`
	ServiceCategoryID uuid.UUID              `json:"service_category_id"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description,omitempty"`
	StartDate         *time.Time             `json:"start_date,omitempty"`
	EndDate           *time.Time             `json:"end_date,omitempty"`
	GuestCount        int                    `json:"guest_count"`
	Location          string                 `json:"location,omitempty"`
	Allocations       []BudgetAllocationView `json:"budget_allocations"`
	Attachments       []AttachmentView       `json:"attachments"`
	Status            string                 `json:"status"`
	HasVendorResponse bool                   `json:"has_vendor_response"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type RequestListItem struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	GuestCount int        `json:"guest_count"`
	Status     string     `json:"status"`
	QuoteCount int        `json:"quote_count"`
	CreatedAt  time.Time  `json:"created_at"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	QuoteID        uuid.UUID `json:"quote_id"`
	RequestID      uuid.UUID `json:"request_id"`
	RequestTitle   string    `json:"request_title"`
	VendorID       uuid.UUID `json:"vendor_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	Location       string    `json:"location"`
	Total          float64   `json:"total"`
	DepositPercent int       `json:"deposit_percent"`
	BalancePercent int       `json:"balance_percent"`
	CreatedAt      time.Time `json:"created_at"`
}
