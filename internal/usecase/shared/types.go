package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads. They are intentionally flat; the
// commands reconstruct domain aggregates from them before applying guards.

type QuoteLineItem struct {
	Service  string  `json:"service"`
	Quantity int     `json:"quantity"`
	Hours    float64 `json:"hours"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
}

type QuoteSnapshot struct {
	ID               uuid.UUID
	QuoteRequestID   uuid.UUID
	VendorID         uuid.UUID
	CustomerID       uuid.UUID
	LineItems        []QuoteLineItem
	Total            float64
	DepositPercent   int
	BalancePercent   int
	ValidityDuration string
	CustomExpiryDate *time.Time
	PersonalMessage  string
	Status           string
	Revision         int
	Version          int64
	SentAt           *time.Time
	ExpiresAt        *time.Time
	// Parent request status, used for the lazy parent-cancelled coercion.
	RequestStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type BudgetAllocationSnapshot struct {
	SpecialtyID    uuid.UUID `json:"specialty_id"`
	BudgetedAmount float64   `json:"budgeted_amount"`
}

type AttachmentSnapshot struct {
	ID   uuid.UUID `json:"id"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
}

type RequestSnapshot struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	ServiceCategoryID uuid.UUID
	Title             string
	Description       string
	StartDate         time.Time
	EndDate           time.Time
	GuestCount        int
	Location          string
	Allocations       []BudgetAllocationSnapshot
	Attachments       []AttachmentSnapshot
	Status            string
	Version           int64
	// True once any quote against this request has left draft state; guards
	// the reopen-draft exception path.
	HasVendorResponse bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type QuoteRequestSnapshot struct {
	ID              uuid.UUID
	RequestID       uuid.UUID
	VendorID        uuid.UUID
	CustomerID      uuid.UUID
	RequestStatus   string
	RequestLocation string
	// An active quote is any non-terminal one; the match slot holds at most
	// one at a time.
	HasActiveQuote bool
	CreatedAt      time.Time
}

// BookingRecord is the write model handed to the booking subsystem.
type BookingRecord struct {
	QuoteID        uuid.UUID
	QuoteRequestID uuid.UUID
	RequestID      uuid.UUID
	VendorID       uuid.UUID
	CustomerID     uuid.UUID
	Location       string
	Total          float64
	DepositPercent int
	BalancePercent int
}
