package request

import (
	"strings"
	"time"

	"quoteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errs.New("event title must not be empty")
	ErrInvalidStartDate    = errs.New("event start date is required")
	ErrEndBeforeStart      = errs.New("event end date must not precede start date")
	ErrNegativeGuestCount  = errs.New("guest count must not be negative")
	ErrNoBudgetAllocations = errs.New("at least one budget allocation is required")
	ErrNonPositiveBudget   = errs.New("budgeted amount must be positive")
)

// EventDetails is the structural core of a customer request. It freezes on
// submit; edits afterwards go through the explicit reopen-draft path.
type EventDetails struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	GuestCount  int
	Location    string
}

func (d EventDetails) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if d.StartDate.IsZero() {
		return ErrInvalidStartDate
	}
	if !d.EndDate.IsZero() && d.EndDate.Before(d.StartDate) {
		return ErrEndBeforeStart
	}
	if d.GuestCount < 0 {
		return ErrNegativeGuestCount
	}
	return nil
}

// BudgetAllocation earmarks an amount for one vendor specialty. Order is
// meaningful and preserved.
type BudgetAllocation struct {
	SpecialtyID    uuid.UUID
	BudgetedAmount float64
}

// ValidateAllocations enforces the submit guard: at least one allocation with
// a positive amount.
func ValidateAllocations(allocs []BudgetAllocation) error {
	if len(allocs) == 0 {
		return ErrNoBudgetAllocations
	}
	for _, a := range allocs {
		if a.BudgetedAmount <= 0 {
			return ErrNonPositiveBudget
		}
	}
	return nil
}

// Attachment is an opaque reference supplied by the external file store.
type Attachment struct {
	ID   uuid.UUID
	URL  string
	Name string
}
