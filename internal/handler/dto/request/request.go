package request

import (
	"strings"
	"time"

	"quoteflow/internal/pkg/patch"
	"quoteflow/internal/usecase/commands"

	"github.com/google/uuid"
)

type BudgetAllocationRequest struct {
	SpecialtyID    uuid.UUID `json:"specialty_id" binding:"required"`
	BudgetedAmount float64   `json:"budgeted_amount" binding:"required,gt=0"`
}

type AttachmentRequest struct {
	URL  string `json:"url" binding:"required,url"`
	Name string `json:"name" binding:"required"`
}

// CustomerRequestPayload is deliberately lax: drafts may be partial, and the
// submit guard owns the completeness rules.
type CustomerRequestPayload struct {
	ServiceCategoryID uuid.UUID                 `json:"service_category_id" binding:"required"`
	Title             string                    `json:"title,omitempty"`
	Description       string                    `json:"description,omitempty"`
	StartDate         *time.Time                `json:"start_date,omitempty"`
	EndDate           *time.Time                `json:"end_date,omitempty"`
	GuestCount        int                       `json:"guest_count,omitempty" binding:"min=0"`
	Location          string                    `json:"location,omitempty"`
	Allocations       []BudgetAllocationRequest `json:"budget_allocations,omitempty" binding:"dive"`
	Attachments       []AttachmentRequest       `json:"attachments,omitempty" binding:"dive"`
}

func (r CustomerRequestPayload) ToInput() commands.RequestInput {
	details := commands.EventDetailsInput{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		StartDate:   patch.Coalesce(r.StartDate, time.Time{}),
		EndDate:     patch.Coalesce(r.EndDate, time.Time{}),
		GuestCount:  r.GuestCount,
		Location:    strings.TrimSpace(r.Location),
	}

	allocs := make([]commands.BudgetAllocationInput, len(r.Allocations))
	for i, a := range r.Allocations {
		allocs[i] = commands.BudgetAllocationInput{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]commands.AttachmentInput, len(r.Attachments))
	for i, a := range r.Attachments {
		atts[i] = commands.AttachmentInput{URL: a.URL, Name: a.Name}
	}

	return commands.RequestInput{
		ServiceCategoryID: r.ServiceCategoryID,
		Details:           details,
		Allocations:       allocs,
		Attachments:       atts,
	}
}

type MatchVendorRequest struct {
	VendorID uuid.UUID `json:"vendor_id" binding:"required"`
}
