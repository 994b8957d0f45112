//go:build unit || e2e

package builder

import (
	"time"

	domrequest "quoteflow/internal/domain/request"
	reqdto "quoteflow/internal/handler/dto/request"
	"quoteflow/internal/usecase/commands"
	"quoteflow/internal/usecase/queries"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	CustomerID        uuid.UUID
	ServiceCategoryID uuid.UUID
	Title             string
	Description       string
	StartDate         time.Time
	EndDate           time.Time
	GuestCount        int
	Location          string
	Allocations       []domrequest.BudgetAllocation
	Attachments       []domrequest.Attachment
	Now               time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &RequestBuilder{
		CustomerID:        uuid.New(),
		ServiceCategoryID: uuid.New(),
		Title:             "Summer Wedding",
		Description:       "Outdoor ceremony and evening reception",
		StartDate:         now.AddDate(0, 3, 0),
		EndDate:           now.AddDate(0, 3, 1),
		GuestCount:        120,
		Location:          "Lakeside Pavilion",
		Allocations: []domrequest.BudgetAllocation{
			{SpecialtyID: uuid.New(), BudgetedAmount: 2500},
		},
		Attachments: nil,
		Now:         now,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) details() domrequest.EventDetails {
	return domrequest.EventDetails{
		Title:       b.Title,
		Description: b.Description,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		GuestCount:  b.GuestCount,
		Location:    b.Location,
	}
}

func (b *RequestBuilder) BuildDomain() *domrequest.CustomerRequest {
	return domrequest.NewDraft(b.CustomerID, b.ServiceCategoryID, b.details(), b.Allocations, b.Attachments, b.Now)
}

// BuildSubmitted builds a request that has passed the submit guard.
func (b *RequestBuilder) BuildSubmitted() (*domrequest.CustomerRequest, error) {
	r := b.BuildDomain()
	if err := r.Submit(b.Now); err != nil {
		return nil, err
	}
	return r, nil
}

func (b *RequestBuilder) BuildSnapshot(status domrequest.Status) *shared.RequestSnapshot {
	allocs := make([]shared.BudgetAllocationSnapshot, len(b.Allocations))
	for i, a := range b.Allocations {
		allocs[i] = shared.BudgetAllocationSnapshot{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]shared.AttachmentSnapshot, len(b.Attachments))
	for i, a := range b.Attachments {
		atts[i] = shared.AttachmentSnapshot{ID: a.ID, URL: a.URL, Name: a.Name}
	}
	return &shared.RequestSnapshot{
		ID:                uuid.New(),
		CustomerID:        b.CustomerID,
		ServiceCategoryID: b.ServiceCategoryID,
		Title:             b.Title,
		Description:       b.Description,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		GuestCount:        b.GuestCount,
		Location:          b.Location,
		Allocations:       allocs,
		Attachments:       atts,
		Status:            string(status),
		Version:           1,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}

func (b *RequestBuilder) BuildInput() commands.RequestInput {
	allocs := make([]commands.BudgetAllocationInput, len(b.Allocations))
	for i, a := range b.Allocations {
		allocs[i] = commands.BudgetAllocationInput{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]commands.AttachmentInput, len(b.Attachments))
	for i, a := range b.Attachments {
		atts[i] = commands.AttachmentInput{URL: a.URL, Name: a.Name}
	}
	return commands.RequestInput{
		ServiceCategoryID: b.ServiceCategoryID,
		Details: commands.EventDetailsInput{
			Title:       b.Title,
			Description: b.Description,
			StartDate:   b.StartDate,
			EndDate:     b.EndDate,
			GuestCount:  b.GuestCount,
			Location:    b.Location,
		},
		Allocations: allocs,
		Attachments: atts,
	}
}

func (b *RequestBuilder) BuildPayloadDTO() reqdto.CustomerRequestPayload {
	allocs := make([]reqdto.BudgetAllocationRequest, len(b.Allocations))
	for i, a := range b.Allocations {
		allocs[i] = reqdto.BudgetAllocationRequest{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]reqdto.AttachmentRequest, len(b.Attachments))
	for i, a := range b.Attachments {
		atts[i] = reqdto.AttachmentRequest{URL: a.URL, Name: a.Name}
	}
	start := b.StartDate
	end := b.EndDate
	return reqdto.CustomerRequestPayload{
		ServiceCategoryID: b.ServiceCategoryID,
		Title:             b.Title,
		Description:       b.Description,
		StartDate:         &start,
		EndDate:           &end,
		GuestCount:        b.GuestCount,
		Location:          b.Location,
		Allocations:       allocs,
		Attachments:       atts,
	}
}

func (b *RequestBuilder) BuildView(status string) *queries.RequestView {
	allocs := make([]queries.BudgetAllocationView, len(b.Allocations))
	for i, a := range b.Allocations {
		allocs[i] = queries.BudgetAllocationView{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]queries.AttachmentView, len(b.Attachments))
	for i, a := range b.Attachments {
		atts[i] = queries.AttachmentView{ID: a.ID, URL: a.URL, Name: a.Name}
	}
	start := b.StartDate
	end := b.EndDate
	return &queries.RequestView{
		ID:                uuid.New(),
		CustomerID:        b.CustomerID,
		ServiceCategoryID: b.ServiceCategoryID,
		Title:             b.Title,
		Description:       b.Description,
		StartDate:         &start,
		EndDate:           &end,
		GuestCount:        b.GuestCount,
		Location:          b.Location,
		Allocations:       allocs,
		Attachments:       atts,
		Status:            status,
		CreatedAt:         b.Now,
		UpdatedAt:         b.Now,
	}
}
