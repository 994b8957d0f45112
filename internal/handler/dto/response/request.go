package response

import (
	"time"

	"quoteflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type BudgetAllocationResponse struct {
	SpecialtyID    uuid.UUID `json:"specialtyId"`
	BudgetedAmount float64   `json:"budgetedAmount"`
}

type AttachmentResponse struct {
	ID   uuid.UUID `json:"id"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
}

type RequestResponse struct {
	ID                uuid.UUID                  `json:"id"`
	CustomerID        uuid.UUID                  `json:"customerId"`
	ServiceCategoryID uuid.UUID                  `json:"serviceCategoryId"`
	Title             string                     `json:"title"`
	Description       string                     `json:"description,omitempty"`
	StartDate         *time.Time                 `json:"startDate,omitempty"`
	EndDate           *time.Time                 `json:"endDate,omitempty"`
	GuestCount        int                        `json:"guestCount"`
	Location          string                     `json:"location,omitempty"`
	Allocations       []BudgetAllocationResponse `json:"budgetAllocations"`
	Attachments       []AttachmentResponse       `json:"attachments"`
	Status            string                     `json:"status"`
	HasVendorResponse bool                       `json:"hasVendorResponse"`
	CreatedAt         time.Time                  `json:"createdAt"`
	UpdatedAt         time.Time                  `json:"updatedAt"`
}

type RequestListItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	GuestCount int        `json:"guestCount"`
	Status     string     `json:"status"`
	QuoteCount int        `json:"quoteCount"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type RequestListResponse struct {
	Items      []*RequestListItemResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	allocs := make([]BudgetAllocationResponse, len(v.Allocations))
	for i, a := range v.Allocations {
		allocs[i] = BudgetAllocationResponse{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]AttachmentResponse, len(v.Attachments))
	for i, a := range v.Attachments {
		atts[i] = AttachmentResponse{ID: a.ID, URL: a.URL, Name: a.Name}
	}
	return &RequestResponse{
		ID:                v.ID,
		CustomerID:        v.CustomerID,
		ServiceCategoryID: v.ServiceCategoryID,
		Title:             v.Title,
		Description:       v.Description,
		StartDate:         v.StartDate,
		EndDate:           v.EndDate,
		GuestCount:        v.GuestCount,
		Location:          v.Location,
		Allocations:       allocs,
		Attachments:       atts,
		Status:            v.Status,
		HasVendorResponse: v.HasVendorResponse,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromRequestListItems(items []*queries.RequestListItem, next *queries.Cursor) *RequestListResponse {
	out := make([]*RequestListItemResponse, len(items))
	for i, item := range items {
		out[i] = &RequestListItemResponse{
			ID:         item.ID,
			Title:      item.Title,
			StartDate:  item.StartDate,
			GuestCount: item.GuestCount,
			Status:     item.Status,
			QuoteCount: item.QuoteCount,
			CreatedAt:  item.CreatedAt,
		}
	}
	resp := &RequestListResponse{Items: out}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
