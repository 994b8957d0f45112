package request

import (
	"time"

	"quoteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotDraft            = errs.New("request is not a draft")
	ErrNotSubmitted        = errs.New("request is not submitted")
	ErrTerminal            = errs.New("request is in a terminal state")
	ErrVendorsResponded    = errs.New("request cannot be reopened after a vendor responded")
	ErrIllegalTransition   = errs.New("transition not permitted by the state machine")
	ErrNotMatchable        = errs.New("request must be submitted before matching vendors")
)

// CustomerRequest is a customer's event brief. It owns no quotes directly; a
// quote hangs off the QuoteRequest match pairing this request with a vendor.
type CustomerRequest struct {
	id                uuid.UUID
	customerID        uuid.UUID
	details           EventDetails
	serviceCategoryID uuid.UUID
	allocations       []BudgetAllocation
	attachments       []Attachment
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
}

// NewDraft creates a freely editable draft request. Submit-level guards are
// not applied yet; a draft may be structurally incomplete.
func NewDraft(customerID, serviceCategoryID uuid.UUID, details EventDetails, allocations []BudgetAllocation, attachments []Attachment, now time.Time) *CustomerRequest {
	return &CustomerRequest{
		id:                uuid.New(),
		customerID:        customerID,
		details:           details,
		serviceCategoryID: serviceCategoryID,
		allocations:       allocations,
		attachments:       attachments,
		status:            StatusDraft,
		createdAt:         now,
		updatedAt:         now,
	}
}

func Reconstruct(
	id, customerID, serviceCategoryID uuid.UUID,
	details EventDetails,
	allocations []BudgetAllocation,
	attachments []Attachment,
	status Status,
	createdAt, updatedAt time.Time,
) *CustomerRequest {
	return &CustomerRequest{
		id:                id,
		customerID:        customerID,
		serviceCategoryID: serviceCategoryID,
		details:           details,
		allocations:       allocations,
		attachments:       attachments,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// UpdateDraft replaces mutable content. Only legal while draft.
func (r *CustomerRequest) UpdateDraft(details EventDetails, serviceCategoryID uuid.UUID, allocations []BudgetAllocation, attachments []Attachment, now time.Time) error {
	if r.status != StatusDraft {
		return ErrNotDraft
	}
	r.details = details
	r.serviceCategoryID = serviceCategoryID
	r.allocations = allocations
	r.attachments = attachments
	r.updatedAt = now
	return nil
}

// Submit freezes the structural fields and makes the request visible for
// vendor matching.
func (r *CustomerRequest) Submit(now time.Time) error {
	if r.status != StatusDraft {
		return ErrNotDraft
	}
	if err := r.details.Validate(); err != nil {
		return err
	}
	if err := ValidateAllocations(r.allocations); err != nil {
		return err
	}
	return r.transition(StatusSubmitted, now)
}

// ReopenDraft is the explicit edit-draft exception path: revert to draft, but
// only while no vendor has responded. The caller supplies that fact since it
// lives on the quote side.
func (r *CustomerRequest) ReopenDraft(vendorHasResponded bool, now time.Time) error {
	if r.status != StatusSubmitted {
		return ErrNotSubmitted
	}
	if vendorHasResponded {
		return ErrVendorsResponded
	}
	return r.transition(StatusDraft, now)
}

// MarkMatched records that at least one vendor has been paired with the
// request.
func (r *CustomerRequest) MarkMatched(now time.Time) error {
	if r.status != StatusSubmitted && r.status != StatusMatched {
		return ErrNotMatchable
	}
	return r.transition(StatusMatched, now)
}

// Close ends the request, normally when one of its quotes converts.
func (r *CustomerRequest) Close(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminal
	}
	return r.transition(StatusClosed, now)
}

// Cancel is customer-only and legal from any non-terminal status.
// Outstanding quotes are invalidated lazily on their next read.
func (r *CustomerRequest) Cancel(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminal
	}
	return r.transition(StatusCancelled, now)
}

func (r *CustomerRequest) transition(to Status, now time.Time) error {
	if !CanTransition(r.status, to) {
		return ErrIllegalTransition
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *CustomerRequest) ID() uuid.UUID                    { return r.id }
func (r *CustomerRequest) CustomerID() uuid.UUID            { return r.customerID }
func (r *CustomerRequest) Details() EventDetails            { return r.details }
func (r *CustomerRequest) ServiceCategoryID() uuid.UUID     { return r.serviceCategoryID }
func (r *CustomerRequest) Allocations() []BudgetAllocation  { return r.allocations }
func (r *CustomerRequest) Attachments() []Attachment        { return r.attachments }
func (r *CustomerRequest) Status() Status                   { return r.status }
func (r *CustomerRequest) CreatedAt() time.Time             { return r.createdAt }
func (r *CustomerRequest) UpdatedAt() time.Time             { return r.updatedAt }
