package quote

import (
	"strings"
	"time"

	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotDraft         = errs.New("quote is not a draft")
	ErrNotAwaiting      = errs.New("quote is not awaiting a decision")
	ErrNotRevisable     = errs.New("quote cannot be revised from its current state")
	ErrNotWithdrawable  = errs.New("quote cannot be withdrawn from its current state")
	ErrAlreadyConverted = errs.New("quote is already converted")
	ErrQuoteExpired     = errs.New("quote has expired")
	ErrNoteRequired     = errs.New("a note is required when requesting changes")
	ErrInvalidDecision  = errs.New("invalid decision")
	ErrIllegalTransition = errs.New("transition not permitted by the state machine")
)

// Services groups the injected collaborators the aggregate needs.
type Services struct {
	Clock clock.Clock
}

// Content is the revisable body of a quote: everything a revision replaces in
// one atomic step.
type Content struct {
	LineItems       []LineItem
	PaymentTerms    PaymentTerms
	Validity        Validity
	PersonalMessage string
}

// Quote is a vendor's priced response to a matched customer request. It is
// the single active quote of its parent quote request; revisions supersede it
// in place rather than forking a sibling.
type Quote struct {
	id             uuid.UUID
	quoteRequestID uuid.UUID
	vendorID       uuid.UUID
	customerID     uuid.UUID
	content        Content
	status         Status
	revision       int
	sentAt         *time.Time
	expiresAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// validateContent enforces the save/send guard: line items non-empty and all
// positive, total > 0, terms sum to 100. Validity is validated separately at
// construction of the Validity value.
func validateContent(c Content) error {
	if len(c.LineItems) == 0 {
		return ErrEmptyLineItems
	}
	if Total(c.LineItems) <= 0 {
		return ErrZeroTotal
	}
	return nil
}

// NewDraft creates a draft quote. No expiry is set until send.
func NewDraft(services *Services, quoteRequestID, vendorID, customerID uuid.UUID, content Content) (*Quote, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	now := services.Clock.Now()
	return &Quote{
		id:             uuid.New(),
		quoteRequestID: quoteRequestID,
		vendorID:       vendorID,
		customerID:     customerID,
		content:        content,
		status:         StatusDraft,
		revision:       0,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Reconstruct rebuilds a quote from persistence without re-running creation
// guards.
func Reconstruct(
	id, quoteRequestID, vendorID, customerID uuid.UUID,
	content Content,
	status Status,
	revision int,
	sentAt, expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Quote {
	return &Quote{
		id:             id,
		quoteRequestID: quoteRequestID,
		vendorID:       vendorID,
		customerID:     customerID,
		content:        content,
		status:         status,
		revision:       revision,
		sentAt:         sentAt,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// UpdateDraft replaces the content of a draft. Total is recomputed from the
// new line items by construction.
func (q *Quote) UpdateDraft(content Content, now time.Time) error {
	if q.status != StatusDraft {
		return ErrNotDraft
	}
	if err := validateContent(content); err != nil {
		return err
	}
	q.content = content
	q.updatedAt = now
	return nil
}

// Send makes the draft visible to the customer and starts the validity
// window.
func (q *Quote) Send(now time.Time) error {
	if q.status == StatusConverted {
		return ErrAlreadyConverted
	}
	if q.status != StatusDraft {
		return ErrNotDraft
	}
	if err := validateContent(q.content); err != nil {
		return err
	}
	exp := q.content.Validity.ExpiresAt(now)
	q.status = StatusSent
	q.sentAt = &now
	q.expiresAt = &exp
	q.updatedAt = now
	return nil
}

// Respond records the customer's decision on a quote awaiting one. Expiry is
// checked by the caller before invoking any transition; the guard here is a
// backstop.
func (q *Quote) Respond(decision Decision, note string, now time.Time) error {
	if !decision.IsValid() {
		return ErrInvalidDecision
	}
	if q.status == StatusConverted {
		return ErrAlreadyConverted
	}
	if !q.status.AwaitingDecision() {
		return ErrNotAwaiting
	}
	if q.expiresAt != nil && now.After(*q.expiresAt) {
		return ErrQuoteExpired
	}
	if decision == DecisionRequestChanges && strings.TrimSpace(note) == "" {
		return ErrNoteRequired
	}
	return q.transition(decision.Status(), now)
}

// Revise replaces the quote content in one atomic step and re-enters the
// awaiting-decision state. The validity window restarts from revision time.
func (q *Quote) Revise(content Content, now time.Time) error {
	if q.status == StatusConverted {
		return ErrAlreadyConverted
	}
	if !q.status.AwaitingDecision() && q.status != StatusChangesRequested {
		return ErrNotRevisable
	}
	if err := validateContent(content); err != nil {
		return err
	}
	if err := q.transition(StatusRevised, now); err != nil {
		return err
	}
	exp := content.Validity.ExpiresAt(now)
	q.content = content
	q.revision++
	q.sentAt = &now
	q.expiresAt = &exp
	return nil
}

// Withdraw retracts a quote the customer has not decided on. Vendor-only;
// role enforcement lives in the usecase layer.
func (q *Quote) Withdraw(now time.Time) error {
	if q.status == StatusConverted {
		return ErrAlreadyConverted
	}
	if !q.status.AwaitingDecision() {
		return ErrNotWithdrawable
	}
	return q.transition(StatusWithdrawn, now)
}

// MarkExpired coerces the status after a lazy expiry check. Idempotent on
// already-terminal quotes.
func (q *Quote) MarkExpired(now time.Time) error {
	if q.status.IsTerminal() {
		return nil
	}
	return q.transition(StatusExpired, now)
}

// MarkConverted finalizes the conversion. Legal only from accepted; the
// coordinator accepts first when converting straight from sent.
func (q *Quote) MarkConverted(now time.Time) error {
	if q.status == StatusConverted {
		return ErrAlreadyConverted
	}
	if q.status != StatusAccepted {
		return ErrIllegalTransition
	}
	return q.transition(StatusConverted, now)
}

func (q *Quote) transition(to Status, now time.Time) error {
	if !CanTransition(q.status, to) {
		return ErrIllegalTransition
	}
	q.status = to
	q.updatedAt = now
	return nil
}

func (q *Quote) ID() uuid.UUID             { return q.id }
func (q *Quote) QuoteRequestID() uuid.UUID { return q.quoteRequestID }
func (q *Quote) VendorID() uuid.UUID       { return q.vendorID }
func (q *Quote) CustomerID() uuid.UUID     { return q.customerID }
func (q *Quote) Content() Content          { return q.content }
func (q *Quote) LineItems() []LineItem     { return q.content.LineItems }
func (q *Quote) PaymentTerms() PaymentTerms { return q.content.PaymentTerms }
func (q *Quote) Validity() Validity        { return q.content.Validity }
func (q *Quote) PersonalMessage() string   { return q.content.PersonalMessage }
func (q *Quote) Status() Status            { return q.status }
func (q *Quote) Revision() int             { return q.revision }
func (q *Quote) SentAt() *time.Time        { return q.sentAt }
func (q *Quote) ExpiresAt() *time.Time     { return q.expiresAt }
func (q *Quote) CreatedAt() time.Time      { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time      { return q.updatedAt }

// Total is always recomputed from line items; nothing persists a stale sum.
func (q *Quote) Total() float64 {
	return Total(q.content.LineItems)
}
