//go:build unit

package commands_test

import (
	"context"
	"time"

	"quoteflow/internal/domain/quote"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the persistence layer. It honors
// the CAS contract of the repositories so the concurrency paths are
// exercisable without a database.
type fakeStore struct {
	quotes   map[uuid.UUID]*shared.QuoteSnapshot
	requests map[uuid.UUID]*shared.RequestSnapshot
	slots    map[uuid.UUID]*shared.QuoteRequestSnapshot

	bookings  []shared.BookingRecord
	revisions []archivedRevision
	jobs      []notificationJob

	bookingErr error
	// invoked after each QuoteByID read, before the transaction writes;
	// simulates a concurrent writer landing in between.
	afterQuoteRead func(s *fakeStore)
}

type archivedRevision struct {
	QuoteID      uuid.UUID
	Revision     int
	DecisionNote *string
}

type notificationJob struct {
	Kind  string
	Topic string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		quotes:   make(map[uuid.UUID]*shared.QuoteSnapshot),
		requests: make(map[uuid.UUID]*shared.RequestSnapshot),
		slots:    make(map[uuid.UUID]*shared.QuoteRequestSnapshot),
	}
}

func (s *fakeStore) topics() []string {
	out := make([]string, len(s.jobs))
	for i, j := range s.jobs {
		out[i] = j.Topic
	}
	return out
}

// requestStatusFor resolves the parent request status the read side would
// join in.
func (s *fakeStore) requestStatusFor(snap *shared.QuoteSnapshot) string {
	if slot, ok := s.slots[snap.QuoteRequestID]; ok {
		if req, ok := s.requests[slot.RequestID]; ok {
			return req.Status
		}
	}
	return snap.RequestStatus
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Quotes() shared.QuoteRepository               { return &fakeQuoteRepo{store: t.store} }
func (t *fakeTx) Requests() shared.RequestRepository           { return &fakeRequestRepo{store: t.store} }
func (t *fakeTx) QuoteRequests() shared.QuoteRequestRepository { return &fakeSlotRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository           { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{store: t.store} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) QuoteByID(_ context.Context, id uuid.UUID) (*shared.QuoteSnapshot, error) {
	snap, ok := r.store.quotes[id]
	if !ok {
		return nil, infra.WrapRepoErr("quote not found", nil, infra.KindNotFound)
	}
	cp := *snap
	cp.RequestStatus = r.store.requestStatusFor(snap)
	if r.store.afterQuoteRead != nil {
		hook := r.store.afterQuoteRead
		r.store.afterQuoteRead = nil
		hook(r.store)
	}
	return &cp, nil
}

func (r *fakeReads) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	snap, ok := r.store.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
	}
	cp := *snap
	cp.HasVendorResponse = false
	for _, q := range r.store.quotes {
		slot, ok := r.store.slots[q.QuoteRequestID]
		if ok && slot.RequestID == id && q.Status != quote.StatusDraft.String() {
			cp.HasVendorResponse = true
			break
		}
	}
	return &cp, nil
}

func (r *fakeReads) QuoteRequestByID(_ context.Context, id uuid.UUID) (*shared.QuoteRequestSnapshot, error) {
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("quote request not found", nil, infra.KindNotFound)
	}
	cp := *slot
	if req, ok := r.store.requests[slot.RequestID]; ok {
		cp.RequestStatus = req.Status
		cp.RequestLocation = req.Location
	}
	cp.HasActiveQuote = false
	for _, q := range r.store.quotes {
		if q.QuoteRequestID == id && !quote.Status(q.Status).IsTerminal() {
			cp.HasActiveQuote = true
			break
		}
	}
	return &cp, nil
}

type fakeQuoteRepo struct {
	store *fakeStore
}

func quoteToSnapshot(q *quote.Quote) shared.QuoteSnapshot {
	items := make([]shared.QuoteLineItem, len(q.LineItems()))
	for i, li := range q.LineItems() {
		items[i] = shared.QuoteLineItem{
			Service:  li.Service(),
			Quantity: li.Quantity(),
			Hours:    li.Hours(),
			Rate:     li.Rate(),
			Subtotal: li.Subtotal(),
		}
	}
	return shared.QuoteSnapshot{
		ID:               q.ID(),
		QuoteRequestID:   q.QuoteRequestID(),
		VendorID:         q.VendorID(),
		CustomerID:       q.CustomerID(),
		LineItems:        items,
		Total:            q.Total(),
		DepositPercent:   q.PaymentTerms().DepositPercent(),
		BalancePercent:   q.PaymentTerms().BalancePercent(),
		ValidityDuration: string(q.Validity().Duration()),
		CustomExpiryDate: q.Validity().CustomExpiry(),
		PersonalMessage:  q.PersonalMessage(),
		Status:           q.Status().String(),
		Revision:         q.Revision(),
		SentAt:           q.SentAt(),
		ExpiresAt:        q.ExpiresAt(),
		CreatedAt:        q.CreatedAt(),
		UpdatedAt:        q.UpdatedAt(),
	}
}

func (r *fakeQuoteRepo) Create(_ context.Context, _ db.DBTX, q *quote.Quote) (uuid.UUID, error) {
	for _, existing := range r.store.quotes {
		if existing.QuoteRequestID == q.QuoteRequestID() && !quote.Status(existing.Status).IsTerminal() {
			return uuid.Nil, infra.WrapRepoErr("active quote already exists", nil, infra.KindConflict)
		}
	}
	snap := quoteToSnapshot(q)
	snap.Version = 1
	r.store.quotes[snap.ID] = &snap
	return snap.ID, nil
}

func (r *fakeQuoteRepo) Save(_ context.Context, _ db.DBTX, q *quote.Quote, expected shared.CAS) (int64, error) {
	stored, ok := r.store.quotes[q.ID()]
	if !ok {
		return 0, nil
	}
	if stored.Status != expected.Status || stored.Version != expected.Version {
		return 0, nil
	}
	snap := quoteToSnapshot(q)
	snap.Version = stored.Version + 1
	snap.CreatedAt = stored.CreatedAt
	r.store.quotes[q.ID()] = &snap
	return 1, nil
}

func (r *fakeQuoteRepo) ArchiveRevision(_ context.Context, _ db.DBTX, prior *shared.QuoteSnapshot, decisionNote *string) error {
	for _, rev := range r.store.revisions {
		if rev.QuoteID == prior.ID && rev.Revision == prior.Revision {
			return infra.WrapRepoErr("revision already archived", nil, infra.KindDuplicateKey)
		}
	}
	r.store.revisions = append(r.store.revisions, archivedRevision{
		QuoteID:      prior.ID,
		Revision:     prior.Revision,
		DecisionNote: decisionNote,
	})
	return nil
}

type fakeRequestRepo struct {
	store *fakeStore
}

func requestToSnapshot(r *request.CustomerRequest) shared.RequestSnapshot {
	allocs := make([]shared.BudgetAllocationSnapshot, len(r.Allocations()))
	for i, a := range r.Allocations() {
		allocs[i] = shared.BudgetAllocationSnapshot{SpecialtyID: a.SpecialtyID, BudgetedAmount: a.BudgetedAmount}
	}
	atts := make([]shared.AttachmentSnapshot, len(r.Attachments()))
	for i, a := range r.Attachments() {
		atts[i] = shared.AttachmentSnapshot{ID: a.ID, URL: a.URL, Name: a.Name}
	}
	d := r.Details()
	return shared.RequestSnapshot{
		ID:                r.ID(),
		CustomerID:        r.CustomerID(),
		ServiceCategoryID: r.ServiceCategoryID(),
		Title:             d.Title,
		Description:       d.Description,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		GuestCount:        d.GuestCount,
		Location:          d.Location,
		Allocations:       allocs,
		Attachments:       atts,
		Status:            r.Status().String(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func (fr *fakeRequestRepo) Create(_ context.Context, _ db.DBTX, r *request.CustomerRequest) (uuid.UUID, error) {
	snap := requestToSnapshot(r)
	snap.Version = 1
	fr.store.requests[snap.ID] = &snap
	return snap.ID, nil
}

func (fr *fakeRequestRepo) Save(_ context.Context, _ db.DBTX, r *request.CustomerRequest, expected shared.CAS) (int64, error) {
	stored, ok := fr.store.requests[r.ID()]
	if !ok {
		return 0, nil
	}
	if stored.Status != expected.Status || stored.Version != expected.Version {
		return 0, nil
	}
	snap := requestToSnapshot(r)
	snap.Version = stored.Version + 1
	snap.CreatedAt = stored.CreatedAt
	fr.store.requests[r.ID()] = &snap
	return 1, nil
}

type fakeSlotRepo struct {
	store *fakeStore
}

func (r *fakeSlotRepo) Create(_ context.Context, _ db.DBTX, requestID, vendorID, customerID uuid.UUID) (uuid.UUID, error) {
	for _, slot := range r.store.slots {
		if slot.RequestID == requestID && slot.VendorID == vendorID {
			return uuid.Nil, infra.WrapRepoErr("vendor is already matched", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.store.slots[id] = &shared.QuoteRequestSnapshot{
		ID:         id,
		RequestID:  requestID,
		VendorID:   vendorID,
		CustomerID: customerID,
		CreatedAt:  time.Now(),
	}
	return id, nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b shared.BookingRecord) (uuid.UUID, error) {
	if r.store.bookingErr != nil {
		err := r.store.bookingErr
		r.store.bookingErr = nil
		return uuid.Nil, err
	}
	for _, existing := range r.store.bookings {
		if existing.QuoteID == b.QuoteID {
			return uuid.Nil, infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.store.bookings = append(r.store.bookings, b)
	return uuid.New(), nil
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, _ []byte, _ time.Time) error {
	r.store.jobs = append(r.store.jobs, notificationJob{Kind: kind, Topic: topic})
	return nil
}
