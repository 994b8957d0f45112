package queries

import (
	"context"
	"time"

	"quoteflow/internal/domain/actor"
	"quoteflow/internal/domain/expiry"
	"quoteflow/internal/domain/quote"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/infra"
	"quoteflow/internal/pkg/clock"
	"quoteflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// QuoteRecord is the raw read-side row. Status is the stored value; the
// query service derives the effective status before it leaves this layer.
type QuoteRecord struct {
	ID               uuid.UUID
	QuoteRequestID   uuid.UUID
	RequestID        uuid.UUID
	RequestTitle     string
	RequestStatus    string
	VendorID         uuid.UUID
	CustomerID       uuid.UUID
	LineItems        []QuoteLineItemView
	Total            float64
	DepositPercent   int
	BalancePercent   int
	ValidityDuration string
	CustomExpiryDate *time.Time
	PersonalMessage  string
	Status           string
	Revision         int
	SentAt           *time.Time
	ExpiresAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type QuoteViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteRecord, error)
	FindByVendorFirstPage(ctx context.Context, vendorID uuid.UUID, limit int32) ([]*QuoteRecord, error)
	FindByVendorKeyset(ctx context.Context, vendorID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteRecord, error)
	FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*QuoteRecord, error)
	FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteRecord, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*QuoteRecord, error)
	FindRevisions(ctx context.Context, quoteID uuid.UUID) ([]*QuoteRevisionView, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*QuoteView, error)
	ListByVendor(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*QuoteListItem, *Cursor, error)
	ListByCustomer(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*QuoteListItem, *Cursor, error)
	ListForRequest(ctx context.Context, act actor.Actor, requestID uuid.UUID) ([]*QuoteListItem, error)
	RevisionHistory(ctx context.Context, act actor.Actor, quoteID uuid.UUID) ([]*QuoteRevisionView, error)
}

type quoteQueriesImpl struct {
	repo QuoteViewRepo
	clk  clock.Clock
}

func NewQuoteQueries(repo QuoteViewRepo, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{repo: repo, clk: clk}
}

// effectiveStatus applies the lazy rules a read must observe: a quote past
// its validity window reads as expired, and an otherwise live quote under a
// cancelled request reads as withdrawn. The stored row is corrected by the
// next command that touches it.
func effectiveStatus(status, requestStatus string, expiresAt *time.Time, now time.Time) string {
	s := quote.Status(status)
	if (s.AwaitingDecision() || s == quote.StatusAccepted) && expiry.IsExpired(expiresAt, now) {
		return quote.StatusExpired.String()
	}
	if !s.IsTerminal() && requestStatus == request.StatusCancelled.String() {
		return quote.StatusWithdrawn.String()
	}
	return status
}

func (q *quoteQueriesImpl) canSee(act actor.Actor, rec *QuoteRecord) bool {
	switch {
	case act.IsAdmin():
		return true
	case act.IsVendor():
		return rec.VendorID == act.ID
	case act.IsCustomer():
		// Drafts are vendor-private until sent.
		return rec.CustomerID == act.ID && rec.Status != quote.StatusDraft.String()
	default:
		return false
	}
}

func (q *quoteQueriesImpl) toView(rec *QuoteRecord, role actor.Role, now time.Time) *QuoteView {
	status := effectiveStatus(rec.Status, rec.RequestStatus, rec.ExpiresAt, now)
	_, bucket := Remaining(rec.ExpiresAt, status, now)
	return &QuoteView{
		ID:               rec.ID,
		QuoteRequestID:   rec.QuoteRequestID,
		RequestID:        rec.RequestID,
		RequestTitle:     rec.RequestTitle,
		VendorID:         rec.VendorID,
		CustomerID:       rec.CustomerID,
		LineItems:        rec.LineItems,
		Total:            rec.Total,
		DepositPercent:   rec.DepositPercent,
		BalancePercent:   rec.BalancePercent,
		ValidityDuration: rec.ValidityDuration,
		CustomExpiryDate: rec.CustomExpiryDate,
		PersonalMessage:  rec.PersonalMessage,
		Status:           status,
		Revision:         rec.Revision,
		SentAt:           rec.SentAt,
		ExpiresAt:        rec.ExpiresAt,
		TimeRemaining:    string(bucket),
		IsUrgent:         isUrgent(rec.ExpiresAt, status, now, role),
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func (q *quoteQueriesImpl) toListItem(rec *QuoteRecord, role actor.Role, now time.Time) *QuoteListItem {
	status := effectiveStatus(rec.Status, rec.RequestStatus, rec.ExpiresAt, now)
	_, bucket := Remaining(rec.ExpiresAt, status, now)
	return &QuoteListItem{
		ID:            rec.ID,
		RequestID:     rec.RequestID,
		RequestTitle:  rec.RequestTitle,
		Status:        status,
		Total:         rec.Total,
		Revision:      rec.Revision,
		ExpiresAt:     rec.ExpiresAt,
		TimeRemaining: string(bucket),
		IsUrgent:      isUrgent(rec.ExpiresAt, status, now, role),
		CreatedAt:     rec.CreatedAt,
	}
}

// Remaining buckets only count down while the quote is still awaiting a
// decision or accepted; terminal and draft statuses carry no countdown.
func Remaining(expiresAt *time.Time, status string, now time.Time) (time.Duration, expiry.Bucket) {
	s := quote.Status(status)
	if s == quote.StatusExpired {
		return 0, expiry.BucketExpired
	}
	if !s.AwaitingDecision() && s != quote.StatusAccepted {
		return 0, expiry.BucketNone
	}
	return expiry.Remaining(expiresAt, now)
}

func isUrgent(expiresAt *time.Time, status string, now time.Time, role actor.Role) bool {
	s := quote.Status(status)
	if !s.AwaitingDecision() {
		return false
	}
	return expiry.IsUrgent(expiresAt, now, role)
}

func (q *quoteQueriesImpl) GetByID(ctx context.Context, act actor.Actor, id uuid.UUID) (*QuoteView, error) {
	rec, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrQuoteNotFound)
		}
		return nil, err
	}
	if !q.canSee(act, rec) {
		return nil, errs.Mark(errs.New("quote is not visible to caller"), errs.ErrNotAuthorized)
	}
	return q.toView(rec, act.Role, q.clk.Now()), nil
}

func (q *quoteQueriesImpl) ListByVendor(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*QuoteListItem, *Cursor, error) {
	if !act.IsVendor() && !act.IsAdmin() {
		return nil, nil, errs.Mark(errs.New("vendor listing requires a vendor actor"), errs.ErrNotAuthorized)
	}
	return q.list(ctx, act, after, limit,
		func(ctx context.Context, limit int32) ([]*QuoteRecord, error) {
			return q.repo.FindByVendorFirstPage(ctx, act.ID, limit)
		},
		func(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteRecord, error) {
			return q.repo.FindByVendorKeyset(ctx, act.ID, lastCreatedAt, lastID, limit)
		},
	)
}

func (q *quoteQueriesImpl) ListByCustomer(ctx context.Context, act actor.Actor, after *Cursor, limit int) ([]*QuoteListItem, *Cursor, error) {
	if !act.IsCustomer() && !act.IsAdmin() {
		return nil, nil, errs.Mark(errs.New("customer listing requires a customer actor"), errs.ErrNotAuthorized)
	}
	return q.list(ctx, act, after, limit,
		func(ctx context.Context, limit int32) ([]*QuoteRecord, error) {
			return q.repo.FindByCustomerFirstPage(ctx, act.ID, limit)
		},
		func(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteRecord, error) {
			return q.repo.FindByCustomerKeyset(ctx, act.ID, lastCreatedAt, lastID, limit)
		},
	)
}

func (q *quoteQueriesImpl) list(
	ctx context.Context,
	act actor.Actor,
	after *Cursor,
	limit int,
	firstPage func(ctx context.Context, limit int32) ([]*QuoteRecord, error),
	keyset func(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*QuoteRecord, error),
) ([]*QuoteListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		recs []*QuoteRecord
		err  error
	)
	if after == nil || after.After == "" {
		recs, err = firstPage(ctx, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, errs.ErrValidation)
		}
		recs, err = keyset(ctx, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	now := q.clk.Now()
	items := make([]*QuoteListItem, 0, len(recs))
	for _, rec := range recs {
		// Customers never see still-draft quotes in their feed.
		if act.IsCustomer() && rec.Status == quote.StatusDraft.String() {
			continue
		}
		items = append(items, q.toListItem(rec, act.Role, now))
	}

	var next *Cursor
	if len(recs) == limit && len(recs) > 0 {
		last := recs[len(recs)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

func (q *quoteQueriesImpl) ListForRequest(ctx context.Context, act actor.Actor, requestID uuid.UUID) ([]*QuoteListItem, error) {
	recs, err := q.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	now := q.clk.Now()
	items := make([]*QuoteListItem, 0, len(recs))
	for _, rec := range recs {
		if !q.canSee(act, rec) {
			continue
		}
		items = append(items, q.toListItem(rec, act.Role, now))
	}
	return items, nil
}

func (q *quoteQueriesImpl) RevisionHistory(ctx context.Context, act actor.Actor, quoteID uuid.UUID) ([]*QuoteRevisionView, error) {
	rec, err := q.repo.FindByID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrQuoteNotFound)
		}
		return nil, err
	}
	if !q.canSee(act, rec) {
		return nil, errs.Mark(errs.New("quote is not visible to caller"), errs.ErrNotAuthorized)
	}
	return q.repo.FindRevisions(ctx, quoteID)
}
