package shared

import (
	"context"
	"time"

	"quoteflow/internal/domain/quote"
	"quoteflow/internal/domain/request"
	"quoteflow/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Quotes() QuoteRepository
	Requests() RequestRepository
	QuoteRequests() QuoteRequestRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	QuoteByID(ctx context.Context, id uuid.UUID) (*QuoteSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	QuoteRequestByID(ctx context.Context, id uuid.UUID) (*QuoteRequestSnapshot, error)
}

// CAS is the optimistic-concurrency precondition for a transition: the write
// applies only while the row still carries the expected status and version.
// The losing racer observes zero affected rows.
type CAS struct {
	Status  string
	Version int64
}

type QuoteRepository interface {
	Create(ctx context.Context, tx db.DBTX, q *quote.Quote) (uuid.UUID, error)
	// Save persists all mutable fields and bumps the version, guarded by the
	// CAS precondition. Returns the number of rows affected.
	Save(ctx context.Context, tx db.DBTX, q *quote.Quote, expected CAS) (int64, error)
	// ArchiveRevision copies the superseded content into the revision
	// history before a revise overwrites it in place.
	ArchiveRevision(ctx context.Context, tx db.DBTX, prior *QuoteSnapshot, decisionNote *string) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *request.CustomerRequest) (uuid.UUID, error)
	Save(ctx context.Context, tx db.DBTX, r *request.CustomerRequest, expected CAS) (int64, error)
}

type QuoteRequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, requestID, vendorID, customerID uuid.UUID) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b BookingRecord) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
