package repository

import (
	"context"
	"time"

	"quoteflow/internal/infra"
	"quoteflow/internal/infra/db"
	"quoteflow/internal/usecase/shared"
)

// NotificationRepository enqueues outbox-style jobs in the same transaction
// as the state change they announce.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

var _ shared.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
