package repository

import (
	"context"
	"time"

	"gearup/internal/infra"
	"gearup/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository persists delivery jobs for a worker to drain.
// Delivery itself is out of scope here; the sweep only enqueues.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	query := `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
