package contract

import (
	"context"
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	Update(ctx context.Context, reminder *entity.Reminder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reminder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	MarkTrashed(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	ClearTrashed(ctx context.Context, id uuid.UUID) (int64, error)
	HardDelete(ctx context.Context, id uuid.UUID) (int64, error)
}
