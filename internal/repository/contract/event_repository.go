package contract

import (
	"context"

	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error)
	FindOneUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) // Includes soft-deleted
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountUnscoped(ctx context.Context, specs ...specification.Specification) (int64, error)

	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
	Restore(ctx context.Context, id uuid.UUID) (int64, error)
	HardDelete(ctx context.Context, id uuid.UUID) (int64, error)
}
