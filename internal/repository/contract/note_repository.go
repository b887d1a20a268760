package contract

import (
	"context"
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Trash state. Each returns the number of rows touched; zero means the
	// note no longer exists. MarkTrashed only touches a live note, so a
	// second call reports zero.
	MarkTrashed(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	ClearTrashed(ctx context.Context, id uuid.UUID) (int64, error)
	HardDelete(ctx context.Context, id uuid.UUID) (int64, error)
}
