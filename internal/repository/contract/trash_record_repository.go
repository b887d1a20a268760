package contract

import (
	"context"

	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TrashRecordRepository interface {
	Create(ctx context.Context, record *entity.TrashRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrashRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrashRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
