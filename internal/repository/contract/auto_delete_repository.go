package contract

import (
	"context"

	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AutoDeleteRepository interface {
	FindSetting(ctx context.Context, userId uuid.UUID) (*entity.AutoDeleteSetting, error)
	UpsertSetting(ctx context.Context, setting *entity.AutoDeleteSetting) error

	CreateLog(ctx context.Context, log *entity.AutoDeleteLog) error
	FindLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AutoDeleteLog, error)
}
