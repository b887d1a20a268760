package implementation

import (
	"context"
	"errors"

	"officehub-be/internal/entity"
	"officehub-be/internal/mapper"
	"officehub-be/internal/model"
	"officehub-be/internal/repository/contract"
	"officehub-be/internal/repository/scope"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrashRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TrashRecordMapper
}

func NewTrashRecordRepository(db *gorm.DB) contract.TrashRecordRepository {
	return &TrashRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewTrashRecordMapper(),
	}
}

func (r *TrashRecordRepositoryImpl) Create(ctx context.Context, record *entity.TrashRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *TrashRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrashRecord, error) {
	var m model.TrashRecord
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// FindAll returns newest first.
func (r *TrashRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrashRecord, error) {
	var models []*model.TrashRecord
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByDeletedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TrashRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TrashRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TrashRecordRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TrashRecord{})
	return res.RowsAffected, res.Error
}
