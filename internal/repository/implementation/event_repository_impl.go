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

type EventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entity.Event) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *EventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	return r.findOne(r.db.WithContext(ctx), specs...)
}

func (r *EventRepositoryImpl) FindOneUnscoped(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	return r.findOne(r.db.WithContext(ctx).Scopes(scope.WithSoftDeleted), specs...)
}

func (r *EventRepositoryImpl) findOne(db *gorm.DB, specs ...specification.Specification) (*entity.Event, error) {
	var m model.Event
	query := applySpecifications(db, specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Event{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EventRepositoryImpl) CountUnscoped(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Event{}).Scopes(scope.WithSoftDeleted), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SoftDelete relies on gorm.DeletedAt; rows already soft-deleted are not
// counted again.
func (r *EventRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Event{})
	return res.RowsAffected, res.Error
}

func (r *EventRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Event{}).
		Scopes(scope.OnlySoftDeleted).
		Where("id = ?", id).
		UpdateColumn("deleted_at", nil)
	return res.RowsAffected, res.Error
}

func (r *EventRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&model.Event{})
	return res.RowsAffected, res.Error
}
