package implementation

import (
	"context"
	"errors"
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/mapper"
	"officehub-be/internal/model"
	"officehub-be/internal/repository/contract"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReminderMapper
}

func NewReminderRepository(db *gorm.DB) contract.ReminderRepository {
	return &ReminderRepositoryImpl{
		db:     db,
		mapper: mapper.NewReminderMapper(),
	}
}

func (r *ReminderRepositoryImpl) Create(ctx context.Context, reminder *entity.Reminder) error {
	m := r.mapper.ToModel(reminder)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reminder = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReminderRepositoryImpl) Update(ctx context.Context, reminder *entity.Reminder) error {
	m := r.mapper.ToModel(reminder)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*reminder = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReminderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reminder, error) {
	var m model.Reminder
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReminderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Reminder{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Completion columns are never touched here; trash state lives in its own
// is_deleted/deleted_at pair.
func (r *ReminderRepositoryImpl) MarkTrashed(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Reminder{}).
		Where("id = ? AND is_deleted = ?", id, false).
		UpdateColumns(map[string]interface{}{"is_deleted": true, "deleted_at": at})
	return res.RowsAffected, res.Error
}

func (r *ReminderRepositoryImpl) ClearTrashed(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Reminder{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"is_deleted": false, "deleted_at": nil})
	return res.RowsAffected, res.Error
}

func (r *ReminderRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reminder{})
	return res.RowsAffected, res.Error
}
