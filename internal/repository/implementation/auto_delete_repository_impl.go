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
	"gorm.io/gorm/clause"
)

type AutoDeleteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AutoDeleteMapper
}

func NewAutoDeleteRepository(db *gorm.DB) contract.AutoDeleteRepository {
	return &AutoDeleteRepositoryImpl{
		db:     db,
		mapper: mapper.NewAutoDeleteMapper(),
	}
}

func (r *AutoDeleteRepositoryImpl) FindSetting(ctx context.Context, userId uuid.UUID) (*entity.AutoDeleteSetting, error) {
	var m model.AutoDeleteSetting
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SettingToEntity(&m), nil
}

// UpsertSetting keys on user_id; there is at most one setting per user.
func (r *AutoDeleteRepositoryImpl) UpsertSetting(ctx context.Context, setting *entity.AutoDeleteSetting) error {
	m := r.mapper.SettingToModel(setting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"period", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	stored, err := r.FindSetting(ctx, setting.UserId)
	if err != nil {
		return err
	}
	if stored != nil {
		*setting = *stored
	}
	return nil
}

func (r *AutoDeleteRepositoryImpl) CreateLog(ctx context.Context, log *entity.AutoDeleteLog) error {
	m, err := r.mapper.LogToModel(log)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.Id = m.Id
	return nil
}

// FindLogs returns the most recent run first.
func (r *AutoDeleteRepositoryImpl) FindLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AutoDeleteLog, error) {
	var models []*model.AutoDeleteLog
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByExecutedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.LogsToEntities(models), nil
}
