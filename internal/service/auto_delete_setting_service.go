package service

import (
	"context"
	"fmt"
	"time"

	"officehub-be/internal/apperror"
	"officehub-be/internal/entity"
	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/repository/memory"
	"officehub-be/internal/repository/specification"
	"officehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const settingsModule = "AUTO_DELETE_SETTINGS"

type IAutoDeleteSettingService interface {
	// GetUserPeriod returns disabled when the user has no settings row.
	GetUserPeriod(ctx context.Context, userId uuid.UUID) (entity.AutoDeletePeriod, error)
	SetUserPeriod(ctx context.Context, userId uuid.UUID, period entity.AutoDeletePeriod) (*entity.AutoDeleteSetting, error)
	Cutoff(period entity.AutoDeletePeriod, now time.Time) (time.Time, bool)
	RecentLogs(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.AutoDeleteLog, error)
}

type autoDeleteSettingService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.SettingCache
	logger     logger.ILogger
}

func NewAutoDeleteSettingService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.SettingCache,
	logger logger.ILogger,
) IAutoDeleteSettingService {
	return &autoDeleteSettingService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

func (s *autoDeleteSettingService) GetUserPeriod(ctx context.Context, userId uuid.UUID) (entity.AutoDeletePeriod, error) {
	if s.cache != nil {
		if period, ok := s.cache.Get(userId); ok {
			return period, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.AutoDeleteRepository().FindSetting(ctx, userId)
	if err != nil {
		return "", apperror.PersistenceFailure("find auto delete setting", err)
	}

	period := entity.AutoDeleteDisabled
	if setting != nil {
		period = setting.Period
		if !period.Valid() {
			s.logger.Warn(settingsModule, "Stored period is unknown, treating as disabled", map[string]interface{}{
				"user_id": userId,
				"period":  period,
			})
			period = entity.AutoDeleteDisabled
		}
	}

	if s.cache != nil {
		s.cache.Save(userId, period)
	}
	return period, nil
}

func (s *autoDeleteSettingService) SetUserPeriod(ctx context.Context, userId uuid.UUID, period entity.AutoDeletePeriod) (*entity.AutoDeleteSetting, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidPeriod, period)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting := &entity.AutoDeleteSetting{UserId: userId, Period: period}
	if err := uow.AutoDeleteRepository().UpsertSetting(ctx, setting); err != nil {
		return nil, apperror.PersistenceFailure("upsert auto delete setting", err)
	}

	if s.cache != nil {
		s.cache.Delete(userId)
	}

	s.logger.Info(settingsModule, "Auto delete period updated", map[string]interface{}{
		"user_id": userId,
		"period":  period,
	})
	return setting, nil
}

func (s *autoDeleteSettingService) Cutoff(period entity.AutoDeletePeriod, now time.Time) (time.Time, bool) {
	return period.Cutoff(now)
}

func (s *autoDeleteSettingService) RecentLogs(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.AutoDeleteLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.AutoDeleteRepository().FindLogs(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, apperror.PersistenceFailure("find auto delete logs", err)
	}
	return logs, nil
}
