package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"officehub-be/internal/apperror"
	"officehub-be/internal/entity"
	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/repository/specification"
	"officehub-be/internal/repository/unitofwork"
	"officehub-be/internal/trash"
	"officehub-be/pkg/events"
	"officehub-be/pkg/metrics"

	"github.com/google/uuid"
)

const schedulerModule = "AUTO_DELETE"

// IAutoDeleteScheduler purges trash older than each user's retention
// period. Run never fails as a whole; problems end up in the summary.
type IAutoDeleteScheduler interface {
	Run(ctx context.Context) RunSummary
}

type RunSummary struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	UsersScanned int
	TotalDeleted int
	PerUser      map[uuid.UUID]int // users that got a log row
	SkippedUsers []uuid.UUID       // retention disabled
	FailedUsers  []uuid.UUID
	FailedItems  []uuid.UUID // trash record ids left in place
}

type autoDeleteScheduler struct {
	uowFactory unitofwork.RepositoryFactory
	registry   *trash.Registry
	settings   IAutoDeleteSettingService
	publisher  events.Publisher
	metrics    *metrics.SchedulerMetrics
	logger     logger.ILogger
	now        func() time.Time
}

func NewAutoDeleteScheduler(
	uowFactory unitofwork.RepositoryFactory,
	registry *trash.Registry,
	settings IAutoDeleteSettingService,
	publisher events.Publisher,
	schedulerMetrics *metrics.SchedulerMetrics,
	logger logger.ILogger,
) IAutoDeleteScheduler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &autoDeleteScheduler{
		uowFactory: uowFactory,
		registry:   registry,
		settings:   settings,
		publisher:  publisher,
		metrics:    schedulerMetrics,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type userPurge struct {
	deleted []*entity.TrashRecord
	failed  []uuid.UUID
}

func (s *autoDeleteScheduler) Run(ctx context.Context) RunSummary {
	summary := RunSummary{
		StartedAt: s.now(),
		PerUser:   make(map[uuid.UUID]int),
	}

	users, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindAll(ctx, specification.ActiveUsers{})
	if err != nil {
		s.logger.Error(schedulerModule, "Failed to load active users", map[string]interface{}{"error": err.Error()})
		return s.finish(ctx, summary)
	}

	for _, user := range users {
		if ctx.Err() != nil {
			s.logger.Warn(schedulerModule, "Run cancelled", map[string]interface{}{"remaining_users": len(users) - summary.UsersScanned})
			break
		}
		summary.UsersScanned++

		period, err := s.settings.GetUserPeriod(ctx, user.Id)
		if err != nil {
			s.failUser(&summary, user.Id, "read retention period", err)
			continue
		}
		cutoff, ok := period.Cutoff(summary.StartedAt)
		if !ok {
			summary.SkippedUsers = append(summary.SkippedUsers, user.Id)
			continue
		}

		result, err := s.purgeUser(ctx, user.Id, period, cutoff)
		if err != nil {
			s.failUser(&summary, user.Id, "purge", err)
			continue
		}

		summary.PerUser[user.Id] = len(result.deleted)
		summary.TotalDeleted += len(result.deleted)
		summary.FailedItems = append(summary.FailedItems, result.failed...)
		for _, record := range result.deleted {
			s.publishPurged(ctx, record, period)
		}
		if len(result.deleted) > 0 || len(result.failed) > 0 {
			s.logger.Info(schedulerModule, "User trash purged", map[string]interface{}{
				"user_id": user.Id,
				"period":  period,
				"deleted": len(result.deleted),
				"failed":  len(result.failed),
			})
		}
	}

	return s.finish(ctx, summary)
}

// purgeUser runs in one transaction. Each item gets a savepoint so a failing
// hard delete is undone without losing the items already purged.
func (s *autoDeleteScheduler) purgeUser(ctx context.Context, userId uuid.UUID, period entity.AutoDeletePeriod, cutoff time.Time) (*userPurge, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.PersistenceFailure("begin", err)
	}
	defer uow.Rollback()

	records, err := uow.TrashRecordRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.DeletedOnOrBefore{Cutoff: cutoff},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, apperror.PersistenceFailure("find expired trash records", err)
	}

	result := &userPurge{}
	for i, record := range records {
		savepoint := fmt.Sprintf("auto_delete_%d", i)
		if err := uow.SavePoint(savepoint); err != nil {
			return nil, apperror.PersistenceFailure("savepoint", err)
		}

		if err := s.purgeItem(ctx, uow, record); err != nil {
			if rbErr := uow.RollbackTo(savepoint); rbErr != nil {
				return nil, apperror.PersistenceFailure("rollback to savepoint", rbErr)
			}
			result.failed = append(result.failed, record.Id)
			s.logger.Error(schedulerModule, "Failed to purge trash item", map[string]interface{}{
				"user_id":         userId,
				"trash_record_id": record.Id,
				"item_type":       record.ItemType,
				"item_id":         record.ItemId,
				"error":           err.Error(),
			})
			continue
		}
		result.deleted = append(result.deleted, record)
	}

	log := &entity.AutoDeleteLog{
		UserId:       userId,
		Period:       period,
		DeletedCount: len(result.deleted),
		FailedItems:  result.failed,
		ExecutedAt:   s.now(),
	}
	if err := uow.AutoDeleteRepository().CreateLog(ctx, log); err != nil {
		return nil, apperror.PersistenceFailure("create auto delete log", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.PersistenceFailure("commit", err)
	}
	return result, nil
}

// purgeItem treats a vanished entity as purged. An unregistered type is a
// failure so the record stays until a handler exists for it.
func (s *autoDeleteScheduler) purgeItem(ctx context.Context, uow unitofwork.UnitOfWork, record *entity.TrashRecord) error {
	err := s.registry.HardDelete(ctx, uow, record.ItemType, record.ItemId)
	if err != nil && !errors.Is(err, apperror.ErrUnderlyingEntityMissing) {
		return err
	}
	if err != nil {
		s.logger.Warn(schedulerModule, "Trash item already gone, removing record", map[string]interface{}{
			"trash_record_id": record.Id,
			"item_type":       record.ItemType,
			"item_id":         record.ItemId,
		})
	}

	if _, err := uow.TrashRecordRepository().Delete(ctx, record.Id); err != nil {
		return apperror.PersistenceFailure("delete trash record", err)
	}
	return nil
}

func (s *autoDeleteScheduler) failUser(summary *RunSummary, userId uuid.UUID, step string, err error) {
	summary.FailedUsers = append(summary.FailedUsers, userId)
	s.logger.Error(schedulerModule, "Auto delete failed for user", map[string]interface{}{
		"user_id": userId,
		"step":    step,
		"error":   err.Error(),
	})
}

func (s *autoDeleteScheduler) publishPurged(ctx context.Context, record *entity.TrashRecord, period entity.AutoDeletePeriod) {
	payload := trashEventPayload(record, map[string]interface{}{"period": string(period)})
	if err := s.publisher.Publish(ctx, events.New(events.TypeTrashAutoPurged, payload)); err != nil {
		s.logger.Warn(schedulerModule, "Failed to publish auto purge event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *autoDeleteScheduler) finish(ctx context.Context, summary RunSummary) RunSummary {
	summary.FinishedAt = s.now()
	failures := len(summary.FailedUsers) + len(summary.FailedItems)
	s.metrics.RecordRun(summary.StartedAt, summary.TotalDeleted, failures)

	s.logger.Info(schedulerModule, "Auto delete run finished", map[string]interface{}{
		"users_scanned": summary.UsersScanned,
		"total_deleted": summary.TotalDeleted,
		"skipped_users": len(summary.SkippedUsers),
		"failed_users":  len(summary.FailedUsers),
		"failed_items":  len(summary.FailedItems),
		"duration_ms":   summary.FinishedAt.Sub(summary.StartedAt).Milliseconds(),
	})

	evt := events.New(events.TypeAutoDeleteRunEnd, map[string]interface{}{
		"users_scanned": summary.UsersScanned,
		"total_deleted": summary.TotalDeleted,
		"failed_users":  len(summary.FailedUsers),
		"failed_items":  len(summary.FailedItems),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn(schedulerModule, "Failed to publish run summary", map[string]interface{}{"error": err.Error()})
	}
	return summary
}
