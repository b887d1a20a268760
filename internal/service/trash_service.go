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

const trashModule = "TRASH"

type ITrashService interface {
	MoveToTrash(ctx context.Context, actorUserId uuid.UUID, itemType entity.ItemType, itemId uuid.UUID, title string, isShared bool) (*entity.TrashRecord, error)
	// Restore returns (nil, nil) when the entity had already disappeared; the
	// stale record is removed.
	Restore(ctx context.Context, trashRecordId, requestingUserId uuid.UUID) (entity.TrashableItem, error)
	PurgeOne(ctx context.Context, trashRecordId, requestingUserId uuid.UUID) error
	PurgeMany(ctx context.Context, trashRecordIds []uuid.UUID, requestingUserId uuid.UUID) (int, error)
	EmptyAll(ctx context.Context, requestingUserId uuid.UUID) (int, error)
	List(ctx context.Context, userId uuid.UUID, filter TrashFilter) ([]*entity.TrashRecord, int64, error)
	ListShared(ctx context.Context, departmentId *uuid.UUID, filter TrashFilter) ([]*entity.TrashRecord, int64, error)
}

type TrashFilter struct {
	ItemType *entity.ItemType
	Limit    int
	Offset   int
}

type TrashServiceConfig struct {
	GracePeriod time.Duration // now + GracePeriod becomes PermanentDeleteAt
}

type trashService struct {
	uowFactory unitofwork.RepositoryFactory
	registry   *trash.Registry
	publisher  events.Publisher
	metrics    *metrics.TrashMetrics
	logger     logger.ILogger
	cfg        TrashServiceConfig
	now        func() time.Time
}

func NewTrashService(
	uowFactory unitofwork.RepositoryFactory,
	registry *trash.Registry,
	publisher events.Publisher,
	trashMetrics *metrics.TrashMetrics,
	logger logger.ILogger,
	cfg TrashServiceConfig,
) ITrashService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &trashService{
		uowFactory: uowFactory,
		registry:   registry,
		publisher:  publisher,
		metrics:    trashMetrics,
		logger:     logger,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *trashService) MoveToTrash(ctx context.Context, actorUserId uuid.UUID, itemType entity.ItemType, itemId uuid.UUID, title string, isShared bool) (*entity.TrashRecord, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.PersistenceFailure("begin", err)
	}
	defer uow.Rollback()

	item, err := s.registry.Snapshot(ctx, uow, itemType, itemId)
	if err != nil {
		return nil, err
	}
	if item.OwnerId() != actorUserId && item.Visibility() == entity.VisibilityPrivate {
		return nil, fmt.Errorf("%w: %s %s belongs to another user", apperror.ErrForbidden, itemType, itemId)
	}

	if title == "" {
		title = item.ItemTitle()
	}
	now := s.now()
	visibility := item.Visibility()
	// The record lands in the item owner's trash even when a colleague
	// removes a shared item.
	record := &entity.TrashRecord{
		OwnerUserId:       item.OwnerId(),
		ItemType:          itemType,
		ItemId:            itemId,
		OriginalTitle:     title,
		IsShared:          isShared,
		DeletedAt:         now,
		OwnerDepartmentId: item.Department(),
		VisibilityType:    &visibility,
	}
	if s.cfg.GracePeriod > 0 {
		permanent := now.Add(s.cfg.GracePeriod)
		record.PermanentDeleteAt = &permanent
	}

	if err := s.registry.SoftDelete(ctx, uow, itemType, itemId, now); err != nil {
		return nil, err
	}
	if err := uow.TrashRecordRepository().Create(ctx, record); err != nil {
		return nil, apperror.PersistenceFailure("create trash record", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.PersistenceFailure("commit", err)
	}

	s.metrics.RecordAction("move", string(itemType))
	s.publish(ctx, events.TypeTrashMoved, record, nil)
	s.logger.Info(trashModule, "Item moved to trash", map[string]interface{}{
		"trash_record_id": record.Id,
		"item_type":       itemType,
		"item_id":         itemId,
		"user_id":         record.OwnerUserId,
		"actor_id":        actorUserId,
	})
	return record, nil
}

func (s *trashService) Restore(ctx context.Context, trashRecordId, requestingUserId uuid.UUID) (entity.TrashableItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.PersistenceFailure("begin", err)
	}
	defer uow.Rollback()

	record, err := s.findOwned(ctx, uow, trashRecordId, requestingUserId)
	if err != nil {
		return nil, err
	}

	item, err := s.registry.Restore(ctx, uow, record.ItemType, record.ItemId)
	orphan := errors.Is(err, apperror.ErrUnderlyingEntityMissing)
	if err != nil && !orphan {
		return nil, err
	}

	if _, err := uow.TrashRecordRepository().Delete(ctx, record.Id); err != nil {
		return nil, apperror.PersistenceFailure("delete trash record", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.PersistenceFailure("commit", err)
	}

	if orphan {
		s.metrics.RecordOrphan("restore")
		s.logger.Warn(trashModule, "Restore target no longer exists, stale trash record removed", map[string]interface{}{
			"trash_record_id": record.Id,
			"item_type":       record.ItemType,
			"item_id":         record.ItemId,
		})
		return nil, nil
	}

	s.metrics.RecordAction("restore", string(record.ItemType))
	s.publish(ctx, events.TypeTrashRestored, record, nil)
	return item, nil
}

func (s *trashService) PurgeOne(ctx context.Context, trashRecordId, requestingUserId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.PersistenceFailure("begin", err)
	}
	defer uow.Rollback()

	record, err := s.findOwned(ctx, uow, trashRecordId, requestingUserId)
	if err != nil {
		return err
	}
	orphan, err := s.purgeRecord(ctx, uow, record)
	if err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return apperror.PersistenceFailure("commit", err)
	}

	s.afterPurge(ctx, []*entity.TrashRecord{record}, []bool{orphan})
	return nil
}

// PurgeMany is all-or-nothing: one unknown or foreign id rolls back the
// whole batch.
func (s *trashService) PurgeMany(ctx context.Context, trashRecordIds []uuid.UUID, requestingUserId uuid.UUID) (int, error) {
	ids := uniqueIds(trashRecordIds)
	if len(ids) == 0 {
		return 0, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, apperror.PersistenceFailure("begin", err)
	}
	defer uow.Rollback()

	records, err := uow.TrashRecordRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.UserOwnedBy{UserID: requestingUserId},
		specification.ForUpdate{},
	)
	if err != nil {
		return 0, apperror.PersistenceFailure("find trash records", err)
	}
	if len(records) != len(ids) {
		return 0, fmt.Errorf("%w: %d of %d records", apperror.ErrNotFound, len(ids)-len(records), len(ids))
	}

	return s.purgeAll(ctx, uow, records)
}

func (s *trashService) EmptyAll(ctx context.Context, requestingUserId uuid.UUID) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, apperror.PersistenceFailure("begin", err)
	}
	defer uow.Rollback()

	records, err := uow.TrashRecordRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: requestingUserId},
		specification.ForUpdate{},
	)
	if err != nil {
		return 0, apperror.PersistenceFailure("find trash records", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	return s.purgeAll(ctx, uow, records)
}

func (s *trashService) List(ctx context.Context, userId uuid.UUID, filter TrashFilter) ([]*entity.TrashRecord, int64, error) {
	return s.list(ctx, filter, specification.UserOwnedBy{UserID: userId})
}

func (s *trashService) ListShared(ctx context.Context, departmentId *uuid.UUID, filter TrashFilter) ([]*entity.TrashRecord, int64, error) {
	specs := []specification.Specification{specification.SharedOnly{}}
	if departmentId != nil {
		specs = append(specs, specification.ByOwnerDepartment{DepartmentID: *departmentId})
	}
	return s.list(ctx, filter, specs...)
}

func (s *trashService) list(ctx context.Context, filter TrashFilter, specs ...specification.Specification) ([]*entity.TrashRecord, int64, error) {
	if filter.ItemType != nil {
		specs = append(specs, specification.ByItemType{ItemType: *filter.ItemType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.TrashRecordRepository().Count(ctx, specs...)
	if err != nil {
		return nil, 0, apperror.PersistenceFailure("count trash records", err)
	}

	if filter.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	}
	records, err := uow.TrashRecordRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, 0, apperror.PersistenceFailure("find trash records", err)
	}
	return records, total, nil
}

func (s *trashService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, trashRecordId, userId uuid.UUID) (*entity.TrashRecord, error) {
	record, err := uow.TrashRecordRepository().FindOne(ctx,
		specification.ByID{ID: trashRecordId},
		specification.UserOwnedBy{UserID: userId},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, apperror.PersistenceFailure("find trash record", err)
	}
	if record == nil {
		return nil, apperror.ErrNotFound
	}
	return record, nil
}

// purgeRecord hard-deletes the entity and removes the record. A missing
// entity or an unregistered type only costs the record; orphan reports that.
func (s *trashService) purgeRecord(ctx context.Context, uow unitofwork.UnitOfWork, record *entity.TrashRecord) (orphan bool, err error) {
	err = s.registry.HardDelete(ctx, uow, record.ItemType, record.ItemId)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrUnderlyingEntityMissing), errors.Is(err, apperror.ErrUnsupportedItemType):
		orphan = true
		s.logger.Warn(trashModule, "Purge target unavailable, removing trash record only", map[string]interface{}{
			"trash_record_id": record.Id,
			"item_type":       record.ItemType,
			"item_id":         record.ItemId,
			"reason":          err.Error(),
		})
	default:
		return false, err
	}

	if _, err := uow.TrashRecordRepository().Delete(ctx, record.Id); err != nil {
		return false, apperror.PersistenceFailure("delete trash record", err)
	}
	return orphan, nil
}

func (s *trashService) purgeAll(ctx context.Context, uow unitofwork.UnitOfWork, records []*entity.TrashRecord) (int, error) {
	orphans := make([]bool, len(records))
	for i, record := range records {
		orphan, err := s.purgeRecord(ctx, uow, record)
		if err != nil {
			return 0, err
		}
		orphans[i] = orphan
	}
	if err := uow.Commit(); err != nil {
		return 0, apperror.PersistenceFailure("commit", err)
	}

	s.afterPurge(ctx, records, orphans)
	return len(records), nil
}

func (s *trashService) afterPurge(ctx context.Context, records []*entity.TrashRecord, orphans []bool) {
	for i, record := range records {
		if orphans[i] {
			s.metrics.RecordOrphan("purge")
		} else {
			s.metrics.RecordAction("purge", string(record.ItemType))
		}
		s.publish(ctx, events.TypeTrashPurged, record, map[string]interface{}{"orphan": orphans[i]})
	}
}

// publish logs failures and never fails the caller.
func (s *trashService) publish(ctx context.Context, eventType string, record *entity.TrashRecord, extra map[string]interface{}) {
	if err := s.publisher.Publish(ctx, events.New(eventType, trashEventPayload(record, extra))); err != nil {
		s.logger.Warn(trashModule, "Failed to publish trash event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func trashEventPayload(record *entity.TrashRecord, extra map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"trash_record_id": record.Id.String(),
		"user_id":         record.OwnerUserId.String(),
		"item_type":       string(record.ItemType),
		"item_id":         record.ItemId.String(),
		"title":           record.OriginalTitle,
		"is_shared":       record.IsShared,
		"deleted_at":      record.DeletedAt.Format(time.RFC3339),
	}
	for k, v := range extra {
		payload[k] = v
	}
	return payload
}

func uniqueIds(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
