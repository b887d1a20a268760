package trash

import (
	"context"
	"time"

	"officehub-be/internal/apperror"
	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"
	"officehub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type noteHandler struct{}

func (noteHandler) Snapshot(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: itemId}, specification.NotTrashed{}, specification.ForUpdate{})
	if err != nil {
		return nil, apperror.PersistenceFailure("note snapshot", err)
	}
	if note == nil {
		return nil, missing(entity.ItemTypeNote, itemId)
	}
	return note, nil
}

func (noteHandler) SoftDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID, at time.Time) error {
	rows, err := uow.NoteRepository().MarkTrashed(ctx, itemId, at)
	return affected(rows, err, "soft delete", entity.ItemTypeNote, itemId)
}

func (noteHandler) Restore(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	rows, err := uow.NoteRepository().ClearTrashed(ctx, itemId)
	if err := affected(rows, err, "restore", entity.ItemTypeNote, itemId); err != nil {
		return nil, err
	}
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, apperror.PersistenceFailure("note reload", err)
	}
	return note, nil
}

// Tag and participant links are cleaned up by foreign keys.
func (noteHandler) HardDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) error {
	rows, err := uow.NoteRepository().HardDelete(ctx, itemId)
	return affected(rows, err, "hard delete", entity.ItemTypeNote, itemId)
}

type reminderHandler struct{}

func (reminderHandler) Snapshot(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	reminder, err := uow.ReminderRepository().FindOne(ctx, specification.ByID{ID: itemId}, specification.NotTrashed{}, specification.ForUpdate{})
	if err != nil {
		return nil, apperror.PersistenceFailure("reminder snapshot", err)
	}
	if reminder == nil {
		return nil, missing(entity.ItemTypeReminder, itemId)
	}
	return reminder, nil
}

func (reminderHandler) SoftDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID, at time.Time) error {
	rows, err := uow.ReminderRepository().MarkTrashed(ctx, itemId, at)
	return affected(rows, err, "soft delete", entity.ItemTypeReminder, itemId)
}

func (reminderHandler) Restore(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	rows, err := uow.ReminderRepository().ClearTrashed(ctx, itemId)
	if err := affected(rows, err, "restore", entity.ItemTypeReminder, itemId); err != nil {
		return nil, err
	}
	reminder, err := uow.ReminderRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, apperror.PersistenceFailure("reminder reload", err)
	}
	return reminder, nil
}

func (reminderHandler) HardDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) error {
	rows, err := uow.ReminderRepository().HardDelete(ctx, itemId)
	return affected(rows, err, "hard delete", entity.ItemTypeReminder, itemId)
}

type surveyHandler struct{}

func (surveyHandler) Snapshot(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	survey, err := uow.SurveyRepository().FindOne(ctx, specification.ByID{ID: itemId}, specification.NotTrashed{}, specification.ForUpdate{})
	if err != nil {
		return nil, apperror.PersistenceFailure("survey snapshot", err)
	}
	if survey == nil {
		return nil, missing(entity.ItemTypeSurvey, itemId)
	}
	return survey, nil
}

func (surveyHandler) SoftDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID, at time.Time) error {
	rows, err := uow.SurveyRepository().MarkTrashed(ctx, itemId, at)
	return affected(rows, err, "soft delete", entity.ItemTypeSurvey, itemId)
}

func (surveyHandler) Restore(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	rows, err := uow.SurveyRepository().ClearTrashed(ctx, itemId)
	if err := affected(rows, err, "restore", entity.ItemTypeSurvey, itemId); err != nil {
		return nil, err
	}
	survey, err := uow.SurveyRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, apperror.PersistenceFailure("survey reload", err)
	}
	return survey, nil
}

func (surveyHandler) HardDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) error {
	stats, err := uow.SurveyRepository().HardDeleteCascade(ctx, itemId)
	if err != nil {
		return apperror.PersistenceFailure("survey hard delete", err)
	}
	if stats.Surveys == 0 {
		return missing(entity.ItemTypeSurvey, itemId)
	}
	return nil
}

type eventHandler struct{}

func (eventHandler) Snapshot(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, apperror.PersistenceFailure("event snapshot", err)
	}
	if event == nil {
		return nil, missing(entity.ItemTypeEvent, itemId)
	}
	return event, nil
}

func (eventHandler) SoftDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID, at time.Time) error {
	rows, err := uow.EventRepository().SoftDelete(ctx, itemId)
	return affected(rows, err, "soft delete", entity.ItemTypeEvent, itemId)
}

// Restore treats an event that is already live as restored.
func (eventHandler) Restore(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) (entity.TrashableItem, error) {
	if _, err := uow.EventRepository().Restore(ctx, itemId); err != nil {
		return nil, apperror.PersistenceFailure("event restore", err)
	}
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, apperror.PersistenceFailure("event reload", err)
	}
	if event == nil {
		return nil, missing(entity.ItemTypeEvent, itemId)
	}
	return event, nil
}

func (eventHandler) HardDelete(ctx context.Context, uow unitofwork.UnitOfWork, itemId uuid.UUID) error {
	rows, err := uow.EventRepository().HardDelete(ctx, itemId)
	return affected(rows, err, "hard delete", entity.ItemTypeEvent, itemId)
}
