package unitofwork

import (
	"context"

	"officehub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	// SavePoint and RollbackTo isolate one step inside an open transaction so
	// a failing statement does not poison the rest of the batch.
	SavePoint(name string) error
	RollbackTo(name string) error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	ReminderRepository() contract.ReminderRepository
	SurveyRepository() contract.SurveyRepository
	EventRepository() contract.EventRepository
	TrashRecordRepository() contract.TrashRecordRepository
	AutoDeleteRepository() contract.AutoDeleteRepository
}
