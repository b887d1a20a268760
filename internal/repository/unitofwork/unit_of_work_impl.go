package unitofwork

import (
	"context"
	"fmt"

	"officehub-be/internal/repository/contract"
	"officehub-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // nil outside a transaction
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) SavePoint(name string) error {
	if u.tx == nil {
		return fmt.Errorf("savepoint %s outside transaction", name)
	}
	return u.tx.SavePoint(name).Error
}

func (u *UnitOfWorkImpl) RollbackTo(name string) error {
	if u.tx == nil {
		return fmt.Errorf("rollback to %s outside transaction", name)
	}
	return u.tx.RollbackTo(name).Error
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReminderRepository() contract.ReminderRepository {
	return implementation.NewReminderRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SurveyRepository() contract.SurveyRepository {
	return implementation.NewSurveyRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EventRepository() contract.EventRepository {
	return implementation.NewEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TrashRecordRepository() contract.TrashRecordRepository {
	return implementation.NewTrashRecordRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AutoDeleteRepository() contract.AutoDeleteRepository {
	return implementation.NewAutoDeleteRepository(u.getDB())
}
