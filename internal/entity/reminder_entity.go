package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder keeps trash state (IsDeleted) apart from completion state.
type Reminder struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	RemindAt    *time.Time
	Completed   bool
	CompletedAt *time.Time
	IsDeleted   bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (r *Reminder) ItemId() uuid.UUID          { return r.Id }
func (r *Reminder) ItemTitle() string          { return r.Title }
func (r *Reminder) ItemType() ItemType         { return ItemTypeReminder }
func (r *Reminder) OwnerId() uuid.UUID         { return r.UserId }
func (r *Reminder) Department() *uuid.UUID     { return nil }
func (r *Reminder) Visibility() VisibilityType { return VisibilityPrivate }
