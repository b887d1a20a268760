package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	RemindAt    *time.Time
	Completed   bool `gorm:"not null;default:false"`
	CompletedAt *time.Time
	IsDeleted   bool `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Reminder) TableName() string {
	return "reminders"
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}
