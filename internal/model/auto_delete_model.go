package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AutoDeleteSetting struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Period    string    `gorm:"type:varchar(20);not null;default:'disabled'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AutoDeleteSetting) TableName() string {
	return "auto_delete_settings"
}

func (s *AutoDeleteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}

// AutoDeleteLog is append-only: one row per scheduler pass per user.
type AutoDeleteLog struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Period       string         `gorm:"type:varchar(20);not null"`
	DeletedCount int            `gorm:"not null;default:0"`
	Details      datatypes.JSON `gorm:"type:jsonb"`
	ExecutedAt   time.Time      `gorm:"not null;index"`
}

func (AutoDeleteLog) TableName() string {
	return "auto_delete_logs"
}

func (l *AutoDeleteLog) BeforeCreate(tx *gorm.DB) error {
	if l.Id == uuid.Nil {
		l.Id = uuid.New()
	}
	return nil
}
