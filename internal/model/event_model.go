package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is the only trashable entity on GORM's native soft delete.
type Event struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Description    string         `gorm:"type:text"`
	StartsAt       time.Time      `gorm:"not null"`
	EndsAt         time.Time      `gorm:"not null"`
	AllDay         bool           `gorm:"not null;default:false"`
	DepartmentId   *uuid.UUID     `gorm:"type:uuid;index"`
	VisibilityType string         `gorm:"type:varchar(20);not null;default:'private'"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}
