package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrashRecord.DeletedAt is a plain timestamp, not gorm.DeletedAt: the row
// itself is never soft-deleted.
type TrashRecord struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemType          string     `gorm:"type:varchar(20);not null;index:idx_trash_item"`
	ItemId            uuid.UUID  `gorm:"type:uuid;not null;index:idx_trash_item"`
	OriginalTitle     string     `gorm:"type:varchar(255);not null"`
	IsShared          bool       `gorm:"not null;default:false;index"`
	DeletedAt         time.Time  `gorm:"not null;index"`
	PermanentDeleteAt *time.Time `gorm:"index"`
	OwnerDepartmentId *uuid.UUID `gorm:"type:uuid;index"`
	VisibilityType    *string    `gorm:"type:varchar(20)"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
}

func (TrashRecord) TableName() string {
	return "trash_records"
}

func (t *TrashRecord) BeforeCreate(tx *gorm.DB) error {
	if t.Id == uuid.Nil {
		t.Id = uuid.New()
	}
	return nil
}
