package dto

import (
	"time"

	"github.com/google/uuid"
)

type MoveToTrashRequest struct {
	ItemType string    `json:"item_type" validate:"required,item_type"`
	ItemId   uuid.UUID `json:"item_id" validate:"required"`
	Title    string    `json:"title" validate:"max=255"`
	IsShared bool      `json:"is_shared"`
}

type PurgeManyRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1,max=500"`
}

type TrashRecordResponse struct {
	Id                uuid.UUID  `json:"id"`
	ItemType          string     `json:"item_type"`
	ItemId            uuid.UUID  `json:"item_id"`
	OriginalTitle     string     `json:"original_title"`
	IsShared          bool       `json:"is_shared"`
	DeletedAt         time.Time  `json:"deleted_at"`
	PermanentDeleteAt *time.Time `json:"permanent_delete_at"`
	OwnerDepartmentId *uuid.UUID `json:"owner_department_id,omitempty"`
	VisibilityType    *string    `json:"visibility_type,omitempty"`
}

type TrashListResponse struct {
	Items []*TrashRecordResponse `json:"items"`
	Total int64                  `json:"total"`
}

type RestoredItemResponse struct {
	ItemType string    `json:"item_type"`
	ItemId   uuid.UUID `json:"item_id"`
	Title    string    `json:"title"`
}

type PurgeCountResponse struct {
	Deleted int `json:"deleted"`
}
