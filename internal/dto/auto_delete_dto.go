package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateAutoDeleteSettingRequest struct {
	Period string `json:"period" validate:"required,auto_delete_period"`
}

type AutoDeleteSettingResponse struct {
	Period    string   `json:"period"`
	Available []string `json:"available"`
}

type AutoDeleteLogResponse struct {
	Id           uuid.UUID   `json:"id"`
	Period       string      `json:"period"`
	DeletedCount int         `json:"deleted_count"`
	FailedItems  []uuid.UUID `json:"failed_items,omitempty"`
	ExecutedAt   time.Time   `json:"executed_at"`
}
