package entity

import (
	"fmt"
	"strings"
	"time"

	"officehub-be/internal/apperror"

	"github.com/google/uuid"
)

type ItemType string

const (
	ItemTypeNote     ItemType = "note"
	ItemTypeReminder ItemType = "reminder"
	ItemTypeSurvey   ItemType = "survey"
	ItemTypeEvent    ItemType = "event"
)

var itemTypes = []ItemType{ItemTypeNote, ItemTypeReminder, ItemTypeSurvey, ItemTypeEvent}

func ItemTypes() []ItemType {
	out := make([]ItemType, len(itemTypes))
	copy(out, itemTypes)
	return out
}

func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range itemTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperror.ErrInvalidItemType, s)
}

type TrashRecord struct {
	Id                uuid.UUID
	OwnerUserId       uuid.UUID
	ItemType          ItemType
	ItemId            uuid.UUID
	OriginalTitle     string
	IsShared          bool
	DeletedAt         time.Time
	PermanentDeleteAt *time.Time
	OwnerDepartmentId *uuid.UUID
	VisibilityType    *VisibilityType
	CreatedAt         time.Time
}
