package mapper

import (
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/model"

	"gorm.io/gorm"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.Event) *entity.Event {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Event{
		Id:             e.Id,
		UserId:         e.UserId,
		Title:          e.Title,
		Description:    e.Description,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		AllDay:         e.AllDay,
		DepartmentId:   e.DepartmentId,
		VisibilityType: visibilityOrDefault(e.VisibilityType),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Event{
		Id:             e.Id,
		UserId:         e.UserId,
		Title:          e.Title,
		Description:    e.Description,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		AllDay:         e.AllDay,
		DepartmentId:   e.DepartmentId,
		VisibilityType: string(visibilityOrDefault(string(e.VisibilityType))),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *EventMapper) ToEntities(events []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
