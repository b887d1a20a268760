package mapper

import (
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/model"
)

type ReminderMapper struct{}

func NewReminderMapper() *ReminderMapper {
	return &ReminderMapper{}
}

func (m *ReminderMapper) ToEntity(r *model.Reminder) *entity.Reminder {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Reminder{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		RemindAt:    r.RemindAt,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		IsDeleted:   r.IsDeleted,
		DeletedAt:   r.DeletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ReminderMapper) ToModel(r *entity.Reminder) *model.Reminder {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Reminder{
		Id:          r.Id,
		UserId:      r.UserId,
		Title:       r.Title,
		RemindAt:    r.RemindAt,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		IsDeleted:   r.IsDeleted,
		DeletedAt:   r.DeletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ReminderMapper) ToEntities(reminders []*model.Reminder) []*entity.Reminder {
	entities := make([]*entity.Reminder, len(reminders))
	for i, r := range reminders {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
