package mapper

import (
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Note{
		Id:             n.Id,
		UserId:         n.UserId,
		Title:          n.Title,
		Content:        n.Content,
		DepartmentId:   n.DepartmentId,
		VisibilityType: visibilityOrDefault(n.VisibilityType),
		IsDeleted:      n.IsDeleted,
		DeletedAt:      n.DeletedAt,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Note{
		Id:             n.Id,
		UserId:         n.UserId,
		Title:          n.Title,
		Content:        n.Content,
		DepartmentId:   n.DepartmentId,
		VisibilityType: string(visibilityOrDefault(string(n.VisibilityType))),
		IsDeleted:      n.IsDeleted,
		DeletedAt:      n.DeletedAt,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func visibilityOrDefault(v string) entity.VisibilityType {
	if v == "" {
		return entity.VisibilityPrivate
	}
	return entity.VisibilityType(v)
}
