package mapper

import (
	"officehub-be/internal/entity"
	"officehub-be/internal/model"
)

type TrashRecordMapper struct{}

func NewTrashRecordMapper() *TrashRecordMapper {
	return &TrashRecordMapper{}
}

func (m *TrashRecordMapper) ToEntity(t *model.TrashRecord) *entity.TrashRecord {
	if t == nil {
		return nil
	}

	var visibility *entity.VisibilityType
	if t.VisibilityType != nil {
		v := entity.VisibilityType(*t.VisibilityType)
		visibility = &v
	}

	return &entity.TrashRecord{
		Id:                t.Id,
		OwnerUserId:       t.UserId,
		ItemType:          entity.ItemType(t.ItemType),
		ItemId:            t.ItemId,
		OriginalTitle:     t.OriginalTitle,
		IsShared:          t.IsShared,
		DeletedAt:         t.DeletedAt,
		PermanentDeleteAt: t.PermanentDeleteAt,
		OwnerDepartmentId: t.OwnerDepartmentId,
		VisibilityType:    visibility,
		CreatedAt:         t.CreatedAt,
	}
}

func (m *TrashRecordMapper) ToModel(t *entity.TrashRecord) *model.TrashRecord {
	if t == nil {
		return nil
	}

	var visibility *string
	if t.VisibilityType != nil {
		v := string(*t.VisibilityType)
		visibility = &v
	}

	return &model.TrashRecord{
		Id:                t.Id,
		UserId:            t.OwnerUserId,
		ItemType:          string(t.ItemType),
		ItemId:            t.ItemId,
		OriginalTitle:     t.OriginalTitle,
		IsShared:          t.IsShared,
		DeletedAt:         t.DeletedAt,
		PermanentDeleteAt: t.PermanentDeleteAt,
		OwnerDepartmentId: t.OwnerDepartmentId,
		VisibilityType:    visibility,
		CreatedAt:         t.CreatedAt,
	}
}

func (m *TrashRecordMapper) ToEntities(records []*model.TrashRecord) []*entity.TrashRecord {
	entities := make([]*entity.TrashRecord, len(records))
	for i, t := range records {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
