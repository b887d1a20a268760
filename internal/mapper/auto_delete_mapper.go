package mapper

import (
	"encoding/json"

	"officehub-be/internal/entity"
	"officehub-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AutoDeleteMapper struct{}

func NewAutoDeleteMapper() *AutoDeleteMapper {
	return &AutoDeleteMapper{}
}

type autoDeleteLogDetails struct {
	FailedItems []uuid.UUID `json:"failed_items,omitempty"`
}

func (m *AutoDeleteMapper) SettingToEntity(s *model.AutoDeleteSetting) *entity.AutoDeleteSetting {
	if s == nil {
		return nil
	}
	return &entity.AutoDeleteSetting{
		Id:        s.Id,
		UserId:    s.UserId,
		Period:    entity.AutoDeletePeriod(s.Period),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *AutoDeleteMapper) SettingToModel(s *entity.AutoDeleteSetting) *model.AutoDeleteSetting {
	if s == nil {
		return nil
	}
	return &model.AutoDeleteSetting{
		Id:        s.Id,
		UserId:    s.UserId,
		Period:    string(s.Period),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *AutoDeleteMapper) LogToEntity(l *model.AutoDeleteLog) *entity.AutoDeleteLog {
	if l == nil {
		return nil
	}

	var details autoDeleteLogDetails
	if len(l.Details) > 0 {
		// Details are informational; an unreadable payload leaves FailedItems empty.
		_ = json.Unmarshal(l.Details, &details)
	}

	return &entity.AutoDeleteLog{
		Id:           l.Id,
		UserId:       l.UserId,
		Period:       entity.AutoDeletePeriod(l.Period),
		DeletedCount: l.DeletedCount,
		FailedItems:  details.FailedItems,
		ExecutedAt:   l.ExecutedAt,
	}
}

func (m *AutoDeleteMapper) LogToModel(l *entity.AutoDeleteLog) (*model.AutoDeleteLog, error) {
	if l == nil {
		return nil, nil
	}

	raw, err := json.Marshal(autoDeleteLogDetails{FailedItems: l.FailedItems})
	if err != nil {
		return nil, err
	}

	return &model.AutoDeleteLog{
		Id:           l.Id,
		UserId:       l.UserId,
		Period:       string(l.Period),
		DeletedCount: l.DeletedCount,
		Details:      datatypes.JSON(raw),
		ExecutedAt:   l.ExecutedAt,
	}, nil
}

func (m *AutoDeleteMapper) LogsToEntities(logs []*model.AutoDeleteLog) []*entity.AutoDeleteLog {
	entities := make([]*entity.AutoDeleteLog, len(logs))
	for i, l := range logs {
		entities[i] = m.LogToEntity(l)
	}
	return entities
}
