package mapper

import (
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/model"
)

type SurveyMapper struct{}

func NewSurveyMapper() *SurveyMapper {
	return &SurveyMapper{}
}

func (m *SurveyMapper) ToEntity(s *model.Survey) *entity.Survey {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Survey{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		Description:    s.Description,
		DepartmentId:   s.DepartmentId,
		VisibilityType: visibilityOrDefault(s.VisibilityType),
		IsDeleted:      s.IsDeleted,
		DeletedAt:      s.DeletedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *SurveyMapper) ToModel(s *entity.Survey) *model.Survey {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Survey{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		Description:    s.Description,
		DepartmentId:   s.DepartmentId,
		VisibilityType: string(visibilityOrDefault(string(s.VisibilityType))),
		IsDeleted:      s.IsDeleted,
		DeletedAt:      s.DeletedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *SurveyMapper) QuestionToModel(q *entity.SurveyQuestion) *model.SurveyQuestion {
	return &model.SurveyQuestion{Id: q.Id, SurveyId: q.SurveyId, Body: q.Body, Position: q.Position}
}

func (m *SurveyMapper) QuestionToEntity(q *model.SurveyQuestion) *entity.SurveyQuestion {
	return &entity.SurveyQuestion{Id: q.Id, SurveyId: q.SurveyId, Body: q.Body, Position: q.Position}
}

func (m *SurveyMapper) OptionToModel(o *entity.SurveyQuestionOption) *model.SurveyQuestionOption {
	return &model.SurveyQuestionOption{Id: o.Id, QuestionId: o.QuestionId, Label: o.Label, Position: o.Position}
}

func (m *SurveyMapper) ResponseToModel(r *entity.SurveyResponse) *model.SurveyResponse {
	return &model.SurveyResponse{Id: r.Id, SurveyId: r.SurveyId, UserId: r.UserId, SubmittedAt: r.SubmittedAt}
}

func (m *SurveyMapper) ResponseToEntity(r *model.SurveyResponse) *entity.SurveyResponse {
	return &entity.SurveyResponse{Id: r.Id, SurveyId: r.SurveyId, UserId: r.UserId, SubmittedAt: r.SubmittedAt}
}

func (m *SurveyMapper) AnswerToModel(a *entity.SurveyAnswer) *model.SurveyAnswer {
	return &model.SurveyAnswer{Id: a.Id, ResponseId: a.ResponseId, QuestionId: a.QuestionId, OptionId: a.OptionId, Text: a.Text}
}
