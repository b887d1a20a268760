package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/mapper"
	"officehub-be/internal/model"
	"officehub-be/internal/repository/contract"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SurveyMapper
}

func NewSurveyRepository(db *gorm.DB) contract.SurveyRepository {
	return &SurveyRepositoryImpl{
		db:     db,
		mapper: mapper.NewSurveyMapper(),
	}
}

func (r *SurveyRepositoryImpl) Create(ctx context.Context, survey *entity.Survey) error {
	m := r.mapper.ToModel(survey)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*survey = *r.mapper.ToEntity(m)
	return nil
}

func (r *SurveyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Survey, error) {
	var m model.Survey
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SurveyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Survey{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SurveyRepositoryImpl) CreateQuestion(ctx context.Context, question *entity.SurveyQuestion) error {
	m := r.mapper.QuestionToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	question.Id = m.Id
	return nil
}

func (r *SurveyRepositoryImpl) CreateOption(ctx context.Context, option *entity.SurveyQuestionOption) error {
	m := r.mapper.OptionToModel(option)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	option.Id = m.Id
	return nil
}

func (r *SurveyRepositoryImpl) CreateResponse(ctx context.Context, response *entity.SurveyResponse) error {
	m := r.mapper.ResponseToModel(response)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	response.Id = m.Id
	return nil
}

func (r *SurveyRepositoryImpl) CreateAnswer(ctx context.Context, answer *entity.SurveyAnswer) error {
	m := r.mapper.AnswerToModel(answer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	answer.Id = m.Id
	return nil
}

func (r *SurveyRepositoryImpl) FindQuestions(ctx context.Context, surveyId uuid.UUID) ([]*entity.SurveyQuestion, error) {
	var models []*model.SurveyQuestion
	if err := r.db.WithContext(ctx).Where("survey_id = ?", surveyId).Order("position ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.SurveyQuestion, len(models))
	for i, m := range models {
		out[i] = r.mapper.QuestionToEntity(m)
	}
	return out, nil
}

func (r *SurveyRepositoryImpl) FindResponses(ctx context.Context, surveyId uuid.UUID) ([]*entity.SurveyResponse, error) {
	var models []*model.SurveyResponse
	if err := r.db.WithContext(ctx).Where("survey_id = ?", surveyId).Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.SurveyResponse, len(models))
	for i, m := range models {
		out[i] = r.mapper.ResponseToEntity(m)
	}
	return out, nil
}

func (r *SurveyRepositoryImpl) MarkTrashed(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Survey{}).
		Where("id = ? AND is_deleted = ?", id, false).
		UpdateColumns(map[string]interface{}{"is_deleted": true, "deleted_at": at})
	return res.RowsAffected, res.Error
}

func (r *SurveyRepositoryImpl) ClearTrashed(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Survey{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"is_deleted": false, "deleted_at": nil})
	return res.RowsAffected, res.Error
}

// HardDeleteCascade does not rely on database-level ON DELETE CASCADE.
func (r *SurveyRepositoryImpl) HardDeleteCascade(ctx context.Context, id uuid.UUID) (*entity.SurveyPurgeStats, error) {
	db := r.db.WithContext(ctx)
	stats := &entity.SurveyPurgeStats{}

	questionIds := db.Model(&model.SurveyQuestion{}).Select("id").Where("survey_id = ?", id)
	res := db.Where("question_id IN (?)", questionIds).Delete(&model.SurveyQuestionOption{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete survey options: %w", res.Error)
	}
	stats.Options = res.RowsAffected

	res = db.Where("survey_id = ?", id).Delete(&model.SurveyQuestion{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete survey questions: %w", res.Error)
	}
	stats.Questions = res.RowsAffected

	responseIds := db.Model(&model.SurveyResponse{}).Select("id").Where("survey_id = ?", id)
	res = db.Where("response_id IN (?)", responseIds).Delete(&model.SurveyAnswer{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete survey answers: %w", res.Error)
	}
	stats.Answers = res.RowsAffected

	res = db.Where("survey_id = ?", id).Delete(&model.SurveyResponse{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete survey responses: %w", res.Error)
	}
	stats.Responses = res.RowsAffected

	res = db.Where("id = ?", id).Delete(&model.Survey{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete survey: %w", res.Error)
	}
	stats.Surveys = res.RowsAffected

	return stats, nil
}
