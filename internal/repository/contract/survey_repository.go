package contract

import (
	"context"
	"time"

	"officehub-be/internal/entity"
	"officehub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SurveyRepository interface {
	Create(ctx context.Context, survey *entity.Survey) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Survey, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateQuestion(ctx context.Context, question *entity.SurveyQuestion) error
	CreateOption(ctx context.Context, option *entity.SurveyQuestionOption) error
	CreateResponse(ctx context.Context, response *entity.SurveyResponse) error
	CreateAnswer(ctx context.Context, answer *entity.SurveyAnswer) error
	FindQuestions(ctx context.Context, surveyId uuid.UUID) ([]*entity.SurveyQuestion, error)
	FindResponses(ctx context.Context, surveyId uuid.UUID) ([]*entity.SurveyResponse, error)

	MarkTrashed(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	ClearTrashed(ctx context.Context, id uuid.UUID) (int64, error)

	// HardDeleteCascade removes options, questions, answers, responses and
	// finally the survey, children before parents.
	HardDeleteCascade(ctx context.Context, id uuid.UUID) (*entity.SurveyPurgeStats, error)
}
