package entity

import (
	"time"

	"github.com/google/uuid"
)

type Survey struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	Description    string
	DepartmentId   *uuid.UUID
	VisibilityType VisibilityType
	IsDeleted      bool
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (s *Survey) ItemId() uuid.UUID          { return s.Id }
func (s *Survey) ItemTitle() string          { return s.Title }
func (s *Survey) ItemType() ItemType         { return ItemTypeSurvey }
func (s *Survey) OwnerId() uuid.UUID         { return s.UserId }
func (s *Survey) Department() *uuid.UUID     { return s.DepartmentId }
func (s *Survey) Visibility() VisibilityType { return s.VisibilityType }

type SurveyQuestion struct {
	Id       uuid.UUID
	SurveyId uuid.UUID
	Body     string
	Position int
}

type SurveyQuestionOption struct {
	Id         uuid.UUID
	QuestionId uuid.UUID
	Label      string
	Position   int
}

type SurveyResponse struct {
	Id          uuid.UUID
	SurveyId    uuid.UUID
	UserId      uuid.UUID
	SubmittedAt time.Time
}

type SurveyAnswer struct {
	Id         uuid.UUID
	ResponseId uuid.UUID
	QuestionId uuid.UUID
	OptionId   *uuid.UUID
	Text       string
}

// SurveyPurgeStats counts the rows removed by a survey hard delete.
type SurveyPurgeStats struct {
	Options   int64
	Questions int64
	Answers   int64
	Responses int64
	Surveys   int64
}
