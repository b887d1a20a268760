package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Survey struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text"`
	DepartmentId   *uuid.UUID `gorm:"type:uuid;index"`
	VisibilityType string     `gorm:"type:varchar(20);not null;default:'private'"`
	IsDeleted      bool       `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Survey) TableName() string {
	return "surveys"
}

func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}

type SurveyQuestion struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SurveyId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Body      string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

func (q *SurveyQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.Id == uuid.Nil {
		q.Id = uuid.New()
	}
	return nil
}

type SurveyQuestionOption struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuestionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(255);not null"`
	Position   int       `gorm:"not null;default:0"`
}

func (SurveyQuestionOption) TableName() string {
	return "survey_question_options"
}

func (o *SurveyQuestionOption) BeforeCreate(tx *gorm.DB) error {
	if o.Id == uuid.Nil {
		o.Id = uuid.New()
	}
	return nil
}

type SurveyResponse struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SurveyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SubmittedAt time.Time `gorm:"not null"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

func (r *SurveyResponse) BeforeCreate(tx *gorm.DB) error {
	if r.Id == uuid.Nil {
		r.Id = uuid.New()
	}
	return nil
}

type SurveyAnswer struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ResponseId uuid.UUID  `gorm:"type:uuid;not null;index"`
	QuestionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	OptionId   *uuid.UUID `gorm:"type:uuid"`
	Text       string     `gorm:"type:text"`
}

func (SurveyAnswer) TableName() string {
	return "survey_answers"
}

func (a *SurveyAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.Id == uuid.Nil {
		a.Id = uuid.New()
	}
	return nil
}
