package testutil

import (
	"fmt"
	"testing"
	"time"

	"officehub-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func mustCreate(t testing.TB, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func SeedUser(t testing.TB, db *gorm.DB) *model.User {
	t.Helper()
	u := &model.User{Id: uuid.New(), FullName: "Test User", Status: "active"}
	u.Email = fmt.Sprintf("%s@officehub.test", u.Id)
	mustCreate(t, db, u)
	return u
}

func SeedNote(t testing.TB, db *gorm.DB, userId uuid.UUID, title string) *model.Note {
	t.Helper()
	n := &model.Note{UserId: userId, Title: title, Content: "body", VisibilityType: "private"}
	mustCreate(t, db, n)
	return n
}

func SeedSharedNote(t testing.TB, db *gorm.DB, userId uuid.UUID, departmentId uuid.UUID, title string) *model.Note {
	t.Helper()
	n := &model.Note{UserId: userId, Title: title, DepartmentId: &departmentId, VisibilityType: "department"}
	mustCreate(t, db, n)
	return n
}

func SeedReminder(t testing.TB, db *gorm.DB, userId uuid.UUID, title string, completed bool) *model.Reminder {
	t.Helper()
	r := &model.Reminder{UserId: userId, Title: title, Completed: completed}
	if completed {
		at := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
		r.CompletedAt = &at
	}
	mustCreate(t, db, r)
	return r
}

func SeedEvent(t testing.TB, db *gorm.DB, userId uuid.UUID, title string) *model.Event {
	t.Helper()
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	e := &model.Event{
		UserId:         userId,
		Title:          title,
		StartsAt:       start,
		EndsAt:         start.Add(time.Hour),
		VisibilityType: "company",
	}
	mustCreate(t, db, e)
	return e
}

// SeedSurvey creates a survey with two questions of two options each and
// one response answering both questions.
func SeedSurvey(t testing.TB, db *gorm.DB, userId uuid.UUID, title string) *model.Survey {
	t.Helper()
	s := &model.Survey{UserId: userId, Title: title, VisibilityType: "private"}
	mustCreate(t, db, s)

	resp := &model.SurveyResponse{SurveyId: s.Id, UserId: userId, SubmittedAt: time.Now().UTC()}
	mustCreate(t, db, resp)

	for i := 0; i < 2; i++ {
		q := &model.SurveyQuestion{SurveyId: s.Id, Body: fmt.Sprintf("Q%d", i+1), Position: i}
		mustCreate(t, db, q)

		var first uuid.UUID
		for j := 0; j < 2; j++ {
			o := &model.SurveyQuestionOption{QuestionId: q.Id, Label: fmt.Sprintf("O%d", j+1), Position: j}
			mustCreate(t, db, o)
			if j == 0 {
				first = o.Id
			}
		}
		mustCreate(t, db, &model.SurveyAnswer{ResponseId: resp.Id, QuestionId: q.Id, OptionId: &first})
	}
	return s
}
