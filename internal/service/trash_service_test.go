package service

import (
	"context"
	"testing"
	"time"

	"officehub-be/internal/apperror"
	"officehub-be/internal/entity"
	"officehub-be/internal/model"
	"officehub-be/internal/testutil"
	"officehub-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrashService_MoveToTrash(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)
	note := testutil.SeedNote(t, h.db, user.Id, "Budget draft")

	record, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeNote, note.Id, "", false)
	require.NoError(t, err)

	now := h.clock.Now()
	assert.Equal(t, "Budget draft", record.OriginalTitle, "empty title falls back to the entity title")
	assert.Equal(t, user.Id, record.OwnerUserId)
	assert.True(t, record.DeletedAt.Equal(now))
	require.NotNil(t, record.PermanentDeleteAt)
	assert.True(t, record.PermanentDeleteAt.Equal(now.Add(30*24*time.Hour)))
	require.NotNil(t, record.VisibilityType)
	assert.Equal(t, entity.VisibilityPrivate, *record.VisibilityType)

	var stored model.Note
	require.NoError(t, h.db.First(&stored, "id = ?", note.Id).Error)
	assert.True(t, stored.IsDeleted)

	assert.Equal(t, int64(1), h.countRecords(t, "item_id = ?", note.Id))
	assert.Equal(t, []string{events.TypeTrashMoved}, h.events.Types())
}

func TestTrashService_MoveToTrash_CopiesDepartment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)
	dept := uuid.New()
	note := testutil.SeedSharedNote(t, h.db, user.Id, dept, "Team roster")

	record, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeNote, note.Id, "Roster (old)", true)
	require.NoError(t, err)

	assert.Equal(t, "Roster (old)", record.OriginalTitle)
	assert.True(t, record.IsShared)
	require.NotNil(t, record.OwnerDepartmentId)
	assert.Equal(t, dept, *record.OwnerDepartmentId)
	assert.Equal(t, entity.VisibilityDepartment, *record.VisibilityType)
}

func TestTrashService_MoveToTrash_Rejects(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	owner := testutil.SeedUser(t, h.db)
	other := testutil.SeedUser(t, h.db)
	note := testutil.SeedNote(t, h.db, owner.Id, "Private")

	_, err := h.trash.MoveToTrash(ctx, other.Id, entity.ItemTypeNote, note.Id, "", false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, uuid.New(), "", false)
	assert.ErrorIs(t, err, apperror.ErrUnderlyingEntityMissing)

	_, err = h.trash.MoveToTrash(ctx, owner.Id, entity.ItemType("folder"), note.Id, "", false)
	assert.ErrorIs(t, err, apperror.ErrUnsupportedItemType)

	// Already trashed items cannot be trashed twice.
	_, err = h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, note.Id, "", false)
	require.NoError(t, err)
	_, err = h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, note.Id, "", false)
	assert.ErrorIs(t, err, apperror.ErrUnderlyingEntityMissing)

	assert.Equal(t, int64(1), h.countRecords(t, ""))
	assert.Empty(t, h.events.Types()[1:])
}

func TestTrashService_MoveToTrash_SharedItemGoesToOwner(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	author := testutil.SeedUser(t, h.db)
	colleague := testutil.SeedUser(t, h.db)
	event := testutil.SeedEvent(t, h.db, author.Id, "All hands")

	record, err := h.trash.MoveToTrash(ctx, colleague.Id, entity.ItemTypeEvent, event.Id, "", true)
	require.NoError(t, err)
	assert.Equal(t, author.Id, record.OwnerUserId)
	assert.Equal(t, int64(1), h.countRecords(t, "user_id = ? AND item_id = ?", author.Id, event.Id))
	assert.Equal(t, int64(0), h.countRecords(t, "user_id = ?", colleague.Id))

	// The colleague cannot see or touch the record.
	_, err = h.trash.Restore(ctx, record.Id, colleague.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	err = h.trash.PurgeOne(ctx, record.Id, colleague.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, int64(1), testutil.CountRows(t, h.db, &model.Event{}, "id = ?", event.Id))

	item, err := h.trash.Restore(ctx, record.Id, author.Id)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "All hands", item.ItemTitle())
	assert.Equal(t, author.Id, item.OwnerId())

	assert.Equal(t, int64(1), testutil.CountRows(t, h.db, &model.Event{}, "id = ? AND deleted_at IS NULL", event.Id))
	assert.Equal(t, int64(0), h.countRecords(t, ""))
}

func TestTrashService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)

	note := testutil.SeedNote(t, h.db, user.Id, "Note")
	reminder := testutil.SeedReminder(t, h.db, user.Id, "Reminder", true)
	survey := testutil.SeedSurvey(t, h.db, user.Id, "Survey")
	event := testutil.SeedEvent(t, h.db, user.Id, "Event")

	var noteBefore model.Note
	var reminderBefore model.Reminder
	var surveyBefore model.Survey
	var eventBefore model.Event
	require.NoError(t, h.db.First(&noteBefore, "id = ?", note.Id).Error)
	require.NoError(t, h.db.First(&reminderBefore, "id = ?", reminder.Id).Error)
	require.NoError(t, h.db.First(&surveyBefore, "id = ?", survey.Id).Error)
	require.NoError(t, h.db.First(&eventBefore, "id = ?", event.Id).Error)

	items := []struct {
		itemType entity.ItemType
		id       uuid.UUID
		title    string
	}{
		{entity.ItemTypeNote, note.Id, "Note"},
		{entity.ItemTypeReminder, reminder.Id, "Reminder"},
		{entity.ItemTypeSurvey, survey.Id, "Survey"},
		{entity.ItemTypeEvent, event.Id, "Event"},
	}
	for _, it := range items {
		t.Run(string(it.itemType), func(t *testing.T) {
			record, err := h.trash.MoveToTrash(ctx, user.Id, it.itemType, it.id, "", false)
			require.NoError(t, err)

			item, err := h.trash.Restore(ctx, record.Id, user.Id)
			require.NoError(t, err)
			require.NotNil(t, item)
			assert.Equal(t, it.id, item.ItemId())
			assert.Equal(t, it.title, item.ItemTitle())
			assert.Equal(t, int64(0), h.countRecords(t, "id = ?", record.Id))
		})
	}

	var noteAfter model.Note
	var reminderAfter model.Reminder
	var surveyAfter model.Survey
	var eventAfter model.Event
	require.NoError(t, h.db.First(&noteAfter, "id = ?", note.Id).Error)
	require.NoError(t, h.db.First(&reminderAfter, "id = ?", reminder.Id).Error)
	require.NoError(t, h.db.First(&surveyAfter, "id = ?", survey.Id).Error)
	require.NoError(t, h.db.First(&eventAfter, "id = ?", event.Id).Error)

	assert.False(t, noteAfter.IsDeleted)
	assert.Nil(t, noteAfter.DeletedAt)
	assert.True(t, noteBefore.UpdatedAt.Equal(noteAfter.UpdatedAt))

	assert.False(t, reminderAfter.IsDeleted)
	assert.Equal(t, reminderBefore.Completed, reminderAfter.Completed)
	require.NotNil(t, reminderAfter.CompletedAt)
	assert.True(t, reminderBefore.CompletedAt.Equal(*reminderAfter.CompletedAt))

	assert.False(t, surveyAfter.IsDeleted)
	assert.True(t, surveyBefore.UpdatedAt.Equal(surveyAfter.UpdatedAt))
	assert.Equal(t, int64(2), testutil.CountRows(t, h.db, &model.SurveyQuestion{}, "survey_id = ?", survey.Id))

	assert.False(t, eventAfter.DeletedAt.Valid)
	assert.True(t, eventBefore.UpdatedAt.Equal(eventAfter.UpdatedAt))

	assert.Equal(t, int64(0), h.countRecords(t, ""))
}

func TestTrashService_Restore_OtherUserIsNotFound(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	owner := testutil.SeedUser(t, h.db)
	intruder := testutil.SeedUser(t, h.db)
	note := testutil.SeedNote(t, h.db, owner.Id, "Secret")

	record, err := h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, note.Id, "", false)
	require.NoError(t, err)

	_, err = h.trash.Restore(ctx, record.Id, intruder.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	err = h.trash.PurgeOne(ctx, record.Id, intruder.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = h.trash.Restore(ctx, uuid.New(), owner.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Nothing changed.
	assert.Equal(t, int64(1), h.countRecords(t, "id = ?", record.Id))
	var stored model.Note
	require.NoError(t, h.db.First(&stored, "id = ?", note.Id).Error)
	assert.True(t, stored.IsDeleted)
}

func TestTrashService_Restore_Orphan(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)
	note := testutil.SeedNote(t, h.db, user.Id, "Gone")

	record, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeNote, note.Id, "", false)
	require.NoError(t, err)
	require.NoError(t, h.db.Delete(&model.Note{}, "id = ?", note.Id).Error)

	item, err := h.trash.Restore(ctx, record.Id, user.Id)
	assert.NoError(t, err)
	assert.Nil(t, item)
	assert.Equal(t, int64(0), h.countRecords(t, "id = ?", record.Id))
}

func TestTrashService_Restore_UnsupportedType(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)
	record := h.insertRecord(t, user.Id, "folder", uuid.New(), h.clock.Now())

	_, err := h.trash.Restore(ctx, record.Id, user.Id)
	assert.ErrorIs(t, err, apperror.ErrUnsupportedItemType)
	assert.Equal(t, int64(1), h.countRecords(t, "id = ?", record.Id))
}

func TestTrashService_PurgeOne(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)
	survey := testutil.SeedSurvey(t, h.db, user.Id, "Offsite")

	record, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeSurvey, survey.Id, "", false)
	require.NoError(t, err)

	require.NoError(t, h.trash.PurgeOne(ctx, record.Id, user.Id))

	assert.Equal(t, int64(0), h.countRecords(t, ""))
	assert.Equal(t, int64(0), testutil.CountRows(t, h.db, &model.Survey{}, ""))
	assert.Equal(t, int64(0), testutil.CountRows(t, h.db, &model.SurveyQuestion{}, ""))
	assert.Equal(t, int64(0), testutil.CountRows(t, h.db, &model.SurveyQuestionOption{}, ""))
	assert.Equal(t, int64(0), testutil.CountRows(t, h.db, &model.SurveyResponse{}, ""))
	assert.Equal(t, int64(0), testutil.CountRows(t, h.db, &model.SurveyAnswer{}, ""))
	assert.Equal(t, []string{events.TypeTrashMoved, events.TypeTrashPurged}, h.events.Types())

	// The record is gone, so a second purge is NotFound.
	assert.ErrorIs(t, h.trash.PurgeOne(ctx, record.Id, user.Id), apperror.ErrNotFound)
}

func TestTrashService_PurgeOne_StaleRecords(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)

	missing := h.insertRecord(t, user.Id, string(entity.ItemTypeEvent), uuid.New(), h.clock.Now())
	unsupported := h.insertRecord(t, user.Id, "folder", uuid.New(), h.clock.Now())

	assert.NoError(t, h.trash.PurgeOne(ctx, missing.Id, user.Id))
	assert.NoError(t, h.trash.PurgeOne(ctx, unsupported.Id, user.Id))
	assert.Equal(t, int64(0), h.countRecords(t, ""))

	purged := h.events.Events()
	require.Len(t, purged, 2)
	assert.Equal(t, true, purged[0].Payload()["orphan"])
}

func TestTrashService_PurgeMany_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	owner := testutil.SeedUser(t, h.db)
	other := testutil.SeedUser(t, h.db)

	n1 := testutil.SeedNote(t, h.db, owner.Id, "one")
	n2 := testutil.SeedNote(t, h.db, owner.Id, "two")
	foreign := testutil.SeedNote(t, h.db, other.Id, "theirs")

	r1, err := h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, n1.Id, "", false)
	require.NoError(t, err)
	r2, err := h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, n2.Id, "", false)
	require.NoError(t, err)
	rf, err := h.trash.MoveToTrash(ctx, other.Id, entity.ItemTypeNote, foreign.Id, "", false)
	require.NoError(t, err)

	_, err = h.trash.PurgeMany(ctx, []uuid.UUID{r1.Id, r2.Id, rf.Id}, owner.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, int64(3), h.countRecords(t, ""))
	assert.Equal(t, int64(3), testutil.CountRows(t, h.db, &model.Note{}, ""))

	count, err := h.trash.PurgeMany(ctx, []uuid.UUID{r1.Id, r2.Id, r1.Id}, owner.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(1), h.countRecords(t, ""))
	assert.Equal(t, int64(1), testutil.CountRows(t, h.db, &model.Note{}, ""))

	count, err = h.trash.PurgeMany(ctx, nil, owner.Id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTrashService_EmptyAll(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	owner := testutil.SeedUser(t, h.db)
	other := testutil.SeedUser(t, h.db)

	for _, title := range []string{"a", "b"} {
		n := testutil.SeedNote(t, h.db, owner.Id, title)
		_, err := h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeNote, n.Id, "", false)
		require.NoError(t, err)
	}
	e := testutil.SeedEvent(t, h.db, owner.Id, "standup")
	_, err := h.trash.MoveToTrash(ctx, owner.Id, entity.ItemTypeEvent, e.Id, "", false)
	require.NoError(t, err)
	theirs := testutil.SeedNote(t, h.db, other.Id, "keep")
	_, err = h.trash.MoveToTrash(ctx, other.Id, entity.ItemTypeNote, theirs.Id, "", false)
	require.NoError(t, err)

	count, err := h.trash.EmptyAll(ctx, owner.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.Equal(t, int64(0), h.countRecords(t, "user_id = ?", owner.Id))
	assert.Equal(t, int64(1), h.countRecords(t, "user_id = ?", other.Id))
	assert.Equal(t, int64(0), testutil.CountRows(t, h.db, &model.Event{}, ""))

	count, err = h.trash.EmptyAll(ctx, owner.Id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTrashService_List(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	user := testutil.SeedUser(t, h.db)
	dept := uuid.New()

	base := h.clock.Now()
	note := testutil.SeedNote(t, h.db, user.Id, "older note")
	shared := testutil.SeedSharedNote(t, h.db, user.Id, dept, "shared note")
	event := testutil.SeedEvent(t, h.db, user.Id, "newest event")

	h.trashedAt(base.Add(-3*time.Hour), func() {
		_, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeNote, note.Id, "", false)
		require.NoError(t, err)
	})
	h.trashedAt(base.Add(-2*time.Hour), func() {
		_, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeNote, shared.Id, "", true)
		require.NoError(t, err)
	})
	h.trashedAt(base.Add(-1*time.Hour), func() {
		_, err := h.trash.MoveToTrash(ctx, user.Id, entity.ItemTypeEvent, event.Id, "", false)
		require.NoError(t, err)
	})

	records, total, err := h.trash.List(ctx, user.Id, TrashFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 3)
	assert.Equal(t, "newest event", records[0].OriginalTitle)
	assert.Equal(t, "older note", records[2].OriginalTitle)

	noteType := entity.ItemTypeNote
	records, total, err = h.trash.List(ctx, user.Id, TrashFilter{ItemType: &noteType, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 1)
	assert.Equal(t, "shared note", records[0].OriginalTitle)

	records, _, err = h.trash.ListShared(ctx, &dept, TrashFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, shared.Id, records[0].ItemId)

	otherDept := uuid.New()
	records, _, err = h.trash.ListShared(ctx, &otherDept, TrashFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
