package service

import (
	"sync"
	"testing"
	"time"

	"officehub-be/internal/model"
	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/repository/memory"
	"officehub-be/internal/repository/unitofwork"
	"officehub-be/internal/testutil"
	"officehub-be/internal/trash"
	"officehub-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type harness struct {
	db        *gorm.DB
	clock     *testClock
	events    *events.RecordingPublisher
	trash     *trashService
	settings  IAutoDeleteSettingService
	scheduler *autoDeleteScheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db := testutil.NewTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	registry := trash.NewRegistry()
	recorder := &events.RecordingPublisher{}
	log := logger.NewNopLogger()
	clock := newTestClock()

	trashSvc := NewTrashService(factory, registry, recorder, nil, log, TrashServiceConfig{
		GracePeriod: 30 * 24 * time.Hour,
	}).(*trashService)
	trashSvc.now = clock.Now

	settings := NewAutoDeleteSettingService(factory, memory.NewSettingCache(time.Minute), log)

	scheduler := NewAutoDeleteScheduler(factory, registry, settings, recorder, nil, log).(*autoDeleteScheduler)
	scheduler.now = clock.Now

	return &harness{
		db:        db,
		clock:     clock,
		events:    recorder,
		trash:     trashSvc,
		settings:  settings,
		scheduler: scheduler,
	}
}

// trashedAt moves the clock, runs fn, then restores the clock.
func (h *harness) trashedAt(at time.Time, fn func()) {
	prev := h.clock.Now()
	h.clock.Set(at)
	defer h.clock.Set(prev)
	fn()
}

func (h *harness) countRecords(t *testing.T, query string, args ...interface{}) int64 {
	t.Helper()
	return testutil.CountRows(t, h.db, &model.TrashRecord{}, query, args...)
}

func (h *harness) insertRecord(t *testing.T, userId uuid.UUID, itemType string, itemId uuid.UUID, deletedAt time.Time) *model.TrashRecord {
	t.Helper()
	r := &model.TrashRecord{
		UserId:        userId,
		ItemType:      itemType,
		ItemId:        itemId,
		OriginalTitle: "manual",
		DeletedAt:     deletedAt,
	}
	require.NoError(t, h.db.Create(r).Error)
	return r
}
