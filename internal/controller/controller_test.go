package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"officehub-be/internal/model"
	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/pkg/serverutils"
	"officehub-be/internal/repository/memory"
	"officehub-be/internal/repository/unitofwork"
	"officehub-be/internal/service"
	"officehub-be/internal/testutil"
	"officehub-be/internal/trash"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "controller-test-secret"

type apiResponse struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testAPI struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db := testutil.NewTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	log := logger.NewNopLogger()

	trashSvc := service.NewTrashService(factory, trash.NewRegistry(), nil, nil, log, service.TrashServiceConfig{
		GracePeriod: 30 * 24 * time.Hour,
	})
	settingSvc := service.NewAutoDeleteSettingService(factory, memory.NewSettingCache(time.Minute), log)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler})
	app.Use(serverutils.ErrorHandlerMiddleware())

	auth := serverutils.NewJwtMiddleware(testSecret)
	api := app.Group("/api")
	NewTrashController(trashSvc, auth).RegisterRoutes(api)
	NewAutoDeleteController(settingSvc, auth).RegisterRoutes(api)

	return &testAPI{app: app, db: db}
}

func tokenFor(t *testing.T, user *model.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	if user.DepartmentId != nil {
		claims["department_id"] = user.DepartmentId.String()
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestTrashAPI_RequiresToken(t *testing.T) {
	api := newTestAPI(t)

	status, _ := api.do(t, http.MethodGet, "/api/trash/v1", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = api.do(t, http.MethodGet, "/api/trash/v1", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestTrashAPI_MoveListRestore(t *testing.T) {
	api := newTestAPI(t)
	user := testutil.SeedUser(t, api.db)
	note := testutil.SeedNote(t, api.db, user.Id, "Budget")
	token := tokenFor(t, user)

	status, res := api.do(t, http.MethodPost, "/api/trash/v1", token, map[string]interface{}{
		"item_type": "note",
		"item_id":   note.Id,
	})
	require.Equal(t, fiber.StatusCreated, status, res.Message)

	var record struct {
		Id            uuid.UUID `json:"id"`
		ItemType      string    `json:"item_type"`
		OriginalTitle string    `json:"original_title"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &record))
	assert.Equal(t, "note", record.ItemType)
	assert.Equal(t, "Budget", record.OriginalTitle)

	status, res = api.do(t, http.MethodGet, "/api/trash/v1?item_type=note", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &list))
	assert.Equal(t, int64(1), list.Total)

	status, res = api.do(t, http.MethodPost, "/api/trash/v1/"+record.Id.String()+"/restore", token, nil)
	require.Equal(t, fiber.StatusOK, status, res.Message)
	var restored struct {
		ItemId uuid.UUID `json:"item_id"`
		Title  string    `json:"title"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &restored))
	assert.Equal(t, note.Id, restored.ItemId)

	// Gone from the trash now.
	status, _ = api.do(t, http.MethodPost, "/api/trash/v1/"+record.Id.String()+"/restore", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestTrashAPI_ValidationAndErrorMapping(t *testing.T) {
	api := newTestAPI(t)
	owner := testutil.SeedUser(t, api.db)
	other := testutil.SeedUser(t, api.db)
	note := testutil.SeedNote(t, api.db, owner.Id, "Private")
	token := tokenFor(t, other)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"unknown item type", http.MethodPost, "/api/trash/v1", map[string]interface{}{"item_type": "folder", "item_id": uuid.New()}, fiber.StatusBadRequest},
		{"missing item id", http.MethodPost, "/api/trash/v1", map[string]interface{}{"item_type": "note"}, fiber.StatusBadRequest},
		{"someone else's private item", http.MethodPost, "/api/trash/v1", map[string]interface{}{"item_type": "note", "item_id": note.Id}, fiber.StatusForbidden},
		{"missing item", http.MethodPost, "/api/trash/v1", map[string]interface{}{"item_type": "note", "item_id": uuid.New()}, fiber.StatusNotFound},
		{"bad record id", http.MethodDelete, "/api/trash/v1/not-a-uuid", nil, fiber.StatusBadRequest},
		{"unknown record", http.MethodDelete, "/api/trash/v1/" + uuid.NewString(), nil, fiber.StatusNotFound},
		{"empty purge list", http.MethodPost, "/api/trash/v1/purge", map[string]interface{}{"ids": []uuid.UUID{}}, fiber.StatusBadRequest},
		{"bad list filter", http.MethodGet, "/api/trash/v1?item_type=folder", nil, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, res := api.do(t, tt.method, tt.path, token, tt.body)
			assert.Equal(t, tt.want, status)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Code)
		})
	}
}

func TestTrashAPI_PurgeManyAndEmpty(t *testing.T) {
	api := newTestAPI(t)
	user := testutil.SeedUser(t, api.db)
	token := tokenFor(t, user)

	var ids []uuid.UUID
	for _, title := range []string{"a", "b", "c"} {
		note := testutil.SeedNote(t, api.db, user.Id, title)
		_, res := api.do(t, http.MethodPost, "/api/trash/v1", token, map[string]interface{}{"item_type": "note", "item_id": note.Id})
		var record struct {
			Id uuid.UUID `json:"id"`
		}
		require.NoError(t, json.Unmarshal(res.Data, &record))
		ids = append(ids, record.Id)
	}

	status, res := api.do(t, http.MethodPost, "/api/trash/v1/purge", token, map[string]interface{}{"ids": ids[:2]})
	require.Equal(t, fiber.StatusOK, status, res.Message)
	var count struct {
		Deleted int `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &count))
	assert.Equal(t, 2, count.Deleted)

	status, res = api.do(t, http.MethodDelete, "/api/trash/v1", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(res.Data, &count))
	assert.Equal(t, 1, count.Deleted)

	assert.Equal(t, int64(0), testutil.CountRows(t, api.db, &model.Note{}, "user_id = ?", user.Id))
}

func TestAutoDeleteAPI_Setting(t *testing.T) {
	api := newTestAPI(t)
	user := testutil.SeedUser(t, api.db)
	token := tokenFor(t, user)

	status, res := api.do(t, http.MethodGet, "/api/auto-delete/v1/setting", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var setting struct {
		Period    string   `json:"period"`
		Available []string `json:"available"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &setting))
	assert.Equal(t, "disabled", setting.Period)
	assert.Contains(t, setting.Available, "1_month")

	status, _ = api.do(t, http.MethodPut, "/api/auto-delete/v1/setting", token, map[string]interface{}{"period": "2_weeks"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, res = api.do(t, http.MethodPut, "/api/auto-delete/v1/setting", token, map[string]interface{}{"period": "3_months"})
	require.Equal(t, fiber.StatusOK, status, res.Message)

	_, res = api.do(t, http.MethodGet, "/api/auto-delete/v1/setting", token, nil)
	require.NoError(t, json.Unmarshal(res.Data, &setting))
	assert.Equal(t, "3_months", setting.Period)

	status, res = api.do(t, http.MethodGet, "/api/auto-delete/v1/logs", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, res.Success)
}
