package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/inventory"
	"github.com/jhoicas/Obras-api/internal/application/notification"
	"github.com/jhoicas/Obras-api/internal/application/usecase"
	"github.com/jhoicas/Obras-api/internal/domain/entity"
	"github.com/jhoicas/Obras-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Obras-api/internal/interfaces/http"
)

// newAPI monta el router real sobre el store en memoria. Las dependencias que un test
// no toca quedan en nil.
func newAPI(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Items().Create(ctx, &entity.InventoryItem{
		ID: "drill-1", Name: "Taladro percutor", Category: entity.ItemCategoryTool,
		Status: entity.ItemStatusAvailable, Condition: entity.ItemConditionGood,
	}))
	for _, e := range []entity.Employee{
		{ID: "alice", FirstName: "Alice", LastName: "Gómez", Status: entity.EmployeeStatusActive},
		{ID: "bob", FirstName: "Bob", LastName: "Ruiz", Status: entity.EmployeeStatusActive},
	} {
		e := e
		require.NoError(t, store.Employees().Create(ctx, &e))
	}

	ledger := inventory.NewAssignmentLedger(store, store.Assignments(), nil, nil)
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		Items:         inventory.NewItemUseCase(store, store.Items()),
		Ledger:        ledger,
		Employees:     usecase.NewEmployeeUseCase(store.Employees(), ledger, nil),
		Notifications: notification.NewUseCase(store.Notifications()),
		AI:            usecase.NewAIUseCase(nil, usecase.AIRepos{}, time.Second),
		JWTSecret:     testJWTSecret,
	})
	return app, store
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func TestInventoryAPI_AsignarDevolverYConflictos(t *testing.T) {
	app, _ := newAPI(t)

	status, raw := call(t, app, http.MethodPost, "/api/inventory/assignments", "user",
		map[string]string{"item_id": "drill-1", "employee_id": "alice", "notes": "obra norte"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	a := decode[map[string]any](t, raw)
	assignmentID, _ := a["id"].(string)
	require.NotEmpty(t, assignmentID)
	assert.Equal(t, "alice", a["employee_id"])
	assert.Nil(t, a["returned_date"])

	// Un segundo préstamo del mismo ítem choca con la asignación abierta.
	status, raw = call(t, app, http.MethodPost, "/api/inventory/assignments", "user",
		map[string]string{"item_id": "drill-1", "employee_id": "bob"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode[errorBody](t, raw).Code)

	status, raw = call(t, app, http.MethodGet, "/api/inventory/drill-1", "user", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.ItemStatusAssigned, decode[map[string]any](t, raw)["status"])

	status, raw = call(t, app, http.MethodPost, "/api/inventory/assignments/"+assignmentID+"/return", "user", nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.JSONEq(t, `{"success":true}`, string(raw))

	status, raw = call(t, app, http.MethodPost, "/api/inventory/assignments/"+assignmentID+"/return", "user", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_RETURNED", decode[errorBody](t, raw).Code)

	status, raw = call(t, app, http.MethodGet, "/api/inventory/drill-1", "user", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, entity.ItemStatusAvailable, decode[map[string]any](t, raw)["status"])

	status, raw = call(t, app, http.MethodGet, "/api/inventory/drill-1/history", "user", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]any](t, raw), 1)
}

func TestInventoryAPI_ValidacionYNoEncontrado(t *testing.T) {
	app, _ := newAPI(t)

	status, raw := call(t, app, http.MethodPost, "/api/inventory/assignments", "user", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	e := decode[errorBody](t, raw)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "item_id es obligatorio")

	status, raw = call(t, app, http.MethodPost, "/api/inventory/assignments", "user",
		map[string]string{"item_id": "no-existe", "employee_id": "alice"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, raw).Code)

	status, _ = call(t, app, http.MethodPost, "/api/inventory/assignments/no-existe/return", "user", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, raw = call(t, app, http.MethodPost, "/api/inventory", "user",
		map[string]string{"name": "Escalera", "category": "herramienta"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, decode[errorBody](t, raw).Message, "category debe ser uno de")
}

func TestInventoryAPI_ListarAsignacionesActivas(t *testing.T) {
	app, store := newAPI(t)
	require.NoError(t, store.Items().Create(context.Background(), &entity.InventoryItem{
		ID: "laptop-1", Name: "Portátil", Category: entity.ItemCategoryITEquipment,
		Status: entity.ItemStatusAvailable, Condition: entity.ItemConditionGood,
	}))

	for _, body := range []map[string]string{
		{"item_id": "drill-1", "employee_id": "alice"},
		{"item_id": "laptop-1", "employee_id": "bob"},
	} {
		status, raw := call(t, app, http.MethodPost, "/api/inventory/assignments", "user", body)
		require.Equal(t, http.StatusCreated, status, string(raw))
	}

	status, raw := call(t, app, http.MethodGet, "/api/inventory/assignments?active=true&employee_id=alice", "user", nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[[]map[string]any](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "drill-1", list[0]["item_id"])

	status, raw = call(t, app, http.MethodGet, "/api/inventory/assignments", "user", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]any](t, raw), 2)

	status, raw = call(t, app, http.MethodGet, "/api/employees/bob/assignments", "user", nil)
	require.Equal(t, http.StatusOK, status)
	list = decode[[]map[string]any](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "laptop-1", list[0]["item_id"])
}

func TestInventoryAPI_BorrarSoloAdminYConHistorial(t *testing.T) {
	app, _ := newAPI(t)

	status, raw := call(t, app, http.MethodDelete, "/api/inventory/drill-1", "user", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", decode[errorBody](t, raw).Code)

	status, raw = call(t, app, http.MethodPost, "/api/inventory/assignments", "supervisor",
		map[string]string{"item_id": "drill-1", "employee_id": "alice"})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = call(t, app, http.MethodDelete, "/api/inventory/drill-1", "admin", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode[errorBody](t, raw).Code)
}

func TestAPI_SinTokenEs401(t *testing.T) {
	app, _ := newAPI(t)

	status, raw := call(t, app, http.MethodGet, "/api/inventory", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", decode[errorBody](t, raw).Code)
}

func TestNotificationsAPI_LeerTodas(t *testing.T) {
	app, store := newAPI(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, n := range []struct{ id, userID string }{
		{"n-a", testUserID}, {"n-b", testUserID}, {"n-c", "otro-usuario"},
	} {
		require.NoError(t, store.Notifications().Create(ctx, &entity.Notification{
			ID: n.id, UserID: n.userID, Type: entity.NotificationInventoryAssigned,
			Title: "Ítem asignado", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	status, raw := call(t, app, http.MethodGet, "/api/notifications?unread=true", "user", nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[[]map[string]any](t, raw)
	require.Len(t, list, 2)
	assert.Equal(t, "n-b", list[0]["id"], "la más reciente primero")

	status, _ = call(t, app, http.MethodPost, "/api/notifications/n-a/read", "user", nil)
	require.Equal(t, http.StatusOK, status)

	status, raw = call(t, app, http.MethodPost, "/api/notifications/read-all", "user", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"count":1}`, string(raw))

	// La notificación de otro usuario no se puede marcar.
	status, _ = call(t, app, http.MethodPost, "/api/notifications/n-c/read", "user", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAIAPI_SinProveedorEs503(t *testing.T) {
	app, _ := newAPI(t)

	status, raw := call(t, app, http.MethodPost, "/api/ai/projects/p-1/summary", "user", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "UNAVAILABLE", decode[errorBody](t, raw).Code)
}
