package dependency

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goal-planner/backend/config"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

const testSecret = "injector-test-secret"

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type apiHarness struct {
	t      *testing.T
	engine *gin.Engine
	redis  *miniredis.Miniredis
	token  string
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	t.Setenv("ENV", "test")

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&model.GoalModel{}, &model.AllocationModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "test"},
		Redis:     config.RedisConfig{SnapshotTTL: time.Hour},
		JWT:       config.JWTConfig{Secret: testSecret},
		Planner:   config.PlannerConfig{InflationRate: 0.05},
		RateLimit: config.RateLimitConfig{MaxRequests: 100, Window: time.Minute},
	}

	injector, err := NewInjector(cfg, Resources{
		DB:               db,
		Redis:            client,
		Clock:            fixedClock{now: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)},
		DBHealthCheck:    func() bool { return true },
		RedisHealthCheck: func() bool { return client.Ping(context.Background()).Err() == nil },
	})
	if err != nil {
		t.Fatalf("failed to build injector: %v", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    uuid.NewString(),
		"token_type": "access",
		"exp":        jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	return &apiHarness{
		t:      t,
		engine: injector.Router.Setup(cfg.Server.Environment),
		redis:  server,
		token:  signed,
	}
}

func (h *apiHarness) do(method, path string, body any) (int, map[string]any) {
	h.t.Helper()

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			h.t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec.Code, decoded
}

func TestAPI_GoalLifecycle(t *testing.T) {
	h := newAPIHarness(t)

	status, created := h.do(http.MethodPost, "/api/v1/goals", map[string]any{
		"name":          "Retirement",
		"target_amount": 1000000,
		"kind":          "ONE_TIME",
		"start_date":    "2025-01-01",
		"target_date":   "2035-01-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", status, created)
	}
	if created["horizon"] != "LONG" {
		t.Errorf("expected LONG horizon, got %v", created["horizon"])
	}
	if created["inflation_adjusted_target"] != 1628894.63 {
		t.Errorf("expected inflation adjusted target 1628894.63, got %v", created["inflation_adjusted_target"])
	}
	if created["elapsed_months"] != float64(21) {
		t.Errorf("expected 21 elapsed months, got %v", created["elapsed_months"])
	}

	id := created["id"].(string)

	status, updated := h.do(http.MethodPut, "/api/v1/goals/"+id, map[string]any{
		"name":          "Annual insurance",
		"target_amount": 24000,
		"kind":          "RECURRING",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, updated)
	}
	if updated["id"] != id || updated["horizon"] != "SHORT" || updated["term_months"] != float64(12) {
		t.Errorf("expected a recurring SHORT goal with the same id, got %v", updated)
	}

	if status, _ := h.do(http.MethodDelete, "/api/v1/goals/"+id, nil); status != http.StatusNoContent {
		t.Errorf("expected 204, got %d", status)
	}
	if status, _ := h.do(http.MethodGet, "/api/v1/goals/"+id, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", status)
	}
}

func TestAPI_GoalValidation(t *testing.T) {
	h := newAPIHarness(t)

	tests := []struct {
		name         string
		body         map[string]any
		expectedCode string
	}{
		{"missing amount", map[string]any{"name": "Car", "kind": "RECURRING"}, "GOL-010008"},
		{"negative amount", map[string]any{"name": "Car", "target_amount": -1, "kind": "RECURRING"}, "GOL-010003"},
		{"unknown kind", map[string]any{"name": "Car", "target_amount": 10, "kind": "WEEKLY"}, "GOL-010007"},
		{"bad date format", map[string]any{"name": "Car", "target_amount": 10, "kind": "ONE_TIME", "start_date": "01/01/2025", "target_date": "2030-01-01"}, "GOL-010009"},
		{"target before start", map[string]any{"name": "Car", "target_amount": 10, "kind": "ONE_TIME", "start_date": "2030-01-01", "target_date": "2025-01-01"}, "GOL-010009"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := h.do(http.MethodPost, "/api/v1/goals", tt.body)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %v", status, body)
			}
			if body["code"] != tt.expectedCode {
				t.Errorf("expected code %s, got %v", tt.expectedCode, body["code"])
			}
		})
	}
}

func TestAPI_SuggestionsFromPreset(t *testing.T) {
	h := newAPIHarness(t)

	if status, body := h.do(http.MethodPost, "/api/v1/allocations/presets/Balanced/apply", nil); status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	h.do(http.MethodPost, "/api/v1/goals", map[string]any{
		"name":          "Retirement",
		"target_amount": 1000000,
		"kind":          "ONE_TIME",
		"start_date":    "2025-01-01",
		"target_date":   "2035-01-01",
	})

	status, body := h.do(http.MethodGet, "/api/v1/planner/suggestions", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	if body["reference_date"] != "2026-10-18" {
		t.Errorf("expected reference date to default to today, got %v", body["reference_date"])
	}
	goals := body["goals"].([]any)
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
	first := goals[0].(map[string]any)
	if first["active"] != true || len(first["suggestions"].([]any)) != 3 {
		t.Errorf("expected 3 suggestions for an active goal, got %v", first)
	}

	status, body = h.do(http.MethodGet, "/api/v1/planner/suggestions?reference_date=2024-12-31", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	first = body["goals"].([]any)[0].(map[string]any)
	if first["active"] != false || len(first["suggestions"].([]any)) != 0 {
		t.Errorf("expected no suggestions before the start date, got %v", first)
	}

	status, body = h.do(http.MethodGet, "/api/v1/planner/suggestions?reference_date=tomorrow", nil)
	if status != http.StatusBadRequest || body["code"] != "PLN-010001" {
		t.Errorf("expected 400 PLN-010001, got %d %v", status, body)
	}

	status, body = h.do(http.MethodGet, "/api/v1/planner/yearly-returns", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	instruments := body["goals"].([]any)[0].(map[string]any)["instruments"].([]any)
	if len(instruments) != 3 {
		t.Errorf("expected 3 instruments, got %d", len(instruments))
	}
}

func TestAPI_SnapshotRoundTrip(t *testing.T) {
	h := newAPIHarness(t)

	h.do(http.MethodPut, "/api/v1/allocations/long", map[string]any{
		"choices": []map[string]any{
			{"name": "Index fund", "allocation_percentage": 100, "expected_annual_return_percentage": 12},
		},
	})
	_, created := h.do(http.MethodPost, "/api/v1/goals", map[string]any{
		"name":          "Vacation",
		"target_amount": 80000,
		"kind":          "RECURRING",
	})

	status, saved := h.do(http.MethodPost, "/api/v1/planner/snapshot", nil)
	if status != http.StatusCreated || saved["goal_count"] != float64(1) {
		t.Fatalf("expected 201 with 1 goal, got %d %v", status, saved)
	}

	h.do(http.MethodDelete, "/api/v1/goals/"+created["id"].(string), nil)

	status, restored := h.do(http.MethodPost, "/api/v1/planner/snapshot/restore", nil)
	if status != http.StatusOK || restored["found"] != true {
		t.Fatalf("expected a restored snapshot, got %d %v", status, restored)
	}

	_, list := h.do(http.MethodGet, "/api/v1/goals", nil)
	goals := list["goals"].([]any)
	if len(goals) != 1 || goals[0].(map[string]any)["id"] != created["id"] {
		t.Errorf("expected the deleted goal to come back with its id, got %v", goals)
	}

	h.redis.Close()
	status, body := h.do(http.MethodPost, "/api/v1/planner/snapshot", nil)
	if status != http.StatusServiceUnavailable || body["code"] != "PLN-020001" {
		t.Errorf("expected 503 PLN-020001, got %d %v", status, body)
	}
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	h := newAPIHarness(t)
	h.token = "not-a-jwt"

	status, body := h.do(http.MethodGet, "/api/v1/goals", nil)
	if status != http.StatusUnauthorized || body["code"] != "AUTH-030001" {
		t.Errorf("expected 401 AUTH-030001, got %d %v", status, body)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected health to be public, got %d", rec.Code)
	}
}
