package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

type stubTokenService struct {
	userID uuid.UUID
	err    error
}

func (s stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.TokenClaims{UserID: s.userID}, nil
}

func newAuthRouter(tokens adapter.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID.String())
	})
	return router
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		header         string
		tokens         stubTokenService
		expectedStatus int
		expectedCode   domainerror.AuthErrorCode
	}{
		{"missing header", "", stubTokenService{userID: userID}, http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"wrong scheme", "Basic abc", stubTokenService{userID: userID}, http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"empty bearer", "Bearer ", stubTokenService{userID: userID}, http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"invalid token", "Bearer abc", stubTokenService{err: domainerror.ErrInvalidToken}, http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"expired token", "Bearer abc", stubTokenService{err: fmt.Errorf("parse: %w", domainerror.ErrExpiredToken)}, http.StatusUnauthorized, domainerror.ErrCodeExpiredToken},
		{"valid token", "Bearer abc", stubTokenService{userID: userID}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			newAuthRouter(tt.tokens).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectedStatus == http.StatusOK {
				if rec.Body.String() != userID.String() {
					t.Errorf("expected user id %s in context, got %s", userID, rec.Body.String())
				}
				return
			}

			var body dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body.Code != string(tt.expectedCode) {
				t.Errorf("expected code %s, got %s", tt.expectedCode, body.Code)
			}
		})
	}
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	t.Setenv("ENV", "development")
	gin.SetMode(gin.TestMode)

	current := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiterWithConfig(2, time.Minute)
	limiter.now = func() time.Time { return current }

	router := gin.New()
	router.POST("/limited", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	send := func() int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send(); code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i+1, code)
		}
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once the window is exhausted, got %d", code)
	}

	current = current.Add(time.Minute + time.Second)
	if code := send(); code != http.StatusNoContent {
		t.Errorf("expected a new window to allow the request, got %d", code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	current := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiterWithConfig(1, time.Minute)
	limiter.now = func() time.Time { return current }

	limiter.allow("10.0.0.1")
	limiter.allow("10.0.0.2")

	current = current.Add(2 * time.Minute)
	limiter.Cleanup()

	if len(limiter.entries) != 0 {
		t.Errorf("expected expired entries to be removed, got %d", len(limiter.entries))
	}
}

func TestRateLimiter_SkippedInTestEnvironment(t *testing.T) {
	t.Setenv("ENV", "test")
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiterWithConfig(1, time.Minute)
	router := gin.New()
	router.POST("/limited", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i+1, rec.Code)
		}
	}
}
