package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestRouter(logger *slog.Logger, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(logger, nil))
	r.Use(handlers...)
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := GetMemberIDFromContext(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"memberId": ""})
			return
		}
		GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.JSON(http.StatusOK, gin.H{"memberId": id, "role": GetRoleFromContext(c)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("2", "Treasurer", testSecret, time.Hour, "test")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("2", "Treasurer", testSecret, -time.Hour, "test")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("2", "Treasurer", "other", time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, `"memberId":"2"`},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong signature", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
	}

	router := newTestRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), AuthMiddleware(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestLoggerIsEnrichedWithMember(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	token, err := utils.GenerateJWT("1", "Admin", testSecret, time.Hour, "test")
	require.NoError(t, err)

	router := newTestRouter(logger, AuthMiddleware(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"member_id":"1"`)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), "Request completed")
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(req.Context()))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)
	router := newTestRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), RateLimit(lim))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestEventName(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/v1/proposals/:id/votes", "post_proposals_votes"},
		{http.MethodPut, "/api/v1/withdrawals/:id/status", "put_withdrawals_status"},
		{http.MethodPost, "/auth/login", "post_auth_login"},
		{http.MethodGet, "", ""},
		{http.MethodGet, "/api/v1", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EventName(tt.method, tt.path), tt.path)
	}
}
