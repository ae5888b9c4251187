package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barpos/comanda_backend/internal/middleware"
	"github.com/barpos/comanda_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := middleware.GetOperatorIDFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"operator": id})
	})

	token := func(subject string, ttl time.Duration) string {
		tok, err := utils.GenerateJWT(subject, testSecret, ttl, "test")
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer"},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "expired", header: "Bearer " + token("3", -time.Minute), wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "non numeric subject", header: "Bearer " + token("maria", time.Hour), wantStatus: http.StatusUnauthorized, wantBody: "Invalid token claims"},
		{name: "valid", header: "Bearer " + token("3", time.Hour), wantStatus: http.StatusOK, wantBody: `{"operator":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tok, err := utils.GenerateJWT("3", "another-secret", time.Hour, "test")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := newRouter(middleware.RateLimit(lim))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := newRouter(middleware.StructuredLoggingMiddleware(logger))

	var fromCtx, fromGin *slog.Logger
	r.GET("/", func(c *gin.Context) {
		fromCtx = middleware.GetLoggerFromCtx(c.Request.Context())
		fromGin = middleware.GetLoggerFromContext(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	require.NotNil(t, fromCtx)
	assert.Same(t, fromCtx, fromGin)
	assert.NotSame(t, slog.Default(), fromCtx)
}

func TestCORS(t *testing.T) {
	r := newRouter(middleware.CORS([]string{"http://till.local"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://till.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://till.local", w.Header().Get("Access-Control-Allow-Origin"))
}
