package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"axas_backend/internal/models"
	"axas_backend/internal/repositories"
	"axas_backend/internal/services"
	"axas_backend/internal/testutil"
	"axas_backend/pkg/envelope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var middlewareNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(db *gorm.DB, tokens services.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(DBMiddleware(db))
	router.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		envelope.OK(c, gin.H{"id": user.ID})
	})
	return router
}

func newTokenService(now func() time.Time) services.TokenService {
	return services.NewTokenService(repositories.NewTokenRepository(), repositories.NewTokenPairRepository(),
		services.TokenConfig{Length: 64, AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}, now)
}

func TestAuthMiddleware(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "79184167161")

	issued, err := newTokenService(testutil.FixedClock(middlewareNow)).MintPair(db, user.ID, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		now     time.Time
		status  int
		errCode int
	}{
		{name: "no header", header: "", now: middlewareNow, status: http.StatusUnauthorized, errCode: 1},
		{name: "unknown token", header: "Bearer nope", now: middlewareNow, status: http.StatusUnauthorized, errCode: 2},
		{name: "refresh token", header: "Bearer " + issued.Refresh.Value, now: middlewareNow, status: http.StatusUnauthorized, errCode: 2},
		{name: "expired", header: "Bearer " + issued.Access.Value, now: middlewareNow.Add(2 * time.Hour), status: http.StatusUnauthorized, errCode: 3},
		{name: "valid", header: "Bearer " + issued.Access.Value, now: middlewareNow, status: http.StatusOK},
		{name: "without prefix", header: issued.Access.Value, now: middlewareNow, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(db, newTokenService(testutil.FixedClock(tt.now)))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			var body envelope.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.errCode != 0 {
				require.Len(t, body.Errors, 1)
				assert.Equal(t, tt.errCode, body.Errors[0].Code)
				assert.Equal(t, "Authorization", body.Errors[0].Source)
				return
			}
			data, ok := body.Data.(map[string]interface{})
			require.True(t, ok)
			assert.EqualValues(t, user.ID, data["id"])
		})
	}
}

func TestCurrentUser_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentUser(c)
	assert.False(t, ok)

	c.Set("user", (*models.User)(nil))
	_, ok = CurrentUser(c)
	assert.False(t, ok)
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"https://axas.house"}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://axas.house")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://axas.house", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Enable-Notifications")

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://other-site.ru")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware(nil))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "client-id-1", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RecoveryMiddleware())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body envelope.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Message)
	assert.Equal(t, "Internal server error", *body.Message)
}
