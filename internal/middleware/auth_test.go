package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storynest_backend/internal/config"
	"storynest_backend/internal/model"
	"storynest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-middleware-tests",
			ExpireTime: time.Hour,
		},
	}
}

func tokenFor(t *testing.T, cfg *config.Config, id uint, role model.UserRole) string {
	t.Helper()
	user := &model.User{Role: role}
	user.ID = id
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func newProtectedRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/api")
	group.Use(AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router
}

func do(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := newProtectedRouter(testConfig())
	w := do(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newProtectedRouter(testConfig())

	w := do(router, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := newProtectedRouter(testConfig())
	w := do(router, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	cfg := testConfig()
	router := newProtectedRouter(cfg)

	user := &model.User{Role: model.Learner}
	user.ID = 1
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, -time.Minute)
	require.NoError(t, err)

	w := do(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testConfig()
	router := newProtectedRouter(cfg)

	w := do(router, "Bearer "+tokenFor(t, cfg, 42, model.Learner))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRoleMiddlewareForbidsOtherRoles(t *testing.T) {
	cfg := testConfig()
	router := newProtectedRouter(cfg, model.Administrator)

	w := do(router, "Bearer "+tokenFor(t, cfg, 1, model.Learner))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(router, "Bearer "+tokenFor(t, cfg, 2, model.Guardian))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddlewareAllowsListedRole(t *testing.T) {
	cfg := testConfig()
	router := newProtectedRouter(cfg, model.Staff)

	w := do(router, "Bearer "+tokenFor(t, cfg, 1, model.Staff))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddlewareAdminBypass(t *testing.T) {
	cfg := testConfig()
	router := newProtectedRouter(cfg, model.Staff)

	w := do(router, "Bearer "+tokenFor(t, cfg, 1, model.Administrator))
	assert.Equal(t, http.StatusOK, w.Code)
}
