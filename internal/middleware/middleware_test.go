package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitcoach/internal/models"
	"fitcoach/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("/", AuthMiddleware())
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"role":    c.GetString("role"),
		})
	})
	authed.GET("/coach-only", RequireRole(models.RoleCoach), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := protectedRouter()

	user := &models.User{Email: "coach@example.com", Role: models.RoleCoach}
	user.ID = 7
	token, err := utils.GenerateToken(user)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"malformed header", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, "/me", tt.header)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "signing-secret")
	user := &models.User{Email: "coach@example.com", Role: models.RoleCoach}
	user.ID = 7
	token, err := utils.GenerateToken(user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "different-secret")
	router := protectedRouter()

	w := get(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router := protectedRouter()

	coach := &models.User{Email: "coach@example.com", Role: models.RoleCoach}
	coach.ID = 1
	coachToken, err := utils.GenerateToken(coach)
	require.NoError(t, err)

	trainee := &models.User{Email: "trainee@example.com", Role: models.RoleTrainee}
	trainee.ID = 2
	traineeToken, err := utils.GenerateToken(trainee)
	require.NoError(t, err)

	w := get(router, "/coach-only", "Bearer "+coachToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(router, "/coach-only", "Bearer "+traineeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
