package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mkaraca/campushub/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func requireRoleRouter(t *testing.T, user *models.User, roles ...models.RoleType) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := &AuthMiddleware{}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(ContextUserID, user.ID)
			c.Set(ContextUser, user)
		}
	})
	router.PUT("/departments", m.RequireRole(roles...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin, IsActive: true}
	router := requireRoleRouter(t, admin, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/departments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	student := &models.User{ID: 2, Role: models.RoleStudent, IsActive: true}
	router := requireRoleRouter(t, student, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/departments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleWithoutAuthenticatedUser(t *testing.T) {
	router := requireRoleRouter(t, nil, models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/departments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
