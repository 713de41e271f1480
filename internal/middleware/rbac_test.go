package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ajs-hub/placement-api/internal/models"
)

func rbacRouter(claims *models.JWTClaims, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(ContextUserKey, claims)
		}
		c.Next()
	})
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/students/:id", RBAC(allowed...), ok)
	router.GET("/students", RBAC(allowed...), ok)
	return router
}

func serve(router *gin.Engine, path string) int {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code
}

func TestRBACAllowsListedRoles(t *testing.T) {
	admin := &models.JWTClaims{UserID: "1", Role: models.RoleAdmin}
	router := rbacRouter(admin, string(models.RoleAdmin), string(models.RoleDepartment))

	assert.Equal(t, http.StatusOK, serve(router, "/students"))
	assert.Equal(t, http.StatusOK, serve(router, "/students/7"))
}

func TestRBACWithoutClaims(t *testing.T) {
	router := rbacRouter(nil, string(models.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/students"))
}

func TestRBACSelfMatchesStudentRecord(t *testing.T) {
	student := &models.JWTClaims{UserID: "4", Role: models.RoleStudent, StudentID: "1"}
	router := rbacRouter(student, string(models.RoleAdmin), Self)

	assert.Equal(t, http.StatusOK, serve(router, "/students/1"))
	assert.Equal(t, http.StatusForbidden, serve(router, "/students/2"))
	assert.Equal(t, http.StatusForbidden, serve(router, "/students/4"))
	assert.Equal(t, http.StatusForbidden, serve(router, "/students"))
}

func TestRBACSelfNeedsLinkedStudent(t *testing.T) {
	department := &models.JWTClaims{UserID: "2", Role: models.RoleDepartment}
	router := rbacRouter(department, string(models.RoleAdmin), Self)

	assert.Equal(t, http.StatusForbidden, serve(router, "/students/2"))
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserKey, &models.JWTClaims{Role: models.RoleDepartment})
		c.Next()
	})
	router.GET("/admin", RequireRoles(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/staff", RequireRoles(models.RoleAdmin, models.RoleDepartment), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusForbidden, serve(router, "/admin"))
	assert.Equal(t, http.StatusOK, serve(router, "/staff"))
}
