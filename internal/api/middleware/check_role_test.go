package middleware

import (
	"Wayfarer/internal/pkg/consts"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 复刻后台路由的嵌套：admin 组内再套 superAdmin 组
func newRoleGatedRouter(roles []string, invoked *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authGroup := r.Group("/admin")
	authGroup.Use(func(c *gin.Context) {
		c.Set("roles", roles)
		c.Next()
	}, CheckRoles(consts.RoleAdmin))

	superGroup := authGroup.Group("")
	superGroup.Use(CheckRoles(consts.RoleSuperAdmin))
	superGroup.POST("/approvals/delete", func(c *gin.Context) {
		*invoked = true
		c.JSON(http.StatusOK, gin.H{"code": 200})
	})
	return r
}

func TestCheckRoles_PlainAdminCannotDeleteApprovalRecords(t *testing.T) {
	var invoked bool
	r := newRoleGatedRouter([]string{consts.RoleAdmin}, &invoked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/approvals/delete", strings.NewReader(`{"ids":[1,2]}`))
	r.ServeHTTP(w, req)

	require.False(t, invoked)
	assert.Contains(t, w.Body.String(), `"code":403`)
}

func TestCheckRoles_SuperAdminPasses(t *testing.T) {
	var invoked bool
	r := newRoleGatedRouter([]string{consts.RoleAdmin, consts.RoleSuperAdmin}, &invoked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/approvals/delete", strings.NewReader(`{"ids":[1]}`))
	r.ServeHTTP(w, req)

	assert.True(t, invoked)
}

func TestCheckRoles_NoRoles(t *testing.T) {
	var invoked bool
	r := newRoleGatedRouter(nil, &invoked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/approvals/delete", nil)
	r.ServeHTTP(w, req)

	require.False(t, invoked)
	assert.Contains(t, w.Body.String(), `"code":403`)
}
