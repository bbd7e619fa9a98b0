package middleware

import (
	"go-viagens/internal/rbac"
	"go-viagens/internal/shared/apperror"
	"go-viagens/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize gates a route on a capability. The role is always re-read from
// storage by the rbac service, never trusted from the token.
func RBACAuthorize(rbacService rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetInt64(CtxEmployeeID)

		if err := rbacService.Enforce(c.Request.Context(), employeeID, resource, action); err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
