package role

import (
	"go-viagens/internal/middleware"
	"go-viagens/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	roles := r.Group("/cargos")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", handler.GetAll)
		roles.GET("/:id", handler.GetById)
		roles.POST("", middleware.RBACAuthorize(rbacService, "cargo", "gerenciar"), handler.Create)
		roles.PUT("/:id", middleware.RBACAuthorize(rbacService, "cargo", "gerenciar"), handler.Update)
		roles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "cargo", "gerenciar"), handler.Delete)
	}
}
