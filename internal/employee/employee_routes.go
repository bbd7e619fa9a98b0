package employee

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
	employees := r.Group("/empregados")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetById)
		employees.POST("", middleware.RBACAuthorize(rbacService, "empregado", "gerenciar"), handler.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "empregado", "gerenciar"), handler.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "empregado", "gerenciar"), handler.Delete)
	}
}
