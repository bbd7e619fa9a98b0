package federativeunit

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
	units := r.Group("/unidades-federativas")
	units.Use(middleware.AuthMiddleware())
	{
		units.GET("", handler.GetAll)
		units.GET("/:id", handler.GetById)
		units.POST("", middleware.RBACAuthorize(rbacService, "referencia", "gerenciar"), handler.Create)
		units.PUT("/:id", middleware.RBACAuthorize(rbacService, "referencia", "gerenciar"), handler.Update)
		units.DELETE("/:id", middleware.RBACAuthorize(rbacService, "referencia", "gerenciar"), handler.Delete)
	}
}
