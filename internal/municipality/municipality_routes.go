package municipality

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
	municipalities := r.Group("/municipios")
	municipalities.Use(middleware.AuthMiddleware())
	{
		municipalities.GET("", handler.GetAll)
		municipalities.GET("/:id", handler.GetById)
		municipalities.GET("/unidade-federativa/:id", handler.GetByFederativeUnit)
		municipalities.POST("", middleware.RBACAuthorize(rbacService, "referencia", "gerenciar"), handler.Create)
		municipalities.PUT("/:id", middleware.RBACAuthorize(rbacService, "referencia", "gerenciar"), handler.Update)
		municipalities.DELETE("/:id", middleware.RBACAuthorize(rbacService, "referencia", "gerenciar"), handler.Delete)
	}
}
