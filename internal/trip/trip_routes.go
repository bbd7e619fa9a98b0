package trip

import (
	"go-viagens/internal/middleware"
	"go-viagens/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	trips := r.Group("/viagens")
	trips.Use(middleware.AuthMiddleware())
	{
		trips.POST("", middleware.Idempotency(rdb), handler.Create)
		trips.GET("/:id", handler.GetById)
		trips.GET("/empregado/:id", handler.GetByEmployee)
		trips.PUT("/:id", handler.Update)
		trips.DELETE("/:id", handler.Delete)
		trips.PUT("/:id/aprovar", middleware.RBACAuthorize(rbacService, "viagem", "aprovar"), handler.Approve)
		trips.PUT("/:id/reprovar", middleware.RBACAuthorize(rbacService, "viagem", "reprovar"), handler.Reject)
		trips.GET("/:id/exportar-pdf", handler.ExportVoucher)
	}
}
