package costtype

import (
	"go-viagens/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	costTypes := r.Group("/tipos-custo")
	costTypes.Use(middleware.AuthMiddleware())
	{
		costTypes.GET("", handler.GetAll)
		costTypes.GET("/:id", handler.GetById)
	}
}
