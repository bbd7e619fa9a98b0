package tripstatus

import (
	"go-viagens/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	statuses := r.Group("/status-viagem")
	statuses.Use(middleware.AuthMiddleware())
	{
		statuses.GET("", handler.GetAll)
		statuses.GET("/:id", handler.GetById)
	}
}
