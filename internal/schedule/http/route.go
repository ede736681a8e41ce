package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers fixed-schedule routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/fixed-schedules")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.DELETE("/:id", h.Delete)
	}
}
