package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/reservations")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/:id/cancel", h.Cancel)
		group.POST("/:id/confirm", h.Confirm)
	}
}
