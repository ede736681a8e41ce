package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers enrollment routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/enrollments")
	{
		group.GET("", h.ListByStudent)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/:id/lab-group", h.AssignLabGroup)
		group.POST("/:id/lab-group/withdraw", h.WithdrawFromLabGroup)
		group.POST("/lab-groups/bulk", h.AssignLabGroupsBulk)
	}
}
