package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers theory- and lab-group routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	theory := g.Group("/theory-groups")
	{
		theory.POST("", h.CreateTheory)
		theory.GET("/:id", h.GetTheory)
	}

	lab := g.Group("/lab-groups")
	{
		lab.POST("", h.CreateLab)
		lab.GET("", h.ListLabs)
		lab.GET("/:id", h.GetLab)
	}
}
