package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	clubScoped := g.Group("/clubs/:id/announcements")
	clubScoped.Use(authMiddleware)
	{
		clubScoped.GET("", h.List)
		clubScoped.POST("", h.Create)
	}

	group := g.Group("/announcements")
	group.Use(authMiddleware)
	{
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
