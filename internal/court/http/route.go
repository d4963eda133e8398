package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	clubScoped := g.Group("/clubs/:id/courts")
	clubScoped.Use(authMiddleware)
	{
		clubScoped.GET("", h.List)
		clubScoped.POST("", h.Create)
	}

	courts := g.Group("/courts")
	courts.Use(authMiddleware)
	{
		courts.GET("/:id", h.Get)
		courts.PATCH("/:id", h.Update)
		courts.DELETE("/:id", h.Delete)
	}
}
