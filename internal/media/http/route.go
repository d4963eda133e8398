package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	clubScoped := g.Group("/clubs/:id/media")
	clubScoped.Use(authMiddleware)
	{
		clubScoped.GET("", h.List)
		clubScoped.POST("", h.Upload)
	}

	group := g.Group("/media")
	group.Use(authMiddleware)
	{
		group.GET("/:id", h.Serve)
		group.GET("/:id/thumbnail", h.ServeThumbnail)
		group.DELETE("/:id", h.Delete)
	}
}
