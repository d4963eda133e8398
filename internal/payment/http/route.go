package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	clubs := g.Group("/clubs")
	clubs.Use(authMiddleware)
	{
		clubs.GET("/:id/payment-keys", h.Keys)
	}
}
