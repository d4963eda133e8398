package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/clubs/:id")

	group.Use(authMiddleware)
	{
		group.GET("/wallet", h.GetMine)
		group.POST("/wallets/:userID/adjust", h.Adjust)
		group.PATCH("/wallets/:userID/policy", h.UpdatePolicy)
	}
}
