package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/clubs")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		group.GET("/:id/members", h.ListMembers)
		group.POST("/:id/members", h.AddMember)
		group.PATCH("/:id/members/:userID", h.UpdateMember)
		group.DELETE("/:id/members/:userID", h.RemoveMember)
	}
}
