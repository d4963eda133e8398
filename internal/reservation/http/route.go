package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	reservations := g.Group("/reservations")
	reservations.Use(authMiddleware)
	{
		reservations.POST("", h.Create)
		reservations.GET("/:id", h.Get)
		reservations.POST("/:id/cancel", h.Cancel)
	}

	courts := g.Group("/courts")
	courts.Use(authMiddleware)
	{
		courts.GET("/:id/slots", h.CourtDay)
	}

	clubs := g.Group("/clubs")
	clubs.Use(authMiddleware)
	{
		clubs.GET("/:id/reservations", h.ListMine)
		clubs.GET("/:id/availability", h.ClubDay)
		clubs.GET("/:id/reports/monthly", h.MonthlyReport)
	}
}
