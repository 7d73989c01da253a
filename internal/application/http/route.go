package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sitterMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.POST("/:id/applications", sitterMiddleware, h.Apply)
		bookings.GET("/:id/applications", h.ListForBooking)
	}

	apps := g.Group("/applications")
	apps.Use(authMiddleware)
	{
		apps.GET("/mine", sitterMiddleware, h.ListMine)
		apps.POST("/:id/accept", h.Accept)
		apps.POST("/:id/reject", h.Reject)
	}
}
