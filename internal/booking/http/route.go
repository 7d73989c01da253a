package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sitterMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListMine)
		group.GET("/assigned", sitterMiddleware, h.ListAssigned)
		group.GET("/open", sitterMiddleware, h.ListOpen)
		group.GET("/:id", h.Get)
		group.POST("/:id/claim", sitterMiddleware, h.Claim)
		group.POST("/:id/confirm", sitterMiddleware, h.Confirm)
		group.POST("/:id/cancel", h.Cancel)
		group.PATCH("/:id/status", adminMiddleware, h.SetStatus)
	}
}
