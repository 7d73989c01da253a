package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/conversations")

	group.Use(authMiddleware)
	{
		group.POST("", h.Start)
		group.GET("", h.ListMine)
		group.GET("/:id/messages", h.Messages)
		group.POST("/:id/messages", h.Send)
		group.POST("/:id/read", h.MarkRead)
	}
}
