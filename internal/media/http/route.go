package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/media")

	group.Use(authMiddleware)
	{
		group.POST("", h.Upload)
		group.GET("/:id", h.Serve)
		group.GET("/:id/thumbnail", h.ServeThumbnail)
		group.DELETE("/:id", h.Delete)
	}
}
