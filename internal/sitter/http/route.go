package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sitterMiddleware gin.HandlerFunc) {
	group := g.Group("/sitters")
	{
		group.GET("/search", h.Search)
		group.PUT("/me/profile", authMiddleware, sitterMiddleware, h.UpsertProfile)
		group.GET("/me/profile", authMiddleware, sitterMiddleware, h.GetOwnProfile)
		group.GET("/:id/profile", h.GetProfile)
	}
}
