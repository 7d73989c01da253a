package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, sitterMiddleware gin.HandlerFunc) {
	group := g.Group("/sitters/me/availability")

	group.Use(authMiddleware, sitterMiddleware)
	{
		group.GET("", h.Get)
		group.PUT("", h.Put)
		group.POST("/bulk", h.Bulk)
	}
}
