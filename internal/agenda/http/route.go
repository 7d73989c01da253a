package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, sitterMiddleware gin.HandlerFunc) {
	group := g.Group("/sitters/me/agenda")

	group.Use(authMiddleware, sitterMiddleware)
	{
		group.GET("", h.Get)
	}
}
