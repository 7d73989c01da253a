package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	sitters := g.Group("/sitters")
	{
		sitters.GET("/:id/reviews", h.ListForSitter)
		sitters.POST("/:id/reviews", authMiddleware, h.Create)
	}

	reviews := g.Group("/reviews")
	reviews.Use(authMiddleware, adminMiddleware)
	{
		reviews.GET("/pending", h.ListPending)
		reviews.POST("/:id/approve", h.Approve)
		reviews.POST("/:id/reject", h.Reject)
	}
}
