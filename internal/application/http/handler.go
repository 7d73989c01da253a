package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/application"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
	"github.com/pawnecta/petsitting-backend/internal/pkg/response"
)

type Handler struct {
	service application.Service
}

func NewHandler(service application.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Apply(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body ApplyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Apply(c.Request.Context(), uri.ID, auth.GetUserID(c), application.ApplyRequest{
		Message:      body.Message,
		OfferedPrice: body.OfferedPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewApplicationResponse(a))
}

func (h *Handler) ListForBooking(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	apps, err := h.service.ListForBooking(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.GetIsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		items[i] = NewApplicationResponse(a)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) ListMine(c *gin.Context) {
	apps, err := h.service.ListMine(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ApplicationWithBookingResponse, len(apps))
	for i, a := range apps {
		items[i] = NewApplicationWithBookingResponse(a)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Accept(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.Accept(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewApplicationResponse(a))
}

func (h *Handler) Reject(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.Reject(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewApplicationResponse(a))
}
