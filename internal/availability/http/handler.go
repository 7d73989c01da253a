package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/availability"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	sitterID := auth.GetUserID(c)

	dates, err := h.service.Load(c.Request.Context(), sitterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(dates))
}

func (h *Handler) Put(c *gin.Context) {
	var body SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	dates, err := body.ParseDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sitterID := auth.GetUserID(c)

	if err := h.service.Save(c.Request.Context(), sitterID, dates); err != nil {
		switch {
		case errors.Is(err, availability.ErrTooManyDates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save availability"})
		}
		return
	}

	// Echo back the persisted selection so the client can resync.
	saved, err := h.service.Load(c.Request.Context(), sitterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload availability"})
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(saved))
}

func (h *Handler) Bulk(c *gin.Context) {
	var body BulkSelectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sitterID := auth.GetUserID(c)

	updated, err := h.service.Bulk(c.Request.Context(), sitterID, body.Apply)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(updated))
}
