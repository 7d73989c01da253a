package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/address"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
)

type Handler struct {
	service address.Service
}

func NewHandler(service address.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateAddressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := address.CreateRequest{
		Street:    body.Street,
		Number:    body.Number,
		Unit:      body.Unit,
		City:      body.City,
		Region:    body.Region,
		Notes:     body.Notes,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}

	a, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrStreetRequired), errors.Is(err, address.ErrCityRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create address"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewAddressResponse(a))
}

func (h *Handler) List(c *gin.Context) {
	addresses, err := h.service.ListByOwner(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list addresses"})
		return
	}

	items := make([]AddressResponse, len(addresses))
	for i, a := range addresses {
		items[i] = NewAddressResponse(a)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	a, err := h.service.GetOwned(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, address.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get address"})
		return
	}

	c.JSON(http.StatusOK, NewAddressResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateAddressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := address.UpdateRequest{
		Street:    body.Street,
		Number:    body.Number,
		Unit:      body.Unit,
		City:      body.City,
		Region:    body.Region,
		Notes:     body.Notes,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}

	a, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		case errors.Is(err, address.ErrStreetRequired), errors.Is(err, address.ErrCityRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update address"})
		}
		return
	}

	c.JSON(http.StatusOK, NewAddressResponse(a))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		if errors.Is(err, address.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete address"})
		return
	}

	c.Status(http.StatusNoContent)
}
