package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/pet"
	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
)

type Handler struct {
	service pet.Service
}

func NewHandler(service pet.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := pet.CreateRequest{
		Name:        body.Name,
		Species:     pet.Species(body.Species),
		Breed:       body.Breed,
		HealthNotes: body.HealthNotes,
		PhotoID:     body.PhotoID,
	}

	p, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, pet.ErrNameRequired), errors.Is(err, pet.ErrInvalidSpecies):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create pet"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewPetResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	pets, err := h.service.ListByOwner(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pets"})
		return
	}

	items := make([]PetResponse, len(pets))
	for i, p := range pets {
		items[i] = NewPetResponse(p)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	p, err := h.service.GetOwned(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get pet"})
		return
	}

	c.JSON(http.StatusOK, NewPetResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdatePetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	var species *pet.Species
	if body.Species != nil {
		sp := pet.Species(*body.Species)
		species = &sp
	}

	req := pet.UpdateRequest{
		Name:        body.Name,
		Species:     species,
		Breed:       body.Breed,
		HealthNotes: body.HealthNotes,
		PhotoID:     body.PhotoID,
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, pet.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
		case errors.Is(err, pet.ErrNameRequired), errors.Is(err, pet.ErrInvalidSpecies):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update pet"})
		}
		return
	}

	c.JSON(http.StatusOK, NewPetResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete pet"})
		return
	}

	c.Status(http.StatusNoContent)
}
