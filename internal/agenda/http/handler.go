package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/agenda"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/pkg/response"
)

type Handler struct {
	service agenda.Service
}

func NewHandler(service agenda.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	items, err := h.service.ForSitter(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]AgendaItemResponse, len(items))
	for i, item := range items {
		out[i] = NewAgendaItemResponse(item)
	}

	c.JSON(http.StatusOK, gin.H{"items": out})
}
