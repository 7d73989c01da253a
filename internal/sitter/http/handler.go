package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
	"github.com/pawnecta/petsitting-backend/internal/pkg/response"
	"github.com/pawnecta/petsitting-backend/internal/sitter"
)

type Handler struct {
	service sitter.Service
}

func NewHandler(service sitter.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	var body UpsertProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.UpsertProfile(c.Request.Context(), auth.GetUserID(c), sitter.UpsertRequest{
		Bio:         body.Bio,
		Services:    body.Services,
		NightlyRate: body.NightlyRate,
		CaresDogs:   body.CaresDogs,
		CaresCats:   body.CaresCats,
		HasYard:     body.HasYard,
		City:        body.City,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProfileResponse(p))
}

func (h *Handler) GetProfile(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	p, err := h.service.Get(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProfileResponse(p))
}

func (h *Handler) GetOwnProfile(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProfileResponse(p))
}

func (h *Handler) Search(c *gin.Context) {
	var query SearchRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := query.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}

	profiles, total, err := h.service.Search(c.Request.Context(), sitter.SearchFilter{
		Service:  query.Service,
		Date:     date,
		City:     query.City,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		items[i] = NewProfileResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, query.Page, query.PageSize, total))
}
