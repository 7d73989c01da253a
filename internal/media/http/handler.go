package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawnecta/petsitting-backend/internal/auth"
	"github.com/pawnecta/petsitting-backend/internal/media"
	"github.com/pawnecta/petsitting-backend/internal/pkg/request"
	"github.com/pawnecta/petsitting-backend/internal/pkg/response"
)

type Handler struct {
	service media.Service
}

func NewHandler(service media.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	m, err := h.service.Upload(c.Request.Context(), header, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := UploadResponse{
		ID:  m.ID,
		URL: media.URL(m.ID),
	}
	if m.ThumbnailPath != nil {
		t := media.ThumbnailURL(m.ID)
		resp.ThumbnailURL = &t
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) serve(c *gin.Context, download func(id string) (io.ReadCloser, *media.Media, error)) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	stream, m, err := download(uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", m.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+m.Filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing useful to send.
		return
	}
}

func (h *Handler) Serve(c *gin.Context) {
	h.serve(c, func(id string) (io.ReadCloser, *media.Media, error) {
		return h.service.Download(c.Request.Context(), id)
	})
}

func (h *Handler) ServeThumbnail(c *gin.Context) {
	h.serve(c, func(id string) (io.ReadCloser, *media.Media, error) {
		return h.service.DownloadThumbnail(c.Request.Context(), id)
	})
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
