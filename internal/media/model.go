package media

import (
	"net/http"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "media not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "only image uploads are accepted")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrNotOwner     = apperror.New(http.StatusForbidden, "media belongs to another user")
	ErrFileTooLarge = apperror.New(http.StatusBadRequest, "file exceeds the maximum upload size")
)

// Media is an uploaded image (profile picture, pet photo, home gallery
// shot) plus its metadata row. Storage paths never leave the backend.
type Media struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for fetching the image by id.
func URL(id string) string {
	return "/v1/media/" + id
}

// ThumbnailURL returns the public path for the image's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/media/" + id + "/thumbnail"
}
