package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/agency-planner/internal/httpx/response"
)

// maxUploadSize caps briefing and asset uploads at 50MB
const maxUploadSize = 50 << 20

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/quicktime": true,
	"application/pdf": true,
}

// MediaUploader defines the interface for storing uploaded assets
type MediaUploader interface {
	Upload(ctx context.Context, in MediaUploadInput) (*MediaUploadOutput, error)
}

// MediaUploadInput represents input for media upload
type MediaUploadInput struct {
	Reader      io.Reader
	ContentType string
	Size        int64
	Filename    string
}

// MediaUploadOutput represents output from media upload
type MediaUploadOutput struct {
	URL  string
	Key  string
	Size int64
}

// MediaHandler handles asset upload HTTP requests
type MediaHandler struct {
	uploader MediaUploader
	logger   *slog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(uploader MediaUploader, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{uploader: uploader, logger: logger}
}

// RegisterRoutes registers media routes
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Post("/media/upload", h.Upload())
}

// UploadResponse represents the response from the upload endpoint
type UploadResponse struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// Upload handles POST /media/upload, expecting a multipart form with a
// single "file" part
func (h *MediaHandler) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			response.BadRequest(w, "file too large or invalid multipart form")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			response.BadRequest(w, "missing file in request")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedMediaTypes[contentType] {
			response.BadRequest(w, fmt.Sprintf("unsupported media type: %s", contentType))
			return
		}

		out, err := h.uploader.Upload(r.Context(), MediaUploadInput{
			Reader:      file,
			ContentType: contentType,
			Size:        header.Size,
			Filename:    header.Filename,
		})
		if err != nil {
			h.logger.Error("media upload failed",
				slog.String("filename", header.Filename),
				slog.Any("error", err))
			response.InternalError(w, "failed to upload file")
			return
		}

		response.Created(w, UploadResponse{URL: out.URL, Key: out.Key, Size: out.Size})
	}
}
