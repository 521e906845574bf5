package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avelinom/vidgate/internal/api/response"
	"github.com/avelinom/vidgate/internal/service"
)

// VideoHandler handles catalog endpoints
type VideoHandler struct {
	videoService *service.VideoService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Dashboard lists the redacted active videos
func (h *VideoHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	items, err := h.videoService.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, items)
}

// GetVideo returns a single video with its derived embed URL
func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	detail, err := h.videoService.GetVideo(r.Context(), chi.URLParam(r, "videoID"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, detail)
}
