package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/edustream-backend/internal/domain"
	"github.com/heartmarshall/edustream-backend/internal/service/catalog"
)

// multipartMemory is how much of an upload is buffered in memory before
// spilling to temp files.
const multipartMemory = 32 << 20

type catalogService interface {
	CreateVideo(ctx context.Context, input catalog.CreateVideoInput) (domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
	GetVideo(ctx context.Context, id string) (domain.Video, error)
	UpdateVideo(ctx context.Context, input catalog.UpdateVideoInput) (domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}

// VideoHandler serves the catalog endpoints.
type VideoHandler struct {
	svc            catalogService
	log            *slog.Logger
	maxUploadBytes int64
}

// NewVideoHandler creates a VideoHandler. Uploads larger than maxUploadBytes
// are rejected with 413.
func NewVideoHandler(svc catalogService, logger *slog.Logger, maxUploadBytes int64) *VideoHandler {
	return &VideoHandler{
		svc:            svc,
		log:            logger.With("handler", "video"),
		maxUploadBytes: maxUploadBytes,
	}
}

type videoResponse struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

type updateVideoRequest struct {
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// List handles GET /videos.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.ListVideos(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Could not load videos")
		return
	}

	out := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, toVideoResponse(v))
	}
	writeOK(w, http.StatusOK, map[string]any{"videos": out})
}

// Get handles GET /videos/{id}.
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err, "Could not load video")
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"video": toVideoResponse(v)})
}

// Create handles POST /videos (multipart: subject, topic, subtopic, title, file).
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	blob, err := readFormFile(r, "file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	v, err := h.svc.CreateVideo(r.Context(), catalog.CreateVideoInput{
		Subject:  r.FormValue("subject"),
		Topic:    r.FormValue("topic"),
		Subtopic: r.FormValue("subtopic"),
		Title:    r.FormValue("title"),
		Blob:     blob,
	})
	if err != nil {
		handleError(h.log, w, r, err, "Could not create video")
		return
	}
	writeOK(w, http.StatusCreated, map[string]any{"video": toVideoResponse(v)})
}

// Update handles PUT /videos/{id}. The body replaces every mutable field.
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.svc.UpdateVideo(r.Context(), catalog.UpdateVideoInput{
		ID:       chi.URLParam(r, "id"),
		Subject:  req.Subject,
		Topic:    req.Topic,
		Subtopic: req.Subtopic,
		Title:    req.Title,
		URL:      req.URL,
	})
	if err != nil {
		handleError(h.log, w, r, err, "Could not update video")
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"video": toVideoResponse(v)})
}

// Delete handles DELETE /videos/{id}. Deleting an unknown id succeeds.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVideo(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(h.log, w, r, err, "Could not delete video")
		return
	}
	writeOK(w, http.StatusOK, nil)
}

// readFormFile returns the named file's bytes, or nil if the field is absent.
func readFormFile(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func toVideoResponse(v domain.Video) videoResponse {
	return videoResponse{
		ID:       v.ID,
		Subject:  v.Subject,
		Topic:    v.Topic,
		Subtopic: v.Subtopic,
		Title:    v.Title,
		URL:      v.URL,
	}
}
