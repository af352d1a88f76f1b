package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/edustream-backend/internal/domain"
	"github.com/heartmarshall/edustream-backend/internal/service/tracking"
	"github.com/heartmarshall/edustream-backend/pkg/ctxutil"
)

type trackingService interface {
	RecordDownload(ctx context.Context, input tracking.RecordDownloadInput) (domain.DownloadEvent, error)
	ListDownloadsForUser(ctx context.Context, uid string) ([]domain.DownloadEvent, error)
}

// DownloadHandler serves the download log endpoints.
type DownloadHandler struct {
	svc trackingService
	log *slog.Logger
}

// NewDownloadHandler creates a DownloadHandler.
func NewDownloadHandler(svc trackingService, logger *slog.Logger) *DownloadHandler {
	return &DownloadHandler{svc: svc, log: logger.With("handler", "download")}
}

type recordDownloadRequest struct {
	UID       string `json:"uid"`
	LectureID string `json:"lectureId"`
	Title     string `json:"title"`
	Src       string `json:"src"`
}

type downloadResponse struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	LectureID string    `json:"lectureId"`
	Title     string    `json:"title"`
	Src       string    `json:"src"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record handles POST /download.
func (h *DownloadHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordDownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := h.svc.RecordDownload(r.Context(), tracking.RecordDownloadInput{
		UID:       callerUID(r, req.UID),
		LectureID: req.LectureID,
		Title:     req.Title,
		Src:       req.Src,
	})
	if err != nil {
		handleError(h.log, w, r, err, "Failed to record download")
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"download": toDownloadResponse(ev)})
}

// ListForUser handles GET /downloads?uid=.
func (h *DownloadHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListDownloadsForUser(r.Context(), callerUID(r, r.URL.Query().Get("uid")))
	if err != nil {
		handleError(h.log, w, r, err, "Failed to fetch")
		return
	}

	out := make([]downloadResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toDownloadResponse(ev))
	}
	writeOK(w, http.StatusOK, map[string]any{"downloads": out})
}

// callerUID returns uid, or the authenticated caller's uid when uid is empty.
func callerUID(r *http.Request, uid string) string {
	if uid != "" {
		return uid
	}
	uid, _ = ctxutil.UserIDFromCtx(r.Context())
	return uid
}

func toDownloadResponse(ev domain.DownloadEvent) downloadResponse {
	return downloadResponse{
		ID:        ev.ID,
		UID:       ev.UID,
		LectureID: ev.LectureID,
		Title:     ev.Title,
		Src:       ev.Src,
		CreatedAt: ev.CreatedAt,
	}
}
