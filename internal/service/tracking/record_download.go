package tracking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// RecordDownload appends a download event. Repeated calls are never
// deduplicated.
func (s *Service) RecordDownload(ctx context.Context, input RecordDownloadInput) (domain.DownloadEvent, error) {
	if err := input.Validate(); err != nil {
		return domain.DownloadEvent{}, err
	}

	ev := domain.DownloadEvent{
		UID:       input.UID,
		LectureID: input.LectureID,
		Title:     input.Title,
		Src:       input.Src,
		CreatedAt: s.stamp(),
	}

	id, err := s.downloads.Append(ctx, ev)
	if err != nil {
		return domain.DownloadEvent{}, fmt.Errorf("record download: %w", err)
	}
	ev.ID = id

	downloadsRecorded.Inc()
	s.log.InfoContext(ctx, "download recorded",
		slog.String("event_id", ev.ID),
		slog.String("uid", ev.UID),
		slog.String("lecture_id", ev.LectureID),
	)

	return ev, nil
}
