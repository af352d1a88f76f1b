package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// UpdateVideo replaces every mutable field of an existing record.
// Returns domain.ErrNotFound if the id is unknown. Concurrent updates are last-writer-wins.
func (s *Service) UpdateVideo(ctx context.Context, input UpdateVideoInput) (domain.Video, error) {
	if err := input.Validate(); err != nil {
		return domain.Video{}, err
	}

	video := domain.Video{ID: input.ID}.Apply(input.fields())

	if err := s.videos.Update(ctx, video); err != nil {
		return domain.Video{}, fmt.Errorf("update video: %w", err)
	}

	s.log.InfoContext(ctx, "video updated",
		slog.String("video_id", video.ID),
		slog.String("title", video.Title),
	)

	return video, nil
}
