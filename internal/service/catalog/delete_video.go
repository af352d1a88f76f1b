package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// DeleteVideo removes the catalog record only; the blob is left in place.
// Deleting an unknown id succeeds.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.videos.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	s.log.InfoContext(ctx, "video deleted", slog.String("video_id", id))
	return nil
}
