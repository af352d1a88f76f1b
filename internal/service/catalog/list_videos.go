package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// ListVideos returns every record in the catalog. Order is store-defined.
func (s *Service) ListVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.videos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}

// GetVideo returns a single record by id.
func (s *Service) GetVideo(ctx context.Context, id string) (domain.Video, error) {
	if id == "" {
		return domain.Video{}, domain.NewValidationError("id", "required")
	}

	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return domain.Video{}, fmt.Errorf("get video: %w", err)
	}
	return video, nil
}
