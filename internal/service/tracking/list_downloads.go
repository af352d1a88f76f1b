package tracking

import (
	"context"
	"fmt"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// ListDownloadsForUser returns every event recorded for uid (exact,
// case-sensitive match). An empty uid yields an empty result without querying
// the store.
func (s *Service) ListDownloadsForUser(ctx context.Context, uid string) ([]domain.DownloadEvent, error) {
	if uid == "" {
		return []domain.DownloadEvent{}, nil
	}

	events, err := s.downloads.ListByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}
	if events == nil {
		events = []domain.DownloadEvent{}
	}
	return events, nil
}
