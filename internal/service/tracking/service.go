package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

var downloadsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "edustream_downloads_recorded_total",
	Help: "Download events appended to the log.",
})

type downloadRepo interface {
	Append(ctx context.Context, ev domain.DownloadEvent) (string, error)
	ListByUID(ctx context.Context, uid string) ([]domain.DownloadEvent, error)
}

// Service records and reads the per-user download log.
type Service struct {
	downloads downloadRepo
	log       *slog.Logger
	now       func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewService creates a new Tracking service.
func NewService(
	log *slog.Logger,
	downloads downloadRepo,
) *Service {
	return &Service{
		downloads: downloads,
		log:       log.With("service", "tracking"),
		now:       time.Now,
	}
}

// stamp returns the current UTC time, never earlier than the previous stamp
// issued by this process. Microsecond precision matches what the stores keep.
func (s *Service) stamp() time.Time {
	t := s.now().UTC().Truncate(time.Microsecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Before(s.last) {
		t = s.last
	}
	s.last = t
	return t
}
