package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// CreateVideo uploads the blob, then records the video under the blob id
// with the upload locator as its url.
//
// An upload failure writes nothing and returns domain.ErrUploadFailed.
// A persist failure after a successful upload returns domain.ErrPersistFailed;
// the blob stays in storage unreferenced and is not removed.
func (s *Service) CreateVideo(ctx context.Context, input CreateVideoInput) (domain.Video, error) {
	if err := input.Validate(); err != nil {
		return domain.Video{}, err
	}

	locator, blobID, err := s.blobs.Upload(ctx, input.Blob)
	if err != nil {
		blobUploadFailures.Inc()
		s.log.WarnContext(ctx, "video blob upload failed",
			slog.Int("bytes", len(input.Blob)),
			slog.String("error", err.Error()),
		)
		return domain.Video{}, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}

	video := domain.Video{ID: blobID}.Apply(input.fields(locator))

	if err := s.videos.Create(ctx, video); err != nil {
		orphanedBlobs.Inc()
		s.log.ErrorContext(ctx, "video record not persisted, blob orphaned",
			slog.String("blob_id", blobID),
			slog.String("url", locator),
			slog.String("error", err.Error()),
		)
		return domain.Video{}, fmt.Errorf("%w: %w", domain.ErrPersistFailed, err)
	}

	videosCreated.Inc()
	s.log.InfoContext(ctx, "video created",
		slog.String("video_id", video.ID),
		slog.String("subject", video.Subject),
		slog.String("title", video.Title),
	)

	return video, nil
}
