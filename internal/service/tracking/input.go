package tracking

import (
	"strings"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// RecordDownloadInput describes one completed download. Title and Src are optional.
type RecordDownloadInput struct {
	UID       string
	LectureID string
	Title     string
	Src       string
}

// Validate checks all fields and collects all errors.
func (i RecordDownloadInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.UID) == "" {
		errs = append(errs, domain.FieldError{Field: "uid", Message: "required"})
	}
	if strings.TrimSpace(i.LectureID) == "" {
		errs = append(errs, domain.FieldError{Field: "lectureId", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
