package catalog

import (
	"strings"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// CreateVideoInput holds the descriptive fields and raw bytes of a new lecture video.
type CreateVideoInput struct {
	Subject  string
	Topic    string
	Subtopic string
	Title    string
	Blob     []byte
}

// Validate checks all fields and collects all errors.
func (i CreateVideoInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "subject", i.Subject)
	errs = requireText(errs, "topic", i.Topic)
	errs = requireText(errs, "subtopic", i.Subtopic)
	errs = requireText(errs, "title", i.Title)
	if len(i.Blob) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateVideoInput) fields(url string) domain.VideoFields {
	return domain.VideoFields{
		Subject:  strings.TrimSpace(i.Subject),
		Topic:    strings.TrimSpace(i.Topic),
		Subtopic: strings.TrimSpace(i.Subtopic),
		Title:    strings.TrimSpace(i.Title),
		URL:      url,
	}
}

// UpdateVideoInput is a full replacement of a video record's mutable fields.
type UpdateVideoInput struct {
	ID       string
	Subject  string
	Topic    string
	Subtopic string
	Title    string
	URL      string
}

// Validate checks all fields and collects all errors.
func (i UpdateVideoInput) Validate() error {
	var errs []domain.FieldError
	errs = requireText(errs, "id", i.ID)
	errs = requireText(errs, "subject", i.Subject)
	errs = requireText(errs, "topic", i.Topic)
	errs = requireText(errs, "subtopic", i.Subtopic)
	errs = requireText(errs, "title", i.Title)
	errs = requireText(errs, "url", i.URL)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateVideoInput) fields() domain.VideoFields {
	return domain.VideoFields{
		Subject:  strings.TrimSpace(i.Subject),
		Topic:    strings.TrimSpace(i.Topic),
		Subtopic: strings.TrimSpace(i.Subtopic),
		Title:    strings.TrimSpace(i.Title),
		URL:      strings.TrimSpace(i.URL),
	}
}

func requireText(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}
