package domain

import "time"

// DownloadEvent records one download of a lecture by a user.
// Events are append-only: once stored they are never updated or deleted.
//
// LectureID is a weak reference to Video.ID; it is not checked against the
// catalog. Title and Src are optional and default to "".
type DownloadEvent struct {
	ID        string
	UID       string
	LectureID string
	Title     string
	Src       string
	CreatedAt time.Time
}
