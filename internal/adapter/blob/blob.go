// Package blob stores raw lecture video bytes and returns a durable locator for them.
package blob

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const contentType = "video/mp4"

// objectKey returns the storage key for blobID under prefix.
func objectKey(prefix, blobID string) string {
	return prefix + "videos/" + blobID + ".mp4"
}

// joinURL appends an object key to a base URL, escaping each key segment.
func joinURL(base, key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segs, "/")
}

func newBlobID() string {
	return uuid.NewString()
}
