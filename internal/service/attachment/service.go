// Package attachment validates uploaded files, stores them in the blob
// store and reclaims them when their record goes away.
package attachment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

type blobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.ReadSeeker, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(raw string) (string, error)
}

// Accepted content types and the extension stored with each.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// uploadConcurrency bounds parallel PutObject calls per batch.
const uploadConcurrency = 4

// Limits bounds a single upload batch.
type Limits struct {
	MaxFileSize  int64
	MaxPerUpload int
}

// Service provides attachment operations.
type Service struct {
	blobs  blobStore
	limits Limits
	newID  func() uuid.UUID
	log    *slog.Logger
}

// NewService creates a new attachment service.
func NewService(log *slog.Logger, blobs blobStore, limits Limits) *Service {
	return &Service{
		blobs:  blobs,
		limits: limits,
		newID:  uuid.New,
		log:    log.With("service", "attachment"),
	}
}

// userPrefix is the key prefix owned by userID.
func userPrefix(userID uuid.UUID) string {
	return "users/" + userID.String() + "/"
}

func objectKey(userID uuid.UUID, kind domain.RecordKind, id uuid.UUID, ext string) string {
	return fmt.Sprintf("%s%s/%s%s", userPrefix(userID), kind, id, ext)
}

func normalizeType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
