package attachment

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// File is one uploaded file. ContentType is the client-declared type; the
// stored type is always sniffed from Data.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Rejection explains why a file was not stored.
type Rejection struct {
	Name   string
	Reason string
}

// UploadResult lists stored URLs in input order and the rejected files.
type UploadResult struct {
	URLs     []string
	Rejected []Rejection
}

// UploadBatch validates every file, then uploads the valid ones. A bad file
// never blocks the others.
func (s *Service) UploadBatch(ctx context.Context, kind domain.RecordKind, files []File) (*UploadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be repair or purchase")
	}
	if len(files) == 0 {
		return nil, domain.NewValidationError("files", "at least one file required")
	}
	if len(files) > s.limits.MaxPerUpload {
		return nil, domain.NewValidationError("files", fmt.Sprintf("max %d files per upload", s.limits.MaxPerUpload))
	}

	urls := make([]string, len(files))
	reasons := make([]string, len(files))
	types := make([]string, len(files))
	for i, f := range files {
		ct, reason := s.check(f)
		types[i], reasons[i] = ct, reason
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, f := range files {
		if reasons[i] != "" {
			continue
		}
		g.Go(func() error {
			key := objectKey(userID, kind, s.newID(), allowedTypes[types[i]])
			url, err := s.blobs.Upload(gctx, key, types[i], bytes.NewReader(f.Data), int64(len(f.Data)))
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.log.WarnContext(ctx, "attachment upload failed",
					slog.String("user_id", userID.String()),
					slog.String("file", f.Name),
					slog.String("error", err.Error()),
				)
				reasons[i] = "upload failed"
				return nil
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("upload attachments: %w", err)
	}

	result := &UploadResult{URLs: []string{}}
	for i, f := range files {
		if reasons[i] != "" {
			result.Rejected = append(result.Rejected, Rejection{Name: f.Name, Reason: reasons[i]})
			continue
		}
		result.URLs = append(result.URLs, urls[i])
	}

	s.log.InfoContext(ctx, "attachments uploaded",
		slog.String("user_id", userID.String()),
		slog.String("kind", kind.String()),
		slog.Int("stored", len(result.URLs)),
		slog.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}

// check returns the sniffed content type, or a rejection reason.
func (s *Service) check(f File) (string, string) {
	if len(f.Data) == 0 {
		return "", "file is empty"
	}
	if int64(len(f.Data)) > s.limits.MaxFileSize {
		return "", fmt.Sprintf("file exceeds %d bytes", s.limits.MaxFileSize)
	}
	ct := normalizeType(http.DetectContentType(f.Data))
	if _, ok := allowedTypes[ct]; !ok {
		return "", "unsupported file type"
	}
	if _, known := allowedTypes[normalizeType(f.ContentType)]; known && normalizeType(f.ContentType) != ct {
		return "", "content does not match declared type"
	}
	return ct, ""
}
