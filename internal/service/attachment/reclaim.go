package attachment

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// Reclaim deletes the stored objects behind urls and returns how many were
// removed. Only objects under the caller's prefix are touched; failures are
// logged and skipped.
func (s *Service) Reclaim(ctx context.Context, urls []string) int {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok || len(urls) == 0 {
		return 0
	}
	prefix := userPrefix(userID)

	removed := 0
	for _, u := range urls {
		key, err := s.blobs.KeyFromURL(u)
		if err != nil || !ownedKey(key, prefix) {
			s.log.WarnContext(ctx, "attachment not reclaimable",
				slog.String("user_id", userID.String()),
				slog.String("url", u),
			)
			continue
		}
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.log.WarnContext(ctx, "attachment delete failed",
				slog.String("user_id", userID.String()),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			continue
		}
		removed++
	}

	s.log.InfoContext(ctx, "attachments reclaimed",
		slog.String("user_id", userID.String()),
		slog.Int("removed", removed),
		slog.Int("requested", len(urls)),
	)
	return removed
}

// ownedKey reports whether key names an object under prefix. Keys that are
// not already clean, or that carry a ".." segment, are refused so a
// decoded "users/<me>/../<other>/..." cannot reach another user's objects.
func ownedKey(key, prefix string) bool {
	if path.Clean(key) != key {
		return false
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return false
		}
	}
	return strings.HasPrefix(key, prefix)
}
