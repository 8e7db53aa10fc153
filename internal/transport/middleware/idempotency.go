package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/heartmarshall/itemlog-backend/internal/adapter/bolt/idempotency"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

const (
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
	maxIdempotentBody    = 1 << 20
)

type idempotencyStore interface {
	Get(key string) (*idempotency.Response, error)
	Save(key string, resp idempotency.Response) (*idempotency.Response, bool, error)
}

// Idempotency replays the first successful response stored under the
// request's Idempotency-Key. Keys are scoped per user. Reusing a key with a
// different method, path or body is rejected with 422. Requests without a
// key, or without an authenticated user, pass through untouched. A second
// request arriving while the first with the same key is still running gets
// 409.
func Idempotency(store idempotencyStore, logger *slog.Logger) Middleware {
	var inflight sync.Map // key -> struct{}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientKey := strings.TrimSpace(r.Header.Get(idempotencyHeader))
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if clientKey == "" || !ok {
				next.ServeHTTP(w, r)
				return
			}
			if len(clientKey) > maxIdempotencyKeyLen {
				writeJSONError(w, http.StatusBadRequest, "idempotency key too long")
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxIdempotentBody+1))
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			if len(body) > maxIdempotentBody {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			key := userID.String() + ":" + clientKey
			fp := fingerprint(r, body)

			if served, ok := replayStored(w, r, store, key, fp, logger); served || !ok {
				if !ok {
					next.ServeHTTP(w, r)
				}
				return
			}

			// Only one request per key may run the handler; the bolt file lock
			// keeps the store to a single process, so an in-memory claim suffices.
			if _, busy := inflight.LoadOrStore(key, struct{}{}); busy {
				writeJSONError(w, http.StatusConflict, "a request with this idempotency key is in progress")
				return
			}
			defer inflight.Delete(key)

			// The previous holder may have saved between the lookup and the claim.
			if served, ok := replayStored(w, r, store, key, fp, logger); served || !ok {
				if !ok {
					next.ServeHTTP(w, r)
				}
				return
			}

			rw := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			if rw.status < 200 || rw.status >= 300 {
				return
			}
			_, created, err := store.Save(key, idempotency.Response{
				Status:      rw.status,
				ContentType: rw.Header().Get("Content-Type"),
				Body:        rw.body.Bytes(),
				Fingerprint: fp,
			})
			switch {
			case err != nil:
				logger.WarnContext(r.Context(), "idempotency save failed", slog.String("error", err.Error()))
			case !created:
				logger.WarnContext(r.Context(), "idempotency key already held a response",
					slog.String("user_id", userID.String()),
				)
			}
		})
	}
}

// replayStored answers from the store when key has a live entry. served
// reports that a response was written; ok is false when the store failed
// and the caller should fall through to the handler.
func replayStored(w http.ResponseWriter, r *http.Request, store idempotencyStore, key, fp string, logger *slog.Logger) (served, ok bool) {
	stored, err := store.Get(key)
	switch {
	case err == nil:
		if stored.Fingerprint != fp {
			writeJSONError(w, http.StatusUnprocessableEntity, "idempotency key reused with a different request")
			return true, true
		}
		replay(w, stored)
		return true, true
	case errors.Is(err, idempotency.ErrNotFound):
		return false, true
	default:
		logger.WarnContext(r.Context(), "idempotency lookup failed", slog.String("error", err.Error()))
		return false, false
	}
}

func fingerprint(r *http.Request, body []byte) string {
	h := sha256.New()
	io.WriteString(h, r.Method+"\n"+r.URL.Path+"\n") //nolint:errcheck
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func replay(w http.ResponseWriter, resp *idempotency.Response) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(resp.Status)
	w.Write(resp.Body) //nolint:errcheck
}

// recordingWriter passes the response through while keeping a copy.
type recordingWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *recordingWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
