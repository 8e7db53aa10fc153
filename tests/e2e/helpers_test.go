//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/itemlog-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/itemlog-backend/internal/app"
	authpkg "github.com/heartmarshall/itemlog-backend/internal/auth"
	"github.com/heartmarshall/itemlog-backend/internal/config"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
	cdnBase   = "https://cdn.example.com/files"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Blobs  *fakeS3
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeS3 is a path-style S3 endpoint that keeps objects in memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodHead:
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	blobs := &fakeS3{objects: map[string][]byte{}}
	s3srv := httptest.NewServer(blobs)
	t.Cleanup(s3srv.Close)

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: jwtSecret, JWTIssuer: jwtIssuer},
		Storage: config.StorageConfig{
			Enabled:         true,
			Endpoint:        s3srv.URL,
			Region:          "us-east-1",
			Bucket:          "files",
			AccessKeyID:     "minio",
			SecretAccessKey: "minio123",
			PublicBaseURL:   cdnBase,
			UsePathStyle:    true,
		},
		Attachments: config.AttachmentsConfig{
			MaxFileSize:     1 << 20,
			MaxPerRecord:    20,
			MaxPerUpload:    5,
			ReclaimOnDelete: true,
		},
		Idempotency: config.IdempotencyConfig{
			Enabled: true,
			Path:    filepath.Join(t.TempDir(), "idempotency.db"),
			TTL:     time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,Idempotency-Key",
			MaxAge:         86400,
		},
	}

	handler, closeFn, err := app.NewHandler(context.Background(), cfg, pool, logger)
	require.NoError(t, err)
	t.Cleanup(closeFn)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Blobs:  blobs,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, ""),
	}
}

// newUser returns a fresh user id and a token the server accepts for it.
func (ts *testServer) newUser(t *testing.T) (string, uuid.UUID) {
	t.Helper()

	userID := testhelper.NewUserID()
	tok, err := ts.jwt.GenerateAccessToken(userID, 15*time.Minute)
	require.NoError(t, err)
	return tok, userID
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

type response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r response) json(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &m), "body: %s", r.Body)
	return m
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any, headers ...string) response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	return ts.send(t, req)
}

func (ts *testServer) upload(t *testing.T, kind, token string, files map[string][]byte) response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/attachments/"+kind, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	return ts.send(t, req)
}

func (ts *testServer) send(t *testing.T, req *http.Request) response {
	t.Helper()

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{Status: resp.StatusCode, Header: resp.Header, Body: raw}
}

func repairBody(name, day, cost string) map[string]any {
	return map[string]any{
		"itemName":   name,
		"repairDate": day,
		"location":   "HQ",
		"cost":       cost,
	}
}

func jsonUnmarshal(raw []byte, v any) error {
	return json.Unmarshal(raw, v)
}
