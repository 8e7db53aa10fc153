package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/itemlog-backend/internal/adapter/bolt/idempotency"
	"github.com/heartmarshall/itemlog-backend/internal/adapter/postgres"
	purchaserepo "github.com/heartmarshall/itemlog-backend/internal/adapter/postgres/purchase"
	repairrepo "github.com/heartmarshall/itemlog-backend/internal/adapter/postgres/repair"
	"github.com/heartmarshall/itemlog-backend/internal/adapter/storage"
	"github.com/heartmarshall/itemlog-backend/internal/auth"
	"github.com/heartmarshall/itemlog-backend/internal/config"
	"github.com/heartmarshall/itemlog-backend/internal/service/attachment"
	"github.com/heartmarshall/itemlog-backend/internal/service/purchase"
	"github.com/heartmarshall/itemlog-backend/internal/service/repair"
	reportsvc "github.com/heartmarshall/itemlog-backend/internal/service/report"
	"github.com/heartmarshall/itemlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/itemlog-backend/internal/transport/rest"
)

// idempotencyPurgeInterval is how often expired idempotency entries are dropped.
const idempotencyPurgeInterval = 10 * time.Minute

// errStorageDisabled is returned by the blob store when storage is turned off.
var errStorageDisabled = errors.New("attachment storage is disabled")

// NewHandler builds services over pool and the HTTP stack serving them. The
// returned func releases the rate limiter and idempotency store.
func NewHandler(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	svcs, err := newServices(ctx, cfg, pool, logger)
	if err != nil {
		return nil, nil, err
	}
	return newHTTPHandler(ctx, cfg, pool, svcs, logger)
}

type services struct {
	repairs     *repair.Service
	purchases   *purchase.Service
	attachments *attachment.Service
	reports     *reportsvc.Service

	// storage is nil when attachment storage is disabled.
	storage interface{ Ping(context.Context) error }
}

func newServices(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*services, error) {
	blobs, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	var storagePing interface{ Ping(context.Context) error }
	if s3, ok := blobs.(*storage.S3Store); ok {
		storagePing = s3
	}

	repairs := repairrepo.New(pool)
	purchases := purchaserepo.New(pool)
	tx := postgres.NewTxManager(pool)

	attachments := attachment.NewService(logger, blobs, attachment.Limits{
		MaxFileSize:  cfg.Attachments.MaxFileSize,
		MaxPerUpload: cfg.Attachments.MaxPerUpload,
	})

	return &services{
		repairs: repair.NewService(logger, repairs, attachments, tx, repair.Options{
			ReclaimAttachments: cfg.Attachments.ReclaimOnDelete,
			MaxAttachments:     cfg.Attachments.MaxPerRecord,
		}),
		purchases: purchase.NewService(logger, purchases, attachments, tx, purchase.Options{
			ReclaimAttachments: cfg.Attachments.ReclaimOnDelete,
			MaxAttachments:     cfg.Attachments.MaxPerRecord,
		}),
		attachments: attachments,
		reports:     reportsvc.NewService(logger, repairs, purchases),
		storage:     storagePing,
	}, nil
}

type blobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.ReadSeeker, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(raw string) (string, error)
}

func newBlobStore(ctx context.Context, cfg config.StorageConfig) (blobStore, error) {
	if !cfg.Enabled {
		return disabledStore{}, nil
	}
	s, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init blob store: %w", err)
	}
	return s, nil
}

// disabledStore rejects every operation; uploads surface as per-file rejections.
type disabledStore struct{}

func (disabledStore) Upload(context.Context, string, string, io.ReadSeeker, int64) (string, error) {
	return "", errStorageDisabled
}

func (disabledStore) Delete(context.Context, string) error { return errStorageDisabled }

func (disabledStore) KeyFromURL(string) (string, error) { return "", errStorageDisabled }

// newHTTPHandler builds the router and the global middleware chain.
func newHTTPHandler(
	ctx context.Context,
	cfg *config.Config,
	db interface{ Ping(context.Context) error },
	svcs *services,
	logger *slog.Logger,
) (http.Handler, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var routeMW rest.RouteMiddleware

	if cfg.Idempotency.Enabled {
		store, err := idempotency.Open(cfg.Idempotency.Path, cfg.Idempotency.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("open idempotency store: %w", err)
		}
		purgeCtx, stopPurge := context.WithCancel(ctx)
		go purgeIdempotency(purgeCtx, store, logger)
		closers = append(closers, func() {
			stopPurge()
			if err := store.Close(); err != nil {
				logger.Error("close idempotency store", slog.String("error", err.Error()))
			}
		})
		routeMW.Create = middleware.Idempotency(store, logger)
	}

	global := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		closers = append(closers, rl.Stop)
		global = append(global, rl.Limit("api", cfg.RateLimit.RequestsPerMin))
		routeMW.Upload = rl.Limit("uploads", cfg.RateLimit.UploadsPerMin)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	global = append(global, middleware.Auth(jwt))

	probes := []rest.Probe{{Name: "database", Check: db.Ping}}
	if svcs.storage != nil {
		probes = append(probes, rest.Probe{Name: "storage", Check: svcs.storage.Ping, Optional: true})
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(BuildVersion(), probes...),
		Repairs:     rest.NewRepairHandler(svcs.repairs, logger),
		Purchases:   rest.NewPurchaseHandler(svcs.purchases, logger),
		Attachments: rest.NewAttachmentHandler(svcs.attachments, cfg.Attachments.MaxFileSize, cfg.Attachments.MaxPerUpload, logger),
		Reports:     rest.NewReportHandler(svcs.reports, logger),
	}, routeMW)

	return middleware.Chain(global...)(mux), closeAll, nil
}

func purgeIdempotency(ctx context.Context, store *idempotency.Store, logger *slog.Logger) {
	ticker := time.NewTicker(idempotencyPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.Purge()
			if err != nil {
				logger.Error("purge idempotency keys", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.Debug("purged idempotency keys", slog.Int("count", n))
			}
		}
	}
}
