package rest

import (
	"net/http"

	"github.com/heartmarshall/itemlog-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Repairs     *RepairHandler
	Purchases   *PurchaseHandler
	Attachments *AttachmentHandler
	Reports     *ReportHandler
}

// RouteMiddleware is applied to specific route groups on top of the global
// chain. Nil entries are skipped.
type RouteMiddleware struct {
	// Create wraps record-creating POSTs (idempotency).
	Create middleware.Middleware
	// Upload wraps attachment uploads (upload rate limit).
	Upload middleware.Middleware
}

// NewRouter builds the ServeMux with method-qualified patterns.
func NewRouter(h Handlers, mw RouteMiddleware) *http.ServeMux {
	create := middleware.Chain(mw.Create)
	upload := middleware.Chain(mw.Upload)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/repairs", h.Repairs.List)
	mux.Handle("POST /api/repairs", create(http.HandlerFunc(h.Repairs.Create)))
	mux.HandleFunc("GET /api/repairs/{id}", h.Repairs.Get)
	mux.HandleFunc("PUT /api/repairs/{id}", h.Repairs.Update)
	mux.HandleFunc("DELETE /api/repairs/{id}", h.Repairs.Delete)

	mux.HandleFunc("GET /api/purchases", h.Purchases.List)
	mux.Handle("POST /api/purchases", create(http.HandlerFunc(h.Purchases.Create)))
	mux.HandleFunc("GET /api/purchases/{id}", h.Purchases.Get)
	mux.HandleFunc("PUT /api/purchases/{id}", h.Purchases.Update)
	mux.HandleFunc("DELETE /api/purchases/{id}", h.Purchases.Delete)

	mux.Handle("POST /api/attachments/{kind}", upload(http.HandlerFunc(h.Attachments.Upload)))

	mux.HandleFunc("GET /api/reports/{kind}", h.Reports.View)
	mux.HandleFunc("GET /api/reports/{kind}/export", h.Reports.Export)
	mux.HandleFunc("GET /api/dashboard", h.Reports.Dashboard)

	return mux
}
