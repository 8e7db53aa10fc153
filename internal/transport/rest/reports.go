package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
	reportsvc "github.com/heartmarshall/itemlog-backend/internal/service/report"
)

type reportService interface {
	RepairView(ctx context.Context, q reportsvc.Query) (*reportsvc.View[domain.RepairRecord], error)
	PurchaseView(ctx context.Context, q reportsvc.Query) (*reportsvc.View[domain.PurchaseRecord], error)
	Export(ctx context.Context, kind domain.RecordKind, format domain.ExportFormat, q reportsvc.Query) (*engine.Export, error)
	Dashboard(ctx context.Context) (*reportsvc.Dashboard, error)
}

// ReportHandler serves /api/reports and /api/dashboard.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// View handles GET /api/reports/{kind}.
func (h *ReportHandler) View(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	query := reportsvc.Query(q)

	switch kind {
	case domain.RecordKindRepair:
		v, err := h.svc.RepairView(r.Context(), query)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reportResponse[repairResponse]{
			Records:     toRepairResponses(v.Records),
			Summary:     toSummaryResponse(v.Summary),
			DeviceTypes: nonNil(v.DeviceTypes),
		})
	case domain.RecordKindPurchase:
		v, err := h.svc.PurchaseView(r.Context(), query)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reportResponse[purchaseResponse]{
			Records:     toPurchaseResponses(v.Records),
			Summary:     toSummaryResponse(v.Summary),
			DeviceTypes: nonNil(v.DeviceTypes),
		})
	}
}

// Export handles GET /api/reports/{kind}/export?format=csv|pdf.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	format, err := domain.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	q, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Export(r.Context(), kind, format, reportsvc.Query(q))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(out.Data) //nolint:errcheck
}

// Dashboard handles GET /api/dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Repairs:     toSummaryResponse(d.Repairs),
		Purchases:   toSummaryResponse(d.Purchases),
		DeviceTypes: nonNil(d.DeviceTypes),
	})
}
