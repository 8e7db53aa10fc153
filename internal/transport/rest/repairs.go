package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/service/repair"
)

type repairService interface {
	List(ctx context.Context, input repair.ListInput) ([]domain.RepairRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RepairRecord, error)
	Create(ctx context.Context, input repair.RecordInput) (*domain.RepairRecord, error)
	Update(ctx context.Context, input repair.UpdateInput) (*domain.RepairRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RepairHandler serves /api/repairs.
type RepairHandler struct {
	svc repairService
	log *slog.Logger
}

// NewRepairHandler creates a RepairHandler.
func NewRepairHandler(svc repairService, logger *slog.Logger) *RepairHandler {
	return &RepairHandler{svc: svc, log: logger.With("handler", "repair")}
}

// List handles GET /api/repairs.
func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.List(r.Context(), repair.ListInput{
		Criteria:  q.Criteria,
		Sort:      q.Sort,
		Direction: q.Direction,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRepairResponses(records))
}

// Get handles GET /api/repairs/{id}.
func (h *RepairHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRepairResponse(rec))
}

// Create handles POST /api/repairs.
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req repairRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/repairs/"+rec.ID.String())
	writeJSON(w, http.StatusCreated, toRepairResponse(rec))
}

// Update handles PUT /api/repairs/{id}.
func (h *RepairHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req repairRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Update(r.Context(), repair.UpdateInput{ID: id, Record: req.toInput()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRepairResponse(rec))
}

// Delete handles DELETE /api/repairs/{id}. Deleting a missing record is a 204.
func (h *RepairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (req repairRequest) toInput() repair.RecordInput {
	return repair.RecordInput{
		ItemName:    req.ItemName,
		DeviceType:  req.DeviceType,
		RepairDate:  req.RepairDate,
		Location:    req.Location,
		Cost:        req.Cost,
		Status:      req.Status,
		Notes:       req.Notes,
		Attachments: req.Attachments,
	}
}
