package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/service/purchase"
)

type purchaseService interface {
	List(ctx context.Context, input purchase.ListInput) ([]domain.PurchaseRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PurchaseRecord, error)
	Create(ctx context.Context, input purchase.RecordInput) (*domain.PurchaseRecord, error)
	Update(ctx context.Context, input purchase.UpdateInput) (*domain.PurchaseRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PurchaseHandler serves /api/purchases.
type PurchaseHandler struct {
	svc purchaseService
	log *slog.Logger
}

// NewPurchaseHandler creates a PurchaseHandler.
func NewPurchaseHandler(svc purchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, log: logger.With("handler", "purchase")}
}

// List handles GET /api/purchases.
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.List(r.Context(), purchase.ListInput{
		Criteria:  q.Criteria,
		Sort:      q.Sort,
		Direction: q.Direction,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPurchaseResponses(records))
}

// Get handles GET /api/purchases/{id}.
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, toPurchaseResponse(rec))
}

// Create handles POST /api/purchases.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/api/purchases/"+rec.ID.String())
	writeJSON(w, http.StatusCreated, toPurchaseResponse(rec))
}

// Update handles PUT /api/purchases/{id}.
func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req purchaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Update(r.Context(), purchase.UpdateInput{ID: id, Record: req.toInput()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPurchaseResponse(rec))
}

// Delete handles DELETE /api/purchases/{id}. Deleting a missing record is a 204.
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (req purchaseRequest) toInput() purchase.RecordInput {
	return purchase.RecordInput{
		ItemName:     req.ItemName,
		PurchaseDate: req.PurchaseDate,
		Location:     req.Location,
		Cost:         req.Cost,
		WarrantyInfo: req.WarrantyInfo,
		Notes:        req.Notes,
		Attachments:  req.Attachments,
	}
}
