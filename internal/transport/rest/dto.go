package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
)

// Cost travels as a JSON string ("12.50") so no precision is lost.

type repairRequest struct {
	ItemName    string          `json:"itemName"`
	DeviceType  *string         `json:"deviceType"`
	RepairDate  string          `json:"repairDate"`
	Location    string          `json:"location"`
	Cost        decimal.Decimal `json:"cost"`
	Status      string          `json:"status"`
	Notes       *string         `json:"notes"`
	Attachments []string        `json:"attachments"`
}

type repairResponse struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"itemName"`
	DeviceType  *string   `json:"deviceType,omitempty"`
	RepairDate  string    `json:"repairDate"`
	Location    string    `json:"location"`
	Cost        string    `json:"cost"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toRepairResponse(r *domain.RepairRecord) repairResponse {
	return repairResponse{
		ID:          r.ID.String(),
		ItemName:    r.ItemName,
		DeviceType:  r.DeviceType,
		RepairDate:  domain.FormatDate(r.RepairDate),
		Location:    r.Location,
		Cost:        r.Cost.StringFixed(2),
		Status:      r.Status.String(),
		Notes:       r.Notes,
		Attachments: nonNil(r.Attachments),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toRepairResponses(records []domain.RepairRecord) []repairResponse {
	out := make([]repairResponse, len(records))
	for i := range records {
		out[i] = toRepairResponse(&records[i])
	}
	return out
}

type purchaseRequest struct {
	ItemName     string          `json:"itemName"`
	PurchaseDate string          `json:"purchaseDate"`
	Location     string          `json:"location"`
	Cost         decimal.Decimal `json:"cost"`
	WarrantyInfo *string         `json:"warrantyInfo"`
	Notes        *string         `json:"notes"`
	Attachments  []string        `json:"attachments"`
}

type purchaseResponse struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"itemName"`
	PurchaseDate string    `json:"purchaseDate"`
	Location     string    `json:"location"`
	Cost         string    `json:"cost"`
	WarrantyInfo *string   `json:"warrantyInfo,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	Attachments  []string  `json:"attachments"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toPurchaseResponse(p *domain.PurchaseRecord) purchaseResponse {
	return purchaseResponse{
		ID:           p.ID.String(),
		ItemName:     p.ItemName,
		PurchaseDate: domain.FormatDate(p.PurchaseDate),
		Location:     p.Location,
		Cost:         p.Cost.StringFixed(2),
		WarrantyInfo: p.WarrantyInfo,
		Notes:        p.Notes,
		Attachments:  nonNil(p.Attachments),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPurchaseResponses(records []domain.PurchaseRecord) []purchaseResponse {
	out := make([]purchaseResponse, len(records))
	for i := range records {
		out[i] = toPurchaseResponse(&records[i])
	}
	return out
}

type summaryResponse struct {
	Count          int            `json:"count"`
	TotalCost      string         `json:"totalCost"`
	TotalFormatted string         `json:"totalFormatted"`
	ByStatus       map[string]int `json:"byStatus,omitempty"`
}

func toSummaryResponse(s engine.Summary) summaryResponse {
	resp := summaryResponse{
		Count:          s.Count,
		TotalCost:      s.TotalCost.StringFixed(2),
		TotalFormatted: engine.FormatCurrency(s.TotalCost),
	}
	if s.ByStatus != nil {
		resp.ByStatus = make(map[string]int, len(s.ByStatus))
		for st, n := range s.ByStatus {
			resp.ByStatus[st.String()] = n
		}
	}
	return resp
}

type reportResponse[T any] struct {
	Records     []T             `json:"records"`
	Summary     summaryResponse `json:"summary"`
	DeviceTypes []string        `json:"deviceTypes"`
}

type dashboardResponse struct {
	Repairs     summaryResponse `json:"repairs"`
	Purchases   summaryResponse `json:"purchases"`
	DeviceTypes []string        `json:"deviceTypes"`
}

type rejectionResponse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type uploadResponse struct {
	URLs     []string            `json:"urls"`
	Rejected []rejectionResponse `json:"rejected"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
