package rest

import (
	"context"
	"net/http"
	"time"
)

// probeTimeout bounds every health check request.
const probeTimeout = 3 * time.Second

// Probe checks one dependency. A failing required probe takes the service
// down; a failing optional probe only degrades it.
type Probe struct {
	Name     string
	Check    func(ctx context.Context) error
	Optional bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	probes  []Probe
}

// NewHealthHandler creates a HealthHandler that runs probes in order.
func NewHealthHandler(version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{version: version, probes: probes}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of a single probe.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 when a required probe fails. Optional probes are skipped.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, p := range h.probes {
		if p.Optional {
			continue
		}
		if err := p.Check(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health runs every probe and reports per-component status with latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	overall := statusOK
	components := make(map[string]CompStatus, len(h.probes))

	for _, p := range h.probes {
		start := time.Now()
		err := p.Check(ctx)
		if err == nil {
			components[p.Name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
			continue
		}

		components[p.Name] = CompStatus{Status: statusDown}
		switch {
		case !p.Optional:
			overall = statusDown
		case overall == statusOK:
			overall = statusDegraded
		}
	}

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
