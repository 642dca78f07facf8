// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

const probeTimeout = 5 * time.Second

type Checker interface {
	Ping(ctx context.Context) error
}

type probe struct {
	name   string
	target Checker
}

type Handler struct {
	probes   []probe
	ready    atomic.Bool
	draining atomic.Bool
}

func NewHandler(db, redis Checker) *Handler {
	h := &Handler{
		probes: []probe{
			{name: "postgres", target: db},
			{name: "redis", target: redis},
		},
	}
	h.ready.Store(true)
	return h
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		h.respond(w, http.StatusServiceUnavailable, StatusResponse{Status: "shutting_down"})
		return
	}
	h.respond(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	switch {
	case h.draining.Load():
		h.respond(w, http.StatusServiceUnavailable, StatusResponse{Status: "shutting_down"})
		return
	case !h.ready.Load():
		h.respond(w, http.StatusServiceUnavailable, StatusResponse{Status: "not_ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	results := h.runProbes(ctx)

	status := "ok"
	code := http.StatusOK
	for _, res := range results {
		if !res.Healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	h.respond(w, code, ReadinessResponse{Status: status, Checks: results})
}

func (h *Handler) runProbes(ctx context.Context) []ProbeResult {
	results := make([]ProbeResult, len(h.probes))

	var wg sync.WaitGroup
	wg.Add(len(h.probes))
	for i, p := range h.probes {
		go func(i int, p probe) {
			defer wg.Done()
			results[i] = p.run(ctx)
		}(i, p)
	}
	wg.Wait()

	return results
}

func (p probe) run(ctx context.Context) ProbeResult {
	res := ProbeResult{Name: p.name, Healthy: true}

	if p.target == nil {
		res.Healthy = false
		res.Message = "checker not configured"
		return res
	}

	start := time.Now()
	if err := p.target.Ping(ctx); err != nil {
		res.Healthy = false
		res.Message = "ping failed"
	}
	res.Latency = time.Since(start).String()

	return res
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.draining.Store(shutdown)
}

func (h *Handler) respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []ProbeResult `json:"checks"`
}

type ProbeResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
