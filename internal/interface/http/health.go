package http

import (
	"context"
	"net/http"
	"time"
)

// healthCheckTimeout bounds how long a probe may block on a backend.
const healthCheckTimeout = 5 * time.Second

type healthResponse struct {
	Status   string            `json:"status"`
	Uptime   string            `json:"uptime"`
	Services map[string]string `json:"services"`
}

// handleHealth reports the server and its backing services.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := healthResponse{
		Status:   "ok",
		Uptime:   s.Uptime().Round(time.Second).String(),
		Services: map[string]string{},
	}

	check := func(name string, p Pinger) {
		if p == nil {
			resp.Services[name] = "not configured"
			return
		}
		if err := p.Ping(ctx); err != nil {
			resp.Services[name] = "unreachable"
			resp.Status = "degraded"
			return
		}
		resp.Services[name] = "ok"
	}
	check("postgres", s.deps.DB)
	check("redis", s.deps.Redis)

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// handleLive is the liveness probe: the process is up.
func (s *Server) handleLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// handleReady is the readiness probe: the database must answer.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if s.deps.DB != nil {
		if err := s.deps.DB.Ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "not_ready", "Database is unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
