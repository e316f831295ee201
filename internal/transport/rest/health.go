package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wigac/wigac-backend/internal/adapter/mailer"
)

const checkTimeout = 3 * time.Second

// Check is one dependency reported by the health endpoints. Ready and the
// overall status only fail on Required checks; optional ones degrade.
type Check struct {
	Name     string
	Required bool
	Run      func(ctx context.Context) error
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	version string
	checks  []Check
}

// NewHealthHandler creates a HealthHandler over checks.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the result of a single Check.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any required dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context(), true)
	h.write(w, status, components, "")
}

// Health reports every dependency with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context(), false)
	h.write(w, status, components, h.version)
}

func (h *HealthHandler) write(w http.ResponseWriter, status string, components map[string]ComponentStatus, version string) {
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// run executes the checks and folds them into an overall status: "down" when
// a required check fails, "degraded" when only optional ones do.
func (h *HealthHandler) run(ctx context.Context, requiredOnly bool) (string, map[string]ComponentStatus) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	overall := "ok"
	components := make(map[string]ComponentStatus, len(h.checks))
	for _, c := range h.checks {
		if requiredOnly && !c.Required {
			continue
		}

		start := time.Now()
		err := c.Run(ctx)
		latency := time.Since(start)

		switch {
		case err == nil:
			components[c.Name] = ComponentStatus{Status: "ok", Latency: latency.String()}
		case errors.Is(err, mailer.ErrDisabled):
			components[c.Name] = ComponentStatus{Status: "disabled"}
		default:
			components[c.Name] = ComponentStatus{Status: "down", Error: err.Error()}
			if c.Required {
				overall = "down"
			} else if overall == "ok" {
				overall = "degraded"
			}
		}
	}
	return overall, components
}
