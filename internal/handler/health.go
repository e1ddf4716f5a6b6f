package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	redis pinger
}

// NewHealthHandler checks the database on readiness, and Redis as well when
// redis is non-nil.
func NewHealthHandler(db pinger, redis pinger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"database": h.check(r.Context(), "database", h.db)}
	if h.redis != nil {
		checks["redis"] = h.check(r.Context(), "redis", h.redis)
	}

	overall, httpStatus := "ok", http.StatusOK
	for _, status := range checks {
		if status != "ok" {
			overall, httpStatus = "down", http.StatusServiceUnavailable
		}
	}

	RespondJSON(w, httpStatus, map[string]any{
		"status":    overall,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

func (h *HealthHandler) check(ctx context.Context, name string, p pinger) string {
	if err := p.PingContext(ctx); err != nil {
		slog.Warn("readiness check failed", "dependency", name, "error", err)
		return "down"
	}
	return "ok"
}

// PingFunc adapts a plain ping function, such as a Redis client's, to the
// readiness check.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }
