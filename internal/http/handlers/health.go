package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db      *pgxpool.Pool
	started time.Time
	version string
}

func NewHealthHandler(db *pgxpool.Pool, version string) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now(), version: version}
}

// Liveness answers as long as the process is up (k8s liveness probe).
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports per-dependency status (k8s readiness probe). The
// response is 503 when any dependency is down.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{}
	code := http.StatusOK

	if err := h.pingDB(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		code = http.StatusServiceUnavailable
	} else {
		checks["database"] = "healthy"
	}

	status := "healthy"
	if code != http.StatusOK {
		status = "unhealthy"
	}
	c.JSON(code, gin.H{
		"status":    status,
		"version":   h.version,
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// Health is the short combined check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.pingDB(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	if h.db == nil {
		return nil
	}
	return h.db.Ping(ctx)
}
