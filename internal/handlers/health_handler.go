package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"leiriarte-backend/internal/config"
	"leiriarte-backend/internal/store"
)

// StatusSource reports storage connectivity for the diagnostic endpoint.
type StatusSource interface {
	Status(ctx context.Context) store.Status
}

type HealthHandler struct {
	status StatusSource
	cfg    *config.Config
}

func NewHealthHandler(status StatusSource, cfg *config.Config) *HealthHandler {
	return &HealthHandler{status: status, cfg: cfg}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Leiriarte backend is running"})
}

// Test handles GET /test. It always answers 200 and reports process and
// storage state, including when the database never came up.
func (h *HealthHandler) Test(c *gin.Context) {
	info := gin.H{
		"backend":       "✅ Running",
		"database":      "❌ Not Available",
		"database_url":  setFlag(h.cfg.DatabaseURL != ""),
		"database_name": setFlag(h.cfg.DatabaseName != ""),
		"collections":   []string{},
	}

	st := h.status.Status(c.Request.Context())
	if st.Connected {
		info["database"] = "✅ Connected"
		info["collections"] = st.Collections
	}

	c.JSON(http.StatusOK, info)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}
