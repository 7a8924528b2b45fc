package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/notebook/internal/middleware"
)

func (h *Handler) HealthCheck(ctx *gin.Context) {
	status, code, message := "ok", http.StatusOK, "Notebook is running"

	if h.ping != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(pingCtx); err != nil {
			middleware.RequestLogger(ctx, h.log).WithError(err).Warn("Database ping failed")
			status, code, message = "degraded", http.StatusServiceUnavailable, "Database unreachable"
		}
	}

	ctx.JSON(code, gin.H{
		"status":    status,
		"message":   message,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
