package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwalitptl/woundcare-api/internal/middleware"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/service"
	"github.com/jwalitptl/woundcare-api/pkg/httputil"
)

// SessionStore is the part of the session service the operational endpoints use.
type SessionStore interface {
	Ping(ctx context.Context) error
	End(ctx context.Context, id uuid.UUID) error
}

// Handler serves health, metrics, catalog and session endpoints.
type Handler struct {
	store    SessionStore
	gatherer prometheus.Gatherer
}

// NewHandler creates a new handler instance
func NewHandler(store SessionStore, gatherer prometheus.Gatherer) *Handler {
	return &Handler{store: store, gatherer: gatherer}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
	r.GET("/metrics", h.MetricsHandler())
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"time":   time.Now(),
	})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "session store unavailable",
			"time":   time.Now(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now(),
	})
}

func (h *Handler) MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}

// Catalog returns every enumerated option the UI pickers offer.
func (h *Handler) Catalog(c *gin.Context) {
	httputil.RespondWithSuccess(c, model.DefaultCatalog())
}

// EndSession discards the session's forms and notes after confirmation.
func (h *Handler) EndSession(c *gin.Context) {
	if !Confirmed(c, "ending the session") {
		return
	}
	if err := h.store.End(c.Request.Context(), middleware.SessionID(c)); err != nil {
		httputil.RespondWithError(c, service.AppError(err))
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
