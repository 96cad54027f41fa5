package device

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/woundcare-api/internal/handler"
	"github.com/jwalitptl/woundcare-api/internal/middleware"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/service/device"
	"github.com/jwalitptl/woundcare-api/internal/service/note"
	apperrors "github.com/jwalitptl/woundcare-api/pkg/errors"
	"github.com/jwalitptl/woundcare-api/pkg/httputil"
)

type Handler struct {
	service device.DeviceService
	notes   note.NoteService
}

func NewHandler(service device.DeviceService, notes note.NoteService) *Handler {
	return &Handler{service: service, notes: notes}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	devices := r.Group("/devices")
	{
		devices.GET("", h.GetDevices)
		devices.POST("", h.AddDevice)
		devices.PUT("/schedule", h.SetSchedule)
		devices.GET("/prompt", h.GetPrompt)
		devices.POST("/note", h.GenerateNote)
		devices.GET("/note", h.GetNote)

		devices.PATCH("/:id", h.UpdateDevice)
		devices.DELETE("/:id", h.RemoveDevice)
		devices.PUT("/:id/lumens", h.SetLumenCount)
		devices.PATCH("/:id/lumens/:index", h.UpdateLumen)
	}
}

// LumenCountRequest carries the wanted lumen count. Any value is accepted and
// clamped to 1-5; only a missing count is rejected.
type LumenCountRequest struct {
	Count *int `json:"count" binding:"required"`
}

type ScheduleRequest struct {
	NextDressingChange string `json:"next_dressing_change"`
	Notes              string `json:"notes"`
}

func deviceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid device ID", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) GetDevices(c *gin.Context) {
	sheet, err := h.service.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, sheet)
}

func (h *Handler) AddDevice(c *gin.Context) {
	d, err := h.service.AddDevice(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithStatus(c, http.StatusCreated, d)
}

func (h *Handler) UpdateDevice(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	var req handler.FieldRequest
	if !handler.Bind(c, &req) {
		return
	}
	d, err := h.service.UpdateDevice(c.Request.Context(), middleware.SessionID(c), id, req.Field, req.Value)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, d)
}

func (h *Handler) RemoveDevice(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	sheet, err := h.service.RemoveDevice(c.Request.Context(), middleware.SessionID(c), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, sheet)
}

func (h *Handler) SetLumenCount(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	var req LumenCountRequest
	if !handler.Bind(c, &req) {
		return
	}
	d, err := h.service.SetLumenCount(c.Request.Context(), middleware.SessionID(c), id, *req.Count)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, d)
}

func (h *Handler) UpdateLumen(c *gin.Context) {
	id, ok := deviceID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid lumen index", err))
		return
	}
	var req handler.FieldRequest
	if !handler.Bind(c, &req) {
		return
	}
	d, err := h.service.UpdateLumen(c.Request.Context(), middleware.SessionID(c), id, index, req.Field, req.Value)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, d)
}

func (h *Handler) SetSchedule(c *gin.Context) {
	var req ScheduleRequest
	if !handler.Bind(c, &req) {
		return
	}
	sheet, err := h.service.SetSchedule(c.Request.Context(), middleware.SessionID(c), req.NextDressingChange, req.Notes)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, sheet)
}

func (h *Handler) GetPrompt(c *gin.Context) {
	prompt, err := h.service.Prompt(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithText(c, prompt)
}

func (h *Handler) GenerateNote(c *gin.Context) {
	n, err := h.notes.Generate(c.Request.Context(), middleware.SessionID(c), model.DomainDevice)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, n)
}

func (h *Handler) GetNote(c *gin.Context) {
	n, err := h.notes.Note(c.Request.Context(), middleware.SessionID(c), model.DomainDevice)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithText(c, n.Text)
}
