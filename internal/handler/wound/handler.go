package wound

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/woundcare-api/internal/handler"
	"github.com/jwalitptl/woundcare-api/internal/middleware"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/service/note"
	"github.com/jwalitptl/woundcare-api/internal/service/wound"
	"github.com/jwalitptl/woundcare-api/pkg/httputil"
)

type Handler struct {
	service wound.WoundService
	notes   note.NoteService
}

func NewHandler(service wound.WoundService, notes note.NoteService) *Handler {
	return &Handler{service: service, notes: notes}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	wounds := r.Group("/wound")
	{
		wounds.GET("", h.GetWound)
		wounds.PATCH("", h.SetField)
		wounds.POST("/select", h.SelectOne)
		wounds.POST("/toggle", h.ToggleTag)
		wounds.DELETE("", h.ResetWound)
		wounds.GET("/prompt", h.GetPrompt)
		wounds.POST("/note", h.GenerateNote)
		wounds.GET("/note", h.GetNote)
	}
}

func (h *Handler) GetWound(c *gin.Context) {
	w, err := h.service.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
}

func (h *Handler) SetField(c *gin.Context) {
	var req handler.FieldRequest
	if !handler.Bind(c, &req) {
		return
	}
	w, err := h.service.SetField(c.Request.Context(), middleware.SessionID(c), req.Field, req.Value)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
}

func (h *Handler) SelectOne(c *gin.Context) {
	var req handler.FieldRequest
	if !handler.Bind(c, &req) {
		return
	}
	w, err := h.service.SelectOne(c.Request.Context(), middleware.SessionID(c), req.Field, req.Value)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
}

func (h *Handler) ToggleTag(c *gin.Context) {
	var req handler.ToggleRequest
	if !handler.Bind(c, &req) {
		return
	}
	w, err := h.service.ToggleTag(c.Request.Context(), middleware.SessionID(c), req.Field, req.Value)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
}

func (h *Handler) ResetWound(c *gin.Context) {
	if !handler.Confirmed(c, "reset") {
		return
	}
	w, err := h.service.Reset(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, w)
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
	n, err := h.notes.Generate(c.Request.Context(), middleware.SessionID(c), model.DomainWound)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, n)
}

func (h *Handler) GetNote(c *gin.Context) {
	n, err := h.notes.Note(c.Request.Context(), middleware.SessionID(c), model.DomainWound)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithText(c, n.Text)
}
