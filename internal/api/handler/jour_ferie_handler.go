package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// JourFerieHandler holiday calendar endpoints.
type JourFerieHandler struct {
	jourFerieSvc service.JourFerieService
}

// NewJourFerieHandler creates the JourFerieHandler.
func NewJourFerieHandler(jourFerieSvc service.JourFerieService) *JourFerieHandler {
	return &JourFerieHandler{jourFerieSvc: jourFerieSvc}
}

// Create
// POST /api/v1/jours-feries
func (h *JourFerieHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateJourFerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.jourFerieSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		if errors.Is(err, service.ErrJourFerieExistant) {
			response.Conflict(c, 14006, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// List
// GET /api/v1/jours-feries
func (h *JourFerieHandler) List(c *gin.Context) {
	result, err := h.jourFerieSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Deactivate
// DELETE /api/v1/jours-feries/:id
func (h *JourFerieHandler) Deactivate(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.jourFerieSvc.Deactivate(c.Request.Context(), c.Param("id"), actorID); err != nil {
		if errors.Is(err, service.ErrJourFerieIntrouvable) {
			response.NotFound(c, 14007, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ExportICS streams the holiday calendar as an iCalendar feed.
// GET /api/v1/jours-feries/export.ics
func (h *JourFerieHandler) ExportICS(c *gin.Context) {
	content, err := h.jourFerieSvc.ExportICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="jours_feries_sogas.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
