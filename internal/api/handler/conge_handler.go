package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// CongeHandler leave request endpoints.
type CongeHandler struct {
	congeSvc service.CongeService
}

// NewCongeHandler creates the CongeHandler.
func NewCongeHandler(congeSvc service.CongeService) *CongeHandler {
	return &CongeHandler{congeSvc: congeSvc}
}

// Create submits a leave request.
// POST /api/v1/conges
func (h *CongeHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDemandeCongeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.congeSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCongeChevauchement):
			response.Conflict(c, 15001, err.Error())
		case errors.Is(err, service.ErrDatesCongeInvalide):
			response.BadRequest(c, 15002, err.Error())
		case errors.Is(err, service.ErrEmployeIntrouvable):
			response.NotFound(c, 13003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get
// GET /api/v1/conges/:id
func (h *CongeHandler) Get(c *gin.Context) {
	result, err := h.congeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDemandeIntrouvable) {
			response.NotFound(c, 15003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListByEmploye
// GET /api/v1/conges/employe/:employeId
func (h *CongeHandler) ListByEmploye(c *gin.Context) {
	result, err := h.congeSvc.ListByEmploye(c.Request.Context(), c.Param("employeId"))
	if err != nil {
		if errors.Is(err, service.ErrEmployeIntrouvable) {
			response.NotFound(c, 13003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Decide appends a validation step.
// POST /api/v1/conges/:id/decisions
func (h *CongeHandler) Decide(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.DecideCongeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.congeSvc.Decide(c.Request.Context(), c.Param("id"), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDemandeIntrouvable):
			response.NotFound(c, 15003, err.Error())
		case errors.Is(err, service.ErrDemandeCloturee):
			response.Conflict(c, 15004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
