package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// ContratHandler contract endpoints.
type ContratHandler struct {
	contratSvc service.ContratService
}

// NewContratHandler creates the ContratHandler.
func NewContratHandler(contratSvc service.ContratService) *ContratHandler {
	return &ContratHandler{contratSvc: contratSvc}
}

// Create
// POST /api/v1/contrats
func (h *ContratHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateContratRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.contratSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContratActifExistant):
			response.Conflict(c, 16001, err.Error())
		case errors.Is(err, service.ErrDateFinPrevueRequise),
			errors.Is(err, service.ErrDateFinPrevueInterdite),
			errors.Is(err, service.ErrContratParentRequis),
			errors.Is(err, service.ErrContratParentAutreEmploye):
			response.BadRequest(c, 16002, err.Error())
		case errors.Is(err, service.ErrContratParentIntrouvable):
			response.NotFound(c, 16003, err.Error())
		case errors.Is(err, service.ErrEmployeIntrouvable),
			errors.Is(err, service.ErrPosteIntrouvable):
			response.NotFound(c, 13003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get
// GET /api/v1/contrats/:id
func (h *ContratHandler) Get(c *gin.Context) {
	result, err := h.contratSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrContratIntrouvable) {
			response.NotFound(c, 16003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// ListByEmploye
// GET /api/v1/contrats/employe/:employeId
func (h *ContratHandler) ListByEmploye(c *gin.Context) {
	result, err := h.contratSvc.ListByEmploye(c.Request.Context(), c.Param("employeId"))
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
