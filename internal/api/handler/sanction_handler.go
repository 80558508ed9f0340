package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// SanctionHandler disciplinary sanction endpoints.
type SanctionHandler struct {
	sanctionSvc service.SanctionService
}

// NewSanctionHandler creates the SanctionHandler.
func NewSanctionHandler(sanctionSvc service.SanctionService) *SanctionHandler {
	return &SanctionHandler{sanctionSvc: sanctionSvc}
}

// Create
// POST /api/v1/sanctions
func (h *SanctionHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSanctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.sanctionSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDateEffetInvalide),
			errors.Is(err, service.ErrJoursMiseAPiedRequis),
			errors.Is(err, service.ErrJoursMiseAPiedInattendus):
			response.BadRequest(c, 17001, err.Error())
		case errors.Is(err, service.ErrEmployeIntrouvable):
			response.NotFound(c, 13003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// ListByEmploye
// GET /api/v1/sanctions/employe/:employeId
func (h *SanctionHandler) ListByEmploye(c *gin.Context) {
	result, err := h.sanctionSvc.ListByEmploye(c.Request.Context(), c.Param("employeId"))
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
