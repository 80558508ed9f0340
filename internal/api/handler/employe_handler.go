package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// EmployeHandler employee directory endpoints.
type EmployeHandler struct {
	employeSvc service.EmployeService
}

// NewEmployeHandler creates the EmployeHandler.
func NewEmployeHandler(employeSvc service.EmployeService) *EmployeHandler {
	return &EmployeHandler{employeSvc: employeSvc}
}

// Create hires an employee.
// POST /api/v1/employes
func (h *EmployeHandler) Create(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.employeSvc.Create(c.Request.Context(), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMatriculeDejaUtilise):
			response.Conflict(c, 13001, err.Error())
		case errors.Is(err, service.ErrSiteIntrouvable),
			errors.Is(err, service.ErrDepartementIntrouvable),
			errors.Is(err, service.ErrServiceIntrouvable),
			errors.Is(err, service.ErrEquipeIntrouvable),
			errors.Is(err, service.ErrPosteIntrouvable),
			errors.Is(err, service.ErrFonctionIntrouvable):
			response.NotFound(c, 13002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Get returns the full joined record.
// GET /api/v1/employes/:id
func (h *EmployeHandler) Get(c *gin.Context) {
	result, err := h.employeSvc.GetByID(c.Request.Context(), c.Param("id"))
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

// List
// GET /api/v1/employes
func (h *EmployeHandler) List(c *gin.Context) {
	var req dto.EmployeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	list, total, err := h.employeSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Update applies a partial update; a placement change requires a motif
// and writes a history record.
// PUT /api/v1/employes/:id
func (h *EmployeHandler) Update(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.employeSvc.Update(c.Request.Context(), c.Param("id"), &req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMotifChangementRequis):
			response.BadRequest(c, 13004, err.Error())
		case errors.Is(err, service.ErrEmployeIntrouvable):
			response.NotFound(c, 13003, err.Error())
		case errors.Is(err, service.ErrAffectationIntrouvable):
			response.NotFound(c, 13005, err.Error())
		case errors.Is(err, service.ErrSiteIntrouvable),
			errors.Is(err, service.ErrDepartementIntrouvable),
			errors.Is(err, service.ErrServiceIntrouvable),
			errors.Is(err, service.ErrEquipeIntrouvable),
			errors.Is(err, service.ErrPosteIntrouvable),
			errors.Is(err, service.ErrFonctionIntrouvable):
			response.NotFound(c, 13002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Archive soft-deletes an employee.
// DELETE /api/v1/employes/:id
func (h *EmployeHandler) Archive(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.employeSvc.Archive(c.Request.Context(), c.Param("id"), actorID); err != nil {
		if errors.Is(err, service.ErrEmployeIntrouvable) {
			response.NotFound(c, 13003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ListAffectations returns the placement timeline.
// GET /api/v1/employes/:id/affectations
func (h *EmployeHandler) ListAffectations(c *gin.Context) {
	result, err := h.employeSvc.ListAffectations(c.Request.Context(), c.Param("id"))
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
