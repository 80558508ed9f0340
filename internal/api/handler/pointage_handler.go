package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// PointageHandler attendance endpoints.
type PointageHandler struct {
	pointageSvc service.PointageService
}

// NewPointageHandler creates the PointageHandler.
func NewPointageHandler(pointageSvc service.PointageService) *PointageHandler {
	return &PointageHandler{pointageSvc: pointageSvc}
}

// Checkin
// POST /api/v1/pointages/checkin
func (h *PointageHandler) Checkin(c *gin.Context) {
	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.pointageSvc.Checkin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPointageExistant):
			response.Conflict(c, 14001, err.Error())
		case errors.Is(err, service.ErrEmployeIntrouvable):
			response.NotFound(c, 13003, err.Error())
		case errors.Is(err, service.ErrHeureInvalide):
			response.BadRequest(c, 14002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Checkout closes the day's record and writes the computed breakdown.
// PUT /api/v1/pointages/checkout/:employeId
func (h *PointageHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.pointageSvc.Checkout(c.Request.Context(), c.Param("employeId"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPointageIntrouvable):
			response.NotFound(c, 14003, err.Error())
		case errors.Is(err, service.ErrSortieDejaEnregistree):
			response.Conflict(c, 14004, err.Error())
		case errors.Is(err, service.ErrHeureInvalide),
			errors.Is(err, service.ErrSortieAvantEntree):
			response.BadRequest(c, 14002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// ListMois
// GET /api/v1/pointages/:employeId?mois=AAAA-MM
func (h *PointageHandler) ListMois(c *gin.Context) {
	result, err := h.pointageSvc.ListMois(c.Request.Context(), c.Param("employeId"), c.Query("mois"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeIntrouvable):
			response.NotFound(c, 13003, err.Error())
		case errors.Is(err, service.ErrMoisInvalide):
			response.BadRequest(c, 14005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
