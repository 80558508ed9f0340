package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// MedicalHandler medical visit and work accident endpoints.
type MedicalHandler struct {
	medicalSvc service.MedicalService
}

// NewMedicalHandler creates the MedicalHandler.
func NewMedicalHandler(medicalSvc service.MedicalService) *MedicalHandler {
	return &MedicalHandler{medicalSvc: medicalSvc}
}

// CreateVisite
// POST /api/v1/medical/visites
func (h *MedicalHandler) CreateVisite(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateVisiteMedicaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.medicalSvc.CreateVisite(c.Request.Context(), &req, actorID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeIntrouvable) {
			response.NotFound(c, 13003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListVisites
// GET /api/v1/medical/visites/employe/:employeId
func (h *MedicalHandler) ListVisites(c *gin.Context) {
	result, err := h.medicalSvc.ListVisites(c.Request.Context(), c.Param("employeId"))
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

// CreateAccident
// POST /api/v1/medical/accidents
func (h *MedicalHandler) CreateAccident(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAccidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.medicalSvc.CreateAccident(c.Request.Context(), &req, actorID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeIntrouvable) {
			response.NotFound(c, 13003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// ListAccidents
// GET /api/v1/medical/accidents/employe/:employeId
func (h *MedicalHandler) ListAccidents(c *gin.Context) {
	result, err := h.medicalSvc.ListAccidents(c.Request.Context(), c.Param("employeId"))
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
