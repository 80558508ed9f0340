package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// StructureHandler organizational registry endpoints.
type StructureHandler struct {
	structureSvc service.StructureService
}

// NewStructureHandler creates the StructureHandler.
func NewStructureHandler(structureSvc service.StructureService) *StructureHandler {
	return &StructureHandler{structureSvc: structureSvc}
}

// writeStructureError maps registry business errors onto the envelope.
func writeStructureError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCodeDejaUtilise):
		response.Conflict(c, 12001, err.Error())
	case errors.Is(err, service.ErrSiteIntrouvable),
		errors.Is(err, service.ErrDepartementIntrouvable),
		errors.Is(err, service.ErrServiceIntrouvable),
		errors.Is(err, service.ErrEquipeIntrouvable),
		errors.Is(err, service.ErrPosteIntrouvable),
		errors.Is(err, service.ErrFonctionIntrouvable):
		response.NotFound(c, 12002, err.Error())
	default:
		response.InternalError(c)
	}
}

// CreateSite
// POST /api/v1/structure/sites
func (h *StructureHandler) CreateSite(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.structureSvc.CreateSite(c.Request.Context(), &req, actorID)
	if err != nil {
		writeStructureError(c, err)
		return
	}
	response.Created(c, result)
}

// ListSites
// GET /api/v1/structure/sites
func (h *StructureHandler) ListSites(c *gin.Context) {
	result, err := h.structureSvc.ListSites(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateDepartement
// POST /api/v1/structure/departements
func (h *StructureHandler) CreateDepartement(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDepartementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.structureSvc.CreateDepartement(c.Request.Context(), &req, actorID)
	if err != nil {
		writeStructureError(c, err)
		return
	}
	response.Created(c, result)
}

// ListDepartements
// GET /api/v1/structure/departements?site_id=
func (h *StructureHandler) ListDepartements(c *gin.Context) {
	result, err := h.structureSvc.ListDepartements(c.Request.Context(), c.Query("site_id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateService
// POST /api/v1/structure/services
func (h *StructureHandler) CreateService(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.structureSvc.CreateService(c.Request.Context(), &req, actorID)
	if err != nil {
		writeStructureError(c, err)
		return
	}
	response.Created(c, result)
}

// ListServices
// GET /api/v1/structure/services?departement_id=
func (h *StructureHandler) ListServices(c *gin.Context) {
	result, err := h.structureSvc.ListServices(c.Request.Context(), c.Query("departement_id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateEquipe
// POST /api/v1/structure/equipes
func (h *StructureHandler) CreateEquipe(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateEquipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.structureSvc.CreateEquipe(c.Request.Context(), &req, actorID)
	if err != nil {
		writeStructureError(c, err)
		return
	}
	response.Created(c, result)
}

// ListEquipes
// GET /api/v1/structure/equipes?service_id=
func (h *StructureHandler) ListEquipes(c *gin.Context) {
	result, err := h.structureSvc.ListEquipes(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreatePoste
// POST /api/v1/structure/postes
func (h *StructureHandler) CreatePoste(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePosteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.structureSvc.CreatePoste(c.Request.Context(), &req, actorID)
	if err != nil {
		writeStructureError(c, err)
		return
	}
	response.Created(c, result)
}

// ListPostes
// GET /api/v1/structure/postes
func (h *StructureHandler) ListPostes(c *gin.Context) {
	result, err := h.structureSvc.ListPostes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateFonction
// POST /api/v1/structure/fonctions
func (h *StructureHandler) CreateFonction(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateFonctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.structureSvc.CreateFonction(c.Request.Context(), &req, actorID)
	if err != nil {
		writeStructureError(c, err)
		return
	}
	response.Created(c, result)
}

// ListFonctions
// GET /api/v1/structure/fonctions
func (h *StructureHandler) ListFonctions(c *gin.Context) {
	result, err := h.structureSvc.ListFonctions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
