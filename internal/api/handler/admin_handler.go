package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// AdminHandler document library and alert endpoints.
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// CreateDocument
// POST /api/v1/documents
func (h *AdminHandler) CreateDocument(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.adminSvc.CreateDocument(c.Request.Context(), &req, actorID)
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

// ListDocuments
// GET /api/v1/documents
func (h *AdminHandler) ListDocuments(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	list, total, err := h.adminSvc.ListDocuments(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// CreateAlerte
// POST /api/v1/alertes
func (h *AdminHandler) CreateAlerte(c *gin.Context) {
	actorID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAlerteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.adminSvc.CreateAlerte(c.Request.Context(), &req, actorID)
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

// ListAlertes
// GET /api/v1/alertes?non_vues=true
func (h *AdminHandler) ListAlertes(c *gin.Context) {
	nonVues := c.Query("non_vues") == "true"
	result, err := h.adminSvc.ListAlertes(c.Request.Context(), nonVues)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// MarkAlerteSeen
// PUT /api/v1/alertes/:id/vue
func (h *AdminHandler) MarkAlerteSeen(c *gin.Context) {
	if err := h.adminSvc.MarkAlerteSeen(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAlerteIntrouvable) {
			response.NotFound(c, 19001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
