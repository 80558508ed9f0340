package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// ExportHandler timesheet export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPointages streams the monthly timesheet as .xlsx.
// GET /api/v1/exports/pointages/:employeId?mois=AAAA-MM
func (h *ExportHandler) ExportPointages(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPointagesMois(c.Request.Context(), c.Param("employeId"), c.Query("mois"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeIntrouvable):
			response.NotFound(c, 13003, err.Error())
		case errors.Is(err, service.ErrExportAucunPointage):
			response.NotFound(c, 19002, err.Error())
		case errors.Is(err, service.ErrMoisInvalide):
			response.BadRequest(c, 14005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
