package handler

import "github.com/Adoulaziztalla/SOGAS-V3/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth      *AuthHandler
	Structure *StructureHandler
	Employe   *EmployeHandler
	Pointage  *PointageHandler
	JourFerie *JourFerieHandler
	Conge     *CongeHandler
	Contrat   *ContratHandler
	Sanction  *SanctionHandler
	Medical   *MedicalHandler
	Admin     *AdminHandler
	Export    *ExportHandler
}

// NewHandler wires the handlers onto the service aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Structure: NewStructureHandler(svc.Structure),
		Employe:   NewEmployeHandler(svc.Employe),
		Pointage:  NewPointageHandler(svc.Pointage),
		JourFerie: NewJourFerieHandler(svc.JourFerie),
		Conge:     NewCongeHandler(svc.Conge),
		Contrat:   NewContratHandler(svc.Contrat),
		Sanction:  NewSanctionHandler(svc.Sanction),
		Medical:   NewMedicalHandler(svc.Medical),
		Admin:     NewAdminHandler(svc.Admin),
		Export:    NewExportHandler(svc.Export),
	}
}
