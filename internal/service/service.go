package service

import (
	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/config"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/jwt"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth      AuthService
	Structure StructureService
	Employe   EmployeService
	Pointage  PointageService
	JourFerie JourFerieService
	Conge     CongeService
	Contrat   ContratService
	Sanction  SanctionService
	Medical   MedicalService
	Admin     AdminService
	Export    ExportService
}

// NewService wires the implementations. rdb may be nil when Redis is
// unavailable; token revocation then degrades to TTL-only expiry.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Structure: NewStructureService(repo, logger),
		Employe:   NewEmployeService(repo, logger),
		Pointage:  NewPointageService(repo, logger),
		JourFerie: NewJourFerieService(repo, logger),
		Conge:     NewCongeService(repo, logger),
		Contrat:   NewContratService(repo, logger),
		Sanction:  NewSanctionService(repo, logger),
		Medical:   NewMedicalService(repo, logger),
		Admin:     NewAdminService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}
