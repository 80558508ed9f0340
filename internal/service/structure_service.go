package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

var (
	ErrSiteIntrouvable        = errors.New("site introuvable")
	ErrDepartementIntrouvable = errors.New("département introuvable")
	ErrServiceIntrouvable     = errors.New("service introuvable")
	ErrEquipeIntrouvable      = errors.New("équipe introuvable")
	ErrPosteIntrouvable       = errors.New("poste introuvable")
	ErrFonctionIntrouvable    = errors.New("fonction introuvable")
	ErrCodeDejaUtilise        = errors.New("code déjà utilisé")
)

// StructureService registry of the organizational hierarchy and the
// postes/fonctions referentials. Creation checks the parent exists and
// the code is free; the hierarchy itself is append-only.
type StructureService interface {
	CreateSite(ctx context.Context, req *dto.CreateSiteRequest, actorID string) (*dto.StructureNodeResponse, error)
	ListSites(ctx context.Context) ([]dto.StructureNodeResponse, error)

	CreateDepartement(ctx context.Context, req *dto.CreateDepartementRequest, actorID string) (*dto.StructureNodeResponse, error)
	ListDepartements(ctx context.Context, siteID string) ([]dto.StructureNodeResponse, error)

	CreateService(ctx context.Context, req *dto.CreateServiceRequest, actorID string) (*dto.StructureNodeResponse, error)
	ListServices(ctx context.Context, departementID string) ([]dto.StructureNodeResponse, error)

	CreateEquipe(ctx context.Context, req *dto.CreateEquipeRequest, actorID string) (*dto.StructureNodeResponse, error)
	ListEquipes(ctx context.Context, serviceID string) ([]dto.StructureNodeResponse, error)

	CreatePoste(ctx context.Context, req *dto.CreatePosteRequest, actorID string) (*dto.ReferentielResponse, error)
	ListPostes(ctx context.Context) ([]dto.ReferentielResponse, error)

	CreateFonction(ctx context.Context, req *dto.CreateFonctionRequest, actorID string) (*dto.ReferentielResponse, error)
	ListFonctions(ctx context.Context) ([]dto.ReferentielResponse, error)
}

type structureService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStructureService creates the StructureService implementation.
func NewStructureService(repo *repository.Repository, logger *zap.Logger) StructureService {
	return &structureService{repo: repo, logger: logger}
}

// ── sites ──

func (s *structureService) CreateSite(ctx context.Context, req *dto.CreateSiteRequest, actorID string) (*dto.StructureNodeResponse, error) {
	if _, err := s.repo.Structure.GetSiteByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	site := &model.Site{
		Code:  req.Code,
		Nom:   req.Nom,
		Ville: req.Ville,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if err := s.repo.Structure.CreateSite(ctx, site); err != nil {
		s.logger.Error("création site échouée", zap.Error(err))
		return nil, err
	}
	return siteToNode(site), nil
}

func (s *structureService) ListSites(ctx context.Context) ([]dto.StructureNodeResponse, error) {
	sites, err := s.repo.Structure.ListSites(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StructureNodeResponse, 0, len(sites))
	for i := range sites {
		out = append(out, *siteToNode(&sites[i]))
	}
	return out, nil
}

// ── départements ──

func (s *structureService) CreateDepartement(ctx context.Context, req *dto.CreateDepartementRequest, actorID string) (*dto.StructureNodeResponse, error) {
	if _, err := s.repo.Structure.GetSiteByID(ctx, req.SiteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSiteIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Structure.GetDepartementByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dept := &model.Departement{
		SiteID: req.SiteID,
		Code:   req.Code,
		Nom:    req.Nom,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if err := s.repo.Structure.CreateDepartement(ctx, dept); err != nil {
		s.logger.Error("création département échouée", zap.Error(err))
		return nil, err
	}
	return &dto.StructureNodeResponse{
		ID:       dept.DepartementID,
		ParentID: dept.SiteID,
		Code:     dept.Code,
		Nom:      dept.Nom,
	}, nil
}

func (s *structureService) ListDepartements(ctx context.Context, siteID string) ([]dto.StructureNodeResponse, error) {
	depts, err := s.repo.Structure.ListDepartements(ctx, siteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StructureNodeResponse, 0, len(depts))
	for i := range depts {
		out = append(out, dto.StructureNodeResponse{
			ID:       depts[i].DepartementID,
			ParentID: depts[i].SiteID,
			Code:     depts[i].Code,
			Nom:      depts[i].Nom,
		})
	}
	return out, nil
}

// ── services ──

func (s *structureService) CreateService(ctx context.Context, req *dto.CreateServiceRequest, actorID string) (*dto.StructureNodeResponse, error) {
	if _, err := s.repo.Structure.GetDepartementByID(ctx, req.DepartementID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartementIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Structure.GetServiceByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	svc := &model.Service{
		DepartementID: req.DepartementID,
		Code:          req.Code,
		Nom:           req.Nom,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if err := s.repo.Structure.CreateService(ctx, svc); err != nil {
		s.logger.Error("création service échouée", zap.Error(err))
		return nil, err
	}
	return &dto.StructureNodeResponse{
		ID:       svc.ServiceID,
		ParentID: svc.DepartementID,
		Code:     svc.Code,
		Nom:      svc.Nom,
	}, nil
}

func (s *structureService) ListServices(ctx context.Context, departementID string) ([]dto.StructureNodeResponse, error) {
	svcs, err := s.repo.Structure.ListServices(ctx, departementID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StructureNodeResponse, 0, len(svcs))
	for i := range svcs {
		out = append(out, dto.StructureNodeResponse{
			ID:       svcs[i].ServiceID,
			ParentID: svcs[i].DepartementID,
			Code:     svcs[i].Code,
			Nom:      svcs[i].Nom,
		})
	}
	return out, nil
}

// ── équipes ──

func (s *structureService) CreateEquipe(ctx context.Context, req *dto.CreateEquipeRequest, actorID string) (*dto.StructureNodeResponse, error) {
	if _, err := s.repo.Structure.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceIntrouvable
		}
		return nil, err
	}
	if _, err := s.repo.Structure.GetEquipeByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	equipe := &model.Equipe{
		ServiceID: req.ServiceID,
		Code:      req.Code,
		Nom:       req.Nom,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if err := s.repo.Structure.CreateEquipe(ctx, equipe); err != nil {
		s.logger.Error("création équipe échouée", zap.Error(err))
		return nil, err
	}
	return &dto.StructureNodeResponse{
		ID:       equipe.EquipeID,
		ParentID: equipe.ServiceID,
		Code:     equipe.Code,
		Nom:      equipe.Nom,
	}, nil
}

func (s *structureService) ListEquipes(ctx context.Context, serviceID string) ([]dto.StructureNodeResponse, error) {
	equipes, err := s.repo.Structure.ListEquipes(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StructureNodeResponse, 0, len(equipes))
	for i := range equipes {
		out = append(out, dto.StructureNodeResponse{
			ID:       equipes[i].EquipeID,
			ParentID: equipes[i].ServiceID,
			Code:     equipes[i].Code,
			Nom:      equipes[i].Nom,
		})
	}
	return out, nil
}

// ── postes / fonctions ──

func (s *structureService) CreatePoste(ctx context.Context, req *dto.CreatePosteRequest, actorID string) (*dto.ReferentielResponse, error) {
	if _, err := s.repo.Structure.GetPosteByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	poste := &model.Poste{
		Code:     req.Code,
		Intitule: req.Intitule,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if err := s.repo.Structure.CreatePoste(ctx, poste); err != nil {
		s.logger.Error("création poste échouée", zap.Error(err))
		return nil, err
	}
	return &dto.ReferentielResponse{ID: poste.PosteID, Code: poste.Code, Intitule: poste.Intitule}, nil
}

func (s *structureService) ListPostes(ctx context.Context) ([]dto.ReferentielResponse, error) {
	postes, err := s.repo.Structure.ListPostes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReferentielResponse, 0, len(postes))
	for i := range postes {
		out = append(out, dto.ReferentielResponse{
			ID:       postes[i].PosteID,
			Code:     postes[i].Code,
			Intitule: postes[i].Intitule,
		})
	}
	return out, nil
}

func (s *structureService) CreateFonction(ctx context.Context, req *dto.CreateFonctionRequest, actorID string) (*dto.ReferentielResponse, error) {
	if _, err := s.repo.Structure.GetFonctionByCode(ctx, req.Code); err == nil {
		return nil, ErrCodeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fonction := &model.Fonction{
		Code:     req.Code,
		Intitule: req.Intitule,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if err := s.repo.Structure.CreateFonction(ctx, fonction); err != nil {
		s.logger.Error("création fonction échouée", zap.Error(err))
		return nil, err
	}
	return &dto.ReferentielResponse{ID: fonction.FonctionID, Code: fonction.Code, Intitule: fonction.Intitule}, nil
}

func (s *structureService) ListFonctions(ctx context.Context) ([]dto.ReferentielResponse, error) {
	fonctions, err := s.repo.Structure.ListFonctions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReferentielResponse, 0, len(fonctions))
	for i := range fonctions {
		out = append(out, dto.ReferentielResponse{
			ID:       fonctions[i].FonctionID,
			Code:     fonctions[i].Code,
			Intitule: fonctions[i].Intitule,
		})
	}
	return out, nil
}

func siteToNode(site *model.Site) *dto.StructureNodeResponse {
	return &dto.StructureNodeResponse{
		ID:    site.SiteID,
		Code:  site.Code,
		Nom:   site.Nom,
		Ville: site.Ville,
	}
}
