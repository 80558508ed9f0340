package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// StructureRepository data access for the organizational registry
// (sites, départements, services, équipes, postes, fonctions).
type StructureRepository interface {
	CreateSite(ctx context.Context, site *model.Site) error
	GetSiteByID(ctx context.Context, id string) (*model.Site, error)
	GetSiteByCode(ctx context.Context, code string) (*model.Site, error)
	ListSites(ctx context.Context) ([]model.Site, error)

	CreateDepartement(ctx context.Context, dept *model.Departement) error
	GetDepartementByID(ctx context.Context, id string) (*model.Departement, error)
	GetDepartementByCode(ctx context.Context, code string) (*model.Departement, error)
	ListDepartements(ctx context.Context, siteID string) ([]model.Departement, error)

	CreateService(ctx context.Context, svc *model.Service) error
	GetServiceByID(ctx context.Context, id string) (*model.Service, error)
	GetServiceByCode(ctx context.Context, code string) (*model.Service, error)
	ListServices(ctx context.Context, departementID string) ([]model.Service, error)

	CreateEquipe(ctx context.Context, equipe *model.Equipe) error
	GetEquipeByID(ctx context.Context, id string) (*model.Equipe, error)
	GetEquipeByCode(ctx context.Context, code string) (*model.Equipe, error)
	ListEquipes(ctx context.Context, serviceID string) ([]model.Equipe, error)

	CreatePoste(ctx context.Context, poste *model.Poste) error
	GetPosteByID(ctx context.Context, id string) (*model.Poste, error)
	GetPosteByCode(ctx context.Context, code string) (*model.Poste, error)
	ListPostes(ctx context.Context) ([]model.Poste, error)

	CreateFonction(ctx context.Context, fonction *model.Fonction) error
	GetFonctionByID(ctx context.Context, id string) (*model.Fonction, error)
	GetFonctionByCode(ctx context.Context, code string) (*model.Fonction, error)
	ListFonctions(ctx context.Context) ([]model.Fonction, error)
}

type structureRepo struct {
	db *gorm.DB
}

// NewStructureRepo creates the GORM implementation.
func NewStructureRepo(db *gorm.DB) StructureRepository {
	return &structureRepo{db: db}
}

// ── sites ──

func (r *structureRepo) CreateSite(ctx context.Context, site *model.Site) error {
	return r.db.WithContext(ctx).Create(site).Error
}

func (r *structureRepo) GetSiteByID(ctx context.Context, id string) (*model.Site, error) {
	var site model.Site
	err := r.db.WithContext(ctx).Where("site_id = ?", id).First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *structureRepo) GetSiteByCode(ctx context.Context, code string) (*model.Site, error) {
	var site model.Site
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *structureRepo) ListSites(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	err := r.db.WithContext(ctx).Order("code ASC").Find(&sites).Error
	return sites, err
}

// ── départements ──

func (r *structureRepo) CreateDepartement(ctx context.Context, dept *model.Departement) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *structureRepo) GetDepartementByID(ctx context.Context, id string) (*model.Departement, error) {
	var dept model.Departement
	err := r.db.WithContext(ctx).Where("departement_id = ?", id).First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *structureRepo) GetDepartementByCode(ctx context.Context, code string) (*model.Departement, error) {
	var dept model.Departement
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *structureRepo) ListDepartements(ctx context.Context, siteID string) ([]model.Departement, error) {
	q := r.db.WithContext(ctx).Order("code ASC")
	if siteID != "" {
		q = q.Where("site_id = ?", siteID)
	}
	var depts []model.Departement
	err := q.Find(&depts).Error
	return depts, err
}

// ── services ──

func (r *structureRepo) CreateService(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *structureRepo) GetServiceByID(ctx context.Context, id string) (*model.Service, error) {
	var svc model.Service
	err := r.db.WithContext(ctx).Where("service_id = ?", id).First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *structureRepo) GetServiceByCode(ctx context.Context, code string) (*model.Service, error) {
	var svc model.Service
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *structureRepo) ListServices(ctx context.Context, departementID string) ([]model.Service, error) {
	q := r.db.WithContext(ctx).Order("code ASC")
	if departementID != "" {
		q = q.Where("departement_id = ?", departementID)
	}
	var svcs []model.Service
	err := q.Find(&svcs).Error
	return svcs, err
}

// ── équipes ──

func (r *structureRepo) CreateEquipe(ctx context.Context, equipe *model.Equipe) error {
	return r.db.WithContext(ctx).Create(equipe).Error
}

func (r *structureRepo) GetEquipeByID(ctx context.Context, id string) (*model.Equipe, error) {
	var equipe model.Equipe
	err := r.db.WithContext(ctx).Where("equipe_id = ?", id).First(&equipe).Error
	if err != nil {
		return nil, err
	}
	return &equipe, nil
}

func (r *structureRepo) GetEquipeByCode(ctx context.Context, code string) (*model.Equipe, error) {
	var equipe model.Equipe
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&equipe).Error
	if err != nil {
		return nil, err
	}
	return &equipe, nil
}

func (r *structureRepo) ListEquipes(ctx context.Context, serviceID string) ([]model.Equipe, error) {
	q := r.db.WithContext(ctx).Order("code ASC")
	if serviceID != "" {
		q = q.Where("service_id = ?", serviceID)
	}
	var equipes []model.Equipe
	err := q.Find(&equipes).Error
	return equipes, err
}

// ── postes ──

func (r *structureRepo) CreatePoste(ctx context.Context, poste *model.Poste) error {
	return r.db.WithContext(ctx).Create(poste).Error
}

func (r *structureRepo) GetPosteByID(ctx context.Context, id string) (*model.Poste, error) {
	var poste model.Poste
	err := r.db.WithContext(ctx).Where("poste_id = ?", id).First(&poste).Error
	if err != nil {
		return nil, err
	}
	return &poste, nil
}

func (r *structureRepo) GetPosteByCode(ctx context.Context, code string) (*model.Poste, error) {
	var poste model.Poste
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&poste).Error
	if err != nil {
		return nil, err
	}
	return &poste, nil
}

func (r *structureRepo) ListPostes(ctx context.Context) ([]model.Poste, error) {
	var postes []model.Poste
	err := r.db.WithContext(ctx).Order("code ASC").Find(&postes).Error
	return postes, err
}

// ── fonctions ──

func (r *structureRepo) CreateFonction(ctx context.Context, fonction *model.Fonction) error {
	return r.db.WithContext(ctx).Create(fonction).Error
}

func (r *structureRepo) GetFonctionByID(ctx context.Context, id string) (*model.Fonction, error) {
	var fonction model.Fonction
	err := r.db.WithContext(ctx).Where("fonction_id = ?", id).First(&fonction).Error
	if err != nil {
		return nil, err
	}
	return &fonction, nil
}

func (r *structureRepo) GetFonctionByCode(ctx context.Context, code string) (*model.Fonction, error) {
	var fonction model.Fonction
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&fonction).Error
	if err != nil {
		return nil, err
	}
	return &fonction, nil
}

func (r *structureRepo) ListFonctions(ctx context.Context) ([]model.Fonction, error) {
	var fonctions []model.Fonction
	err := r.db.WithContext(ctx).Order("code ASC").Find(&fonctions).Error
	return fonctions, err
}
