package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

var (
	ErrContratActifExistant      = errors.New("un contrat actif existe déjà pour cet employé")
	ErrDateFinPrevueRequise      = errors.New("date_fin_prevue requise pour un contrat à durée déterminée")
	ErrDateFinPrevueInterdite    = errors.New("date_fin_prevue doit être nulle pour un CDI")
	ErrContratParentRequis       = errors.New("parent_contract_id requis pour un avenant")
	ErrContratParentIntrouvable  = errors.New("contrat parent introuvable")
	ErrContratParentAutreEmploye = errors.New("le contrat parent appartient à un autre employé")
	ErrContratIntrouvable        = errors.New("contrat introuvable")
)

// ContratService contracts and avenants. One active non-avenant
// contract per employee; a non-avenant with a poste mirrors it onto the
// employee's live record.
type ContratService interface {
	Create(ctx context.Context, req *dto.CreateContratRequest, actorID string) (*dto.ContratResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ContratResponse, error)
	ListByEmploye(ctx context.Context, employeID string) ([]dto.ContratResponse, error)
}

type contratService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContratService creates the ContratService implementation.
func NewContratService(repo *repository.Repository, logger *zap.Logger) ContratService {
	return &contratService{repo: repo, logger: logger}
}

func (s *contratService) Create(ctx context.Context, req *dto.CreateContratRequest, actorID string) (*dto.ContratResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, req.EmployeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	// fixed-term types need a planned end date; a CDI has none
	if req.Type == model.ContratCDI && req.DateFinPrevue != nil {
		return nil, ErrDateFinPrevueInterdite
	}
	if req.Type != model.ContratCDI && req.DateFinPrevue == nil {
		return nil, ErrDateFinPrevueRequise
	}

	if req.IsAvenant {
		if req.ParentContractID == nil {
			return nil, ErrContratParentRequis
		}
		parent, err := s.repo.Contrat.GetByID(ctx, *req.ParentContractID)
		if err != nil {
			return nil, notFoundAs(err, ErrContratParentIntrouvable)
		}
		if parent.EmployeID != req.EmployeID {
			return nil, ErrContratParentAutreEmploye
		}
	} else {
		if _, err := s.repo.Contrat.GetActifNonAvenant(ctx, req.EmployeID); err == nil {
			return nil, ErrContratActifExistant
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if req.PosteID != nil {
		if _, err := s.repo.Structure.GetPosteByID(ctx, *req.PosteID); err != nil {
			return nil, notFoundAs(err, ErrPosteIntrouvable)
		}
	}

	debut, err := time.Parse(model.DateFormat, req.DateDebut)
	if err != nil {
		return nil, err
	}

	contrat := &model.Contrat{
		EmployeID:        req.EmployeID,
		Type:             req.Type,
		Statut:           model.ContratActif,
		DateDebut:        debut,
		PosteID:          req.PosteID,
		SalaireDeBase:    req.SalaireDeBase,
		IsAvenant:        req.IsAvenant,
		ParentContractID: req.ParentContractID,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	if req.DateFinPrevue != nil {
		finPrevue, err := time.Parse(model.DateFormat, *req.DateFinPrevue)
		if err != nil {
			return nil, err
		}
		contrat.DateFinPrevue = &finPrevue
	}

	if err := s.repo.Contrat.Create(ctx, contrat); err != nil {
		s.logger.Error("création contrat échouée",
			zap.String("employe_id", req.EmployeID), zap.Error(err))
		return nil, err
	}

	resp := contratToResponse(contrat)
	return &resp, nil
}

func (s *contratService) GetByID(ctx context.Context, id string) (*dto.ContratResponse, error) {
	contrat, err := s.repo.Contrat.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrContratIntrouvable)
	}
	resp := contratToResponse(contrat)
	return &resp, nil
}

func (s *contratService) ListByEmploye(ctx context.Context, employeID string) ([]dto.ContratResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}
	contrats, err := s.repo.Contrat.ListByEmploye(ctx, employeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContratResponse, 0, len(contrats))
	for i := range contrats {
		out = append(out, contratToResponse(&contrats[i]))
	}
	return out, nil
}

func contratToResponse(c *model.Contrat) dto.ContratResponse {
	resp := dto.ContratResponse{
		ID:               c.ContratID,
		EmployeID:        c.EmployeID,
		Type:             c.Type,
		Statut:           c.Statut,
		DateDebut:        c.DateDebut.Format(model.DateFormat),
		PosteID:          c.PosteID,
		SalaireDeBase:    c.SalaireDeBase,
		IsAvenant:        c.IsAvenant,
		ParentContractID: c.ParentContractID,
	}
	if c.DateFinPrevue != nil {
		v := c.DateFinPrevue.Format(model.DateFormat)
		resp.DateFinPrevue = &v
	}
	if c.DateFinReelle != nil {
		v := c.DateFinReelle.Format(model.DateFormat)
		resp.DateFinReelle = &v
	}
	return resp
}
