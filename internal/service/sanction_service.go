package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

var (
	ErrDateEffetInvalide        = errors.New("date_effet doit être postérieure ou égale à date_constatation")
	ErrJoursMiseAPiedRequis     = errors.New("jours_mise_a_pied requis pour une mise à pied")
	ErrJoursMiseAPiedInattendus = errors.New("jours_mise_a_pied réservé au type Mise à pied")
)

// SanctionService disciplinary sanctions. A Licenciement carries its
// side effects (status flip, contract closure) in the same transaction
// as the insert.
type SanctionService interface {
	Create(ctx context.Context, req *dto.CreateSanctionRequest, actorID string) (*dto.SanctionResponse, error)
	ListByEmploye(ctx context.Context, employeID string) ([]dto.SanctionResponse, error)
}

type sanctionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSanctionService creates the SanctionService implementation.
func NewSanctionService(repo *repository.Repository, logger *zap.Logger) SanctionService {
	return &sanctionService{repo: repo, logger: logger}
}

func (s *sanctionService) Create(ctx context.Context, req *dto.CreateSanctionRequest, actorID string) (*dto.SanctionResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, req.EmployeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	constatation, err := time.Parse(model.DateFormat, req.DateConstatation)
	if err != nil {
		return nil, err
	}
	effet, err := time.Parse(model.DateFormat, req.DateEffet)
	if err != nil {
		return nil, err
	}
	if effet.Before(constatation) {
		return nil, ErrDateEffetInvalide
	}

	if req.Type == model.SanctionMiseAPied && req.JoursMiseAPied == nil {
		return nil, ErrJoursMiseAPiedRequis
	}
	if req.Type != model.SanctionMiseAPied && req.JoursMiseAPied != nil {
		return nil, ErrJoursMiseAPiedInattendus
	}

	sanction := &model.Sanction{
		EmployeID:        req.EmployeID,
		Type:             req.Type,
		DateConstatation: constatation,
		DateEffet:        effet,
		JoursMiseAPied:   req.JoursMiseAPied,
		Motif:            req.Motif,
		CreatedBy:        &actorID,
	}

	if req.Type == model.SanctionLicenciement {
		err = s.repo.Sanction.CreateLicenciement(ctx, sanction, effet)
	} else {
		err = s.repo.Sanction.Create(ctx, sanction)
	}
	if err != nil {
		s.logger.Error("création sanction échouée",
			zap.String("employe_id", req.EmployeID),
			zap.String("type", req.Type),
			zap.Error(err))
		return nil, err
	}

	if req.Type == model.SanctionLicenciement {
		s.logger.Info("licenciement prononcé",
			zap.String("employe_id", req.EmployeID),
			zap.String("date_effet", req.DateEffet))
	}

	resp := sanctionToResponse(sanction)
	return &resp, nil
}

func (s *sanctionService) ListByEmploye(ctx context.Context, employeID string) ([]dto.SanctionResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}
	sanctions, err := s.repo.Sanction.ListByEmploye(ctx, employeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SanctionResponse, 0, len(sanctions))
	for i := range sanctions {
		out = append(out, sanctionToResponse(&sanctions[i]))
	}
	return out, nil
}

func sanctionToResponse(sa *model.Sanction) dto.SanctionResponse {
	return dto.SanctionResponse{
		ID:               sa.SanctionID,
		EmployeID:        sa.EmployeID,
		Type:             sa.Type,
		DateConstatation: sa.DateConstatation.Format(model.DateFormat),
		DateEffet:        sa.DateEffet.Format(model.DateFormat),
		JoursMiseAPied:   sa.JoursMiseAPied,
		Motif:            sa.Motif,
	}
}
