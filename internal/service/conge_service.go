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
	ErrCongeChevauchement = errors.New("la période demandée chevauche une demande existante")
	ErrDatesCongeInvalide = errors.New("date_fin doit être postérieure ou égale à date_debut")
	ErrDemandeIntrouvable = errors.New("demande de congé introuvable")
	ErrDemandeCloturee    = errors.New("demande de congé déjà clôturée")
)

// CongeService leave requests and their validation workflow. Submission
// writes the request and its "Soumission Employé" step together; every
// later decision appends a step and moves the current status.
type CongeService interface {
	Create(ctx context.Context, req *dto.CreateDemandeCongeRequest, actorID string) (*dto.DemandeCongeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DemandeCongeResponse, error)
	ListByEmploye(ctx context.Context, employeID string) ([]dto.DemandeCongeResponse, error)
	Decide(ctx context.Context, demandeID string, req *dto.DecideCongeRequest, actorID string) (*dto.DemandeCongeResponse, error)
}

type congeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCongeService creates the CongeService implementation.
func NewCongeService(repo *repository.Repository, logger *zap.Logger) CongeService {
	return &congeService{repo: repo, logger: logger}
}

func (s *congeService) Create(ctx context.Context, req *dto.CreateDemandeCongeRequest, actorID string) (*dto.DemandeCongeResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, req.EmployeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	debut, err := time.Parse(model.DateFormat, req.DateDebut)
	if err != nil {
		return nil, err
	}
	fin, err := time.Parse(model.DateFormat, req.DateFin)
	if err != nil {
		return nil, err
	}
	if fin.Before(debut) {
		return nil, ErrDatesCongeInvalide
	}

	overlap, err := s.repo.Conge.HasOverlap(ctx, req.EmployeID, debut, fin)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrCongeChevauchement
	}

	demande := &model.DemandeConge{
		EmployeID:    req.EmployeID,
		Type:         req.Type,
		DateDebut:    debut,
		DateFin:      fin,
		NbJours:      fin.Sub(debut).Hours()/24 + 1,
		Motif:        req.Motif,
		StatutActuel: model.CongeSoumis,
		CreatedBy:    &actorID,
	}
	validation := &model.ValidationConge{
		ValidateurID: &actorID,
		Niveau:       model.NiveauSoumissionEmploye,
		Decision:     model.DecisionEnAttente,
	}

	if err := s.repo.Conge.CreateWithValidation(ctx, demande, validation); err != nil {
		s.logger.Error("création demande de congé échouée",
			zap.String("employe_id", req.EmployeID), zap.Error(err))
		return nil, err
	}

	demande.Validations = []model.ValidationConge{*validation}
	resp := demandeToResponse(demande)
	return &resp, nil
}

func (s *congeService) GetByID(ctx context.Context, id string) (*dto.DemandeCongeResponse, error) {
	demande, err := s.repo.Conge.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrDemandeIntrouvable)
	}
	resp := demandeToResponse(demande)
	return &resp, nil
}

func (s *congeService) ListByEmploye(ctx context.Context, employeID string) ([]dto.DemandeCongeResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}
	demandes, err := s.repo.Conge.ListByEmploye(ctx, employeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DemandeCongeResponse, 0, len(demandes))
	for i := range demandes {
		out = append(out, demandeToResponse(&demandes[i]))
	}
	return out, nil
}

func (s *congeService) Decide(ctx context.Context, demandeID string, req *dto.DecideCongeRequest, actorID string) (*dto.DemandeCongeResponse, error) {
	demande, err := s.repo.Conge.GetByID(ctx, demandeID)
	if err != nil {
		return nil, notFoundAs(err, ErrDemandeIntrouvable)
	}

	switch demande.StatutActuel {
	case model.CongeApprouve, model.CongeRejete, model.CongeAnnule:
		return nil, ErrDemandeCloturee
	}

	var nouveauStatut string
	switch req.Decision {
	case model.DecisionApprouvee:
		nouveauStatut = model.CongeApprouve
	case model.DecisionRejetee:
		nouveauStatut = model.CongeRejete
	default:
		nouveauStatut = model.CongeEnAttente
	}

	validation := &model.ValidationConge{
		ValidateurID: &actorID,
		Niveau:       req.Niveau,
		Decision:     req.Decision,
		Commentaire:  req.Commentaire,
	}
	if err := s.repo.Conge.AppendValidation(ctx, demandeID, validation, nouveauStatut); err != nil {
		s.logger.Error("validation de congé échouée",
			zap.String("demande_id", demandeID), zap.Error(err))
		return nil, err
	}

	reloaded, err := s.repo.Conge.GetByID(ctx, demandeID)
	if err != nil {
		return nil, err
	}
	resp := demandeToResponse(reloaded)
	return &resp, nil
}

func demandeToResponse(d *model.DemandeConge) dto.DemandeCongeResponse {
	resp := dto.DemandeCongeResponse{
		ID:           d.DemandeID,
		EmployeID:    d.EmployeID,
		Type:         d.Type,
		DateDebut:    d.DateDebut.Format(model.DateFormat),
		DateFin:      d.DateFin.Format(model.DateFormat),
		NbJours:      d.NbJours,
		Motif:        d.Motif,
		StatutActuel: d.StatutActuel,
	}
	for i := range d.Validations {
		v := &d.Validations[i]
		resp.Validations = append(resp.Validations, dto.ValidationCongeResponse{
			ID:           v.ValidationID,
			ValidateurID: v.ValidateurID,
			Niveau:       v.Niveau,
			Decision:     v.Decision,
			Commentaire:  v.Commentaire,
			CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
