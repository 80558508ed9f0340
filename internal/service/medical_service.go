package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

// MedicalService occupational-health visits and work accidents.
type MedicalService interface {
	CreateVisite(ctx context.Context, req *dto.CreateVisiteMedicaleRequest, actorID string) (*dto.VisiteMedicaleResponse, error)
	ListVisites(ctx context.Context, employeID string) ([]dto.VisiteMedicaleResponse, error)
	CreateAccident(ctx context.Context, req *dto.CreateAccidentRequest, actorID string) (*dto.AccidentResponse, error)
	ListAccidents(ctx context.Context, employeID string) ([]dto.AccidentResponse, error)
}

type medicalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMedicalService creates the MedicalService implementation.
func NewMedicalService(repo *repository.Repository, logger *zap.Logger) MedicalService {
	return &medicalService{repo: repo, logger: logger}
}

func (s *medicalService) CreateVisite(ctx context.Context, req *dto.CreateVisiteMedicaleRequest, actorID string) (*dto.VisiteMedicaleResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, req.EmployeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	date, err := time.Parse(model.DateFormat, req.DateVisite)
	if err != nil {
		return nil, err
	}

	visite := &model.VisiteMedicale{
		EmployeID:   req.EmployeID,
		DateVisite:  date,
		Type:        req.Type,
		Aptitude:    req.Aptitude,
		Commentaire: req.Commentaire,
		CreatedBy:   &actorID,
	}
	if err := s.repo.Medical.CreateVisite(ctx, visite); err != nil {
		s.logger.Error("création visite médicale échouée",
			zap.String("employe_id", req.EmployeID), zap.Error(err))
		return nil, err
	}

	return &dto.VisiteMedicaleResponse{
		ID:          visite.VisiteID,
		EmployeID:   visite.EmployeID,
		DateVisite:  visite.DateVisite.Format(model.DateFormat),
		Type:        visite.Type,
		Aptitude:    visite.Aptitude,
		Commentaire: visite.Commentaire,
	}, nil
}

func (s *medicalService) ListVisites(ctx context.Context, employeID string) ([]dto.VisiteMedicaleResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}
	visites, err := s.repo.Medical.ListVisitesByEmploye(ctx, employeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VisiteMedicaleResponse, 0, len(visites))
	for i := range visites {
		v := &visites[i]
		out = append(out, dto.VisiteMedicaleResponse{
			ID:          v.VisiteID,
			EmployeID:   v.EmployeID,
			DateVisite:  v.DateVisite.Format(model.DateFormat),
			Type:        v.Type,
			Aptitude:    v.Aptitude,
			Commentaire: v.Commentaire,
		})
	}
	return out, nil
}

func (s *medicalService) CreateAccident(ctx context.Context, req *dto.CreateAccidentRequest, actorID string) (*dto.AccidentResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, req.EmployeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	date, err := time.Parse(model.DateFormat, req.DateAccident)
	if err != nil {
		return nil, err
	}

	accident := &model.AccidentTravail{
		EmployeID:    req.EmployeID,
		DateAccident: date,
		Lieu:         req.Lieu,
		Description:  req.Description,
		Gravite:      req.Gravite,
		JoursArret:   req.JoursArret,
		CreatedBy:    &actorID,
	}
	if err := s.repo.Medical.CreateAccident(ctx, accident); err != nil {
		s.logger.Error("déclaration accident échouée",
			zap.String("employe_id", req.EmployeID), zap.Error(err))
		return nil, err
	}

	return &dto.AccidentResponse{
		ID:           accident.AccidentID,
		EmployeID:    accident.EmployeID,
		DateAccident: accident.DateAccident.Format(model.DateFormat),
		Lieu:         accident.Lieu,
		Description:  accident.Description,
		Gravite:      accident.Gravite,
		JoursArret:   accident.JoursArret,
	}, nil
}

func (s *medicalService) ListAccidents(ctx context.Context, employeID string) ([]dto.AccidentResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}
	accidents, err := s.repo.Medical.ListAccidentsByEmploye(ctx, employeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccidentResponse, 0, len(accidents))
	for i := range accidents {
		a := &accidents[i]
		out = append(out, dto.AccidentResponse{
			ID:           a.AccidentID,
			EmployeID:    a.EmployeID,
			DateAccident: a.DateAccident.Format(model.DateFormat),
			Lieu:         a.Lieu,
			Description:  a.Description,
			Gravite:      a.Gravite,
			JoursArret:   a.JoursArret,
		})
	}
	return out, nil
}
