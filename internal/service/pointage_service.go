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
	ErrPointageExistant      = errors.New("pointage déjà enregistré pour cette date")
	ErrPointageIntrouvable   = errors.New("aucun pointage pour cette date")
	ErrSortieDejaEnregistree = errors.New("heure de sortie déjà enregistrée")
	ErrMoisInvalide          = errors.New("mois invalide, format attendu AAAA-MM")
)

// PointageService daily attendance. Check-in creates the record with
// the entry time only; checkout runs the hours engine against the day's
// holiday/Sunday status and writes the breakdown exactly once.
type PointageService interface {
	Checkin(ctx context.Context, req *dto.CheckinRequest) (*dto.CheckinResponse, error)
	Checkout(ctx context.Context, employeID string, req *dto.CheckoutRequest) (*dto.PointageResponse, error)
	ListMois(ctx context.Context, employeID, mois string) ([]dto.PointageResponse, error)
}

type pointageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPointageService creates the PointageService implementation.
func NewPointageService(repo *repository.Repository, logger *zap.Logger) PointageService {
	return &pointageService{repo: repo, logger: logger}
}

func (s *pointageService) Checkin(ctx context.Context, req *dto.CheckinRequest) (*dto.CheckinResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, req.EmployeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	if _, err := parseHeure(req.HeureEntree); err != nil {
		return nil, err
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Pointage.GetByEmployeAndDate(ctx, req.EmployeID, date); err == nil {
		return nil, ErrPointageExistant
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pointage := &model.Pointage{
		EmployeID:   req.EmployeID,
		Date:        date,
		HeureEntree: req.HeureEntree,
	}
	if err := s.repo.Pointage.Create(ctx, pointage); err != nil {
		s.logger.Error("création pointage échouée",
			zap.String("employe_id", req.EmployeID), zap.Error(err))
		return nil, err
	}

	return &dto.CheckinResponse{
		PointageID:  pointage.PointageID,
		EmployeID:   pointage.EmployeID,
		Date:        date.Format(model.DateFormat),
		HeureEntree: pointage.HeureEntree,
	}, nil
}

func (s *pointageService) Checkout(ctx context.Context, employeID string, req *dto.CheckoutRequest) (*dto.PointageResponse, error) {
	date, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	pointage, err := s.repo.Pointage.GetByEmployeAndDate(ctx, employeID, date)
	if err != nil {
		return nil, notFoundAs(err, ErrPointageIntrouvable)
	}
	if pointage.HeureSortie != nil {
		return nil, ErrSortieDejaEnregistree
	}

	ferie := false
	majoration := 0.0
	if jf, err := s.repo.JourFerie.FindForDate(ctx, date); err == nil {
		ferie = true
		majoration = jf.MajorationPourcentage
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	dimanche := date.Weekday() == time.Sunday

	res, err := CalculateHours(pointage.HeureEntree, req.HeureSortie, ferie, dimanche, majoration)
	if err != nil {
		return nil, err
	}

	sortie := req.HeureSortie
	pointage.HeureSortie = &sortie
	pointage.HeuresNormales = res.HeuresNormales
	pointage.HeuresSup15 = res.HeuresSup15
	pointage.HeuresSup40 = res.HeuresSup40
	pointage.MajorationPourcentage = res.MajorationPourcentage
	pointage.PanierRepasDu = res.PanierRepasDu
	// the surcharged quantity only lands in this column on special days;
	// ordinary-day overtime already lives in the two tier columns
	if res.MajorationPourcentage > 0 {
		pointage.HeuresSupHorsMajoration = res.HeuresSupplementaires
	} else {
		pointage.HeuresSupHorsMajoration = 0
	}

	if err := s.repo.Pointage.UpdateSortie(ctx, pointage); err != nil {
		s.logger.Error("enregistrement sortie échoué",
			zap.String("employe_id", employeID), zap.Error(err))
		return nil, err
	}

	resp := pointageToResponse(pointage)
	return &resp, nil
}

func (s *pointageService) ListMois(ctx context.Context, employeID, mois string) ([]dto.PointageResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		return nil, notFoundAs(err, ErrEmployeIntrouvable)
	}

	debut, fin, err := moisBornes(mois)
	if err != nil {
		return nil, err
	}

	pointages, err := s.repo.Pointage.ListByEmployeMois(ctx, employeID, debut, fin)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PointageResponse, 0, len(pointages))
	for i := range pointages {
		out = append(out, pointageToResponse(&pointages[i]))
	}
	return out, nil
}

// resolveDate parses an optional wire date, defaulting to today.
func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return dateOnly(time.Now()), nil
	}
	d, err := time.Parse(model.DateFormat, raw)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// moisBornes returns the [debut, fin) bounds of a "AAAA-MM" month,
// defaulting to the current month.
func moisBornes(mois string) (time.Time, time.Time, error) {
	var debut time.Time
	if mois == "" {
		now := time.Now()
		debut = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		debut, err = time.Parse("2006-01", mois)
		if err != nil {
			return time.Time{}, time.Time{}, ErrMoisInvalide
		}
	}
	return debut, debut.AddDate(0, 1, 0), nil
}

func pointageToResponse(p *model.Pointage) dto.PointageResponse {
	return dto.PointageResponse{
		ID:                      p.PointageID,
		EmployeID:               p.EmployeID,
		Date:                    p.Date.Format(model.DateFormat),
		HeureEntree:             p.HeureEntree,
		HeureSortie:             p.HeureSortie,
		HeuresNormales:          p.HeuresNormales,
		HeuresSup15:             p.HeuresSup15,
		HeuresSup40:             p.HeuresSup40,
		HeuresSupHorsMajoration: p.HeuresSupHorsMajoration,
		MajorationPourcentage:   p.MajorationPourcentage,
		PanierRepasDu:           p.PanierRepasDu,
	}
}
