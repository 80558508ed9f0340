package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

var (
	ErrJourFerieExistant    = errors.New("un jour férié existe déjà à cette date")
	ErrJourFerieIntrouvable = errors.New("jour férié introuvable")
)

// JourFerieService holiday calendar management plus the iCalendar
// export consumed by the site display screens.
type JourFerieService interface {
	Create(ctx context.Context, req *dto.CreateJourFerieRequest, actorID string) (*dto.JourFerieResponse, error)
	List(ctx context.Context) ([]dto.JourFerieResponse, error)
	Deactivate(ctx context.Context, id string, actorID string) error
	ExportICS(ctx context.Context) (string, error)
}

type jourFerieService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJourFerieService creates the JourFerieService implementation.
func NewJourFerieService(repo *repository.Repository, logger *zap.Logger) JourFerieService {
	return &jourFerieService{repo: repo, logger: logger}
}

func (s *jourFerieService) Create(ctx context.Context, req *dto.CreateJourFerieRequest, actorID string) (*dto.JourFerieResponse, error) {
	date, err := time.Parse(model.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.JourFerie.GetByDate(ctx, date); err == nil {
		return nil, ErrJourFerieExistant
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	jour := &model.JourFerie{
		Date:      date,
		Nom:       req.Nom,
		Recurrent: req.Recurrent,
		Actif:     true,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}
	jour.Type = "Légal"
	if req.Type != "" {
		jour.Type = req.Type
	}
	jour.MajorationPourcentage = 60
	if req.MajorationPourcentage != nil {
		jour.MajorationPourcentage = *req.MajorationPourcentage
	}

	if err := s.repo.JourFerie.Create(ctx, jour); err != nil {
		s.logger.Error("création jour férié échouée", zap.String("date", req.Date), zap.Error(err))
		return nil, err
	}

	resp := jourFerieToResponse(jour)
	return &resp, nil
}

func (s *jourFerieService) List(ctx context.Context) ([]dto.JourFerieResponse, error) {
	jours, err := s.repo.JourFerie.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JourFerieResponse, 0, len(jours))
	for i := range jours {
		out = append(out, jourFerieToResponse(&jours[i]))
	}
	return out, nil
}

func (s *jourFerieService) Deactivate(ctx context.Context, id string, actorID string) error {
	matched, err := s.repo.JourFerie.Deactivate(ctx, id, actorID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrJourFerieIntrouvable
	}
	return nil
}

// ExportICS serializes the active holidays as an iCalendar feed.
// Recurrent holidays carry a yearly RRULE so subscribing calendars
// repeat them without a re-export.
func (s *jourFerieService) ExportICS(ctx context.Context) (string, error) {
	jours, err := s.repo.JourFerie.List(ctx)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//SOGAS//Jours Fériés//FR")
	cal.SetName("Jours fériés SOGAS")

	now := time.Now()
	for i := range jours {
		j := &jours[i]
		if !j.Actif {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("jour-ferie-%s@sogas", j.JourFerieID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(j.Date)
		event.SetAllDayEndAt(j.Date.AddDate(0, 0, 1))
		event.SetSummary(j.Nom)
		if j.Type != "" {
			event.SetDescription(j.Type)
		}
		if j.Recurrent {
			event.AddRrule("FREQ=YEARLY")
		}
	}

	return cal.Serialize(), nil
}

func jourFerieToResponse(j *model.JourFerie) dto.JourFerieResponse {
	return dto.JourFerieResponse{
		ID:                    j.JourFerieID,
		Date:                  j.Date.Format(model.DateFormat),
		Nom:                   j.Nom,
		Type:                  j.Type,
		Recurrent:             j.Recurrent,
		MajorationPourcentage: j.MajorationPourcentage,
		Actif:                 j.Actif,
	}
}
