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

var ErrAlerteIntrouvable = errors.New("alerte introuvable")

// AdminService document library and manual alerts. Alerts are stored
// and listed only; nothing is pushed anywhere.
type AdminService interface {
	CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest, actorID string) (*dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, req *dto.PaginationRequest) ([]dto.DocumentResponse, int64, error)

	CreateAlerte(ctx context.Context, req *dto.CreateAlerteRequest, actorID string) (*dto.AlerteResponse, error)
	ListAlertes(ctx context.Context, nonVuesSeulement bool) ([]dto.AlerteResponse, error)
	MarkAlerteSeen(ctx context.Context, id string) error
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates the AdminService implementation.
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest, actorID string) (*dto.DocumentResponse, error) {
	if req.EmployeID != nil {
		if _, err := s.repo.Employe.GetByID(ctx, *req.EmployeID); err != nil {
			return nil, notFoundAs(err, ErrEmployeIntrouvable)
		}
	}

	doc := &model.Document{
		Titre:      req.Titre,
		Categorie:  req.Categorie,
		FichierURL: req.FichierURL,
		EmployeID:  req.EmployeID,
		CreatedBy:  &actorID,
	}
	if err := s.repo.Document.Create(ctx, doc); err != nil {
		s.logger.Error("création document échouée", zap.Error(err))
		return nil, err
	}

	resp := documentToResponse(doc)
	return &resp, nil
}

func (s *adminService) ListDocuments(ctx context.Context, req *dto.PaginationRequest) ([]dto.DocumentResponse, int64, error) {
	docs, total, err := s.repo.Document.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, documentToResponse(&docs[i]))
	}
	return out, total, nil
}

func (s *adminService) CreateAlerte(ctx context.Context, req *dto.CreateAlerteRequest, actorID string) (*dto.AlerteResponse, error) {
	if req.EmployeID != nil {
		if _, err := s.repo.Employe.GetByID(ctx, *req.EmployeID); err != nil {
			return nil, notFoundAs(err, ErrEmployeIntrouvable)
		}
	}

	alerte := &model.Alerte{
		Type:      req.Type,
		Message:   req.Message,
		EmployeID: req.EmployeID,
		CreatedBy: &actorID,
	}
	if err := s.repo.Alerte.Create(ctx, alerte); err != nil {
		s.logger.Error("création alerte échouée", zap.Error(err))
		return nil, err
	}

	resp := alerteToResponse(alerte)
	return &resp, nil
}

func (s *adminService) ListAlertes(ctx context.Context, nonVuesSeulement bool) ([]dto.AlerteResponse, error) {
	alertes, err := s.repo.Alerte.List(ctx, nonVuesSeulement)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlerteResponse, 0, len(alertes))
	for i := range alertes {
		out = append(out, alerteToResponse(&alertes[i]))
	}
	return out, nil
}

func (s *adminService) MarkAlerteSeen(ctx context.Context, id string) error {
	matched, err := s.repo.Alerte.MarkSeen(ctx, id)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrAlerteIntrouvable
	}
	return nil
}

func documentToResponse(d *model.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:         d.DocumentID,
		Titre:      d.Titre,
		Categorie:  d.Categorie,
		FichierURL: d.FichierURL,
		EmployeID:  d.EmployeID,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
	}
}

func alerteToResponse(a *model.Alerte) dto.AlerteResponse {
	return dto.AlerteResponse{
		ID:        a.AlerteID,
		Type:      a.Type,
		Message:   a.Message,
		EmployeID: a.EmployeID,
		Vue:       a.Vue,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
