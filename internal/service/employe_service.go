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
	ErrEmployeIntrouvable     = errors.New("employé introuvable")
	ErrMatriculeDejaUtilise   = errors.New("matricule déjà utilisé")
	ErrMotifChangementRequis  = errors.New("motif_changement requis pour un changement d'affectation")
	ErrAffectationIntrouvable = errors.New("affectation ouverte introuvable")
)

// placement is the tuple tracked by the affectation history. Equipe and
// fonction are optional, hence pointers.
type placement struct {
	SiteID        string
	DepartementID string
	ServiceID     string
	EquipeID      *string
	PosteID       string
	FonctionID    *string
}

// EmployeService employee directory plus the placement history tracker.
// Every placement change closes the open history record and opens a new
// one in the same transaction as the live-row update; a hire opens the
// initial record. The invariant is one open record per employee, always.
type EmployeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeRequest, actorID string) (*dto.CreateEmployeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeResponse, error)
	List(ctx context.Context, req *dto.EmployeListRequest) ([]dto.EmployeResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeRequest, actorID string) (*dto.UpdateEmployeResponse, error)
	Archive(ctx context.Context, id string, actorID string) error
	ListAffectations(ctx context.Context, employeID string) ([]dto.AffectationResponse, error)
}

type employeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeService creates the EmployeService implementation.
func NewEmployeService(repo *repository.Repository, logger *zap.Logger) EmployeService {
	return &employeService{repo: repo, logger: logger}
}

func (s *employeService) Create(ctx context.Context, req *dto.CreateEmployeRequest, actorID string) (*dto.CreateEmployeResponse, error) {
	if err := s.checkPlacementRefs(ctx, placement{
		SiteID:        req.SiteID,
		DepartementID: req.DepartementID,
		ServiceID:     req.ServiceID,
		EquipeID:      req.EquipeID,
		PosteID:       req.PosteID,
		FonctionID:    req.FonctionID,
	}); err != nil {
		return nil, err
	}

	if _, err := s.repo.Employe.GetByMatricule(ctx, req.Matricule); err == nil {
		return nil, ErrMatriculeDejaUtilise
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	today := dateOnly(time.Now())
	dateEmbauche := today
	if req.DateEmbauche != "" {
		dateEmbauche, _ = time.Parse(model.DateFormat, req.DateEmbauche)
	}

	e := &model.Employe{
		Matricule:     req.Matricule,
		Nom:           req.Nom,
		Prenom:        req.Prenom,
		Statut:        model.StatutActif,
		DateEmbauche:  dateEmbauche,
		SiteID:        req.SiteID,
		DepartementID: req.DepartementID,
		ServiceID:     req.ServiceID,
		EquipeID:      req.EquipeID,
		PosteID:       req.PosteID,
		FonctionID:    req.FonctionID,
		UserID:        req.UserID,
		BaseModel: model.BaseModel{
			CreatedBy: &actorID,
		},
	}

	// initial history record: empty old snapshot, open-ended
	aff := &model.Affectation{
		DateDebut:            today,
		Motif:                model.MotifEmbauche,
		NouveauSiteID:        &req.SiteID,
		NouveauDepartementID: &req.DepartementID,
		NouveauServiceID:     &req.ServiceID,
		NouveauEquipeID:      req.EquipeID,
		NouveauPosteID:       &req.PosteID,
		NouveauFonctionID:    req.FonctionID,
		CreatedBy:            &actorID,
	}

	infos := infosPersoFromInput(req.InfosPerso)
	contact := contactFromInput(req.Contact)

	if err := s.repo.Employe.CreateWithAffectation(ctx, e, infos, contact, aff); err != nil {
		s.logger.Error("embauche échouée", zap.String("matricule", req.Matricule), zap.Error(err))
		return nil, err
	}

	s.logger.Info("employé embauché",
		zap.String("employe_id", e.EmployeID),
		zap.String("matricule", e.Matricule))

	return &dto.CreateEmployeResponse{EmployeID: e.EmployeID, Matricule: e.Matricule}, nil
}

func (s *employeService) GetByID(ctx context.Context, id string) (*dto.EmployeResponse, error) {
	e, err := s.repo.Employe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeIntrouvable
		}
		return nil, err
	}
	resp := employeToResponse(e)
	return &resp, nil
}

func (s *employeService) List(ctx context.Context, req *dto.EmployeListRequest) ([]dto.EmployeResponse, int64, error) {
	filters := &repository.EmployeFilters{
		Statut:        req.Statut,
		SiteID:        req.SiteID,
		DepartementID: req.DepartementID,
	}
	employes, total, err := s.repo.Employe.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.EmployeResponse, 0, len(employes))
	for i := range employes {
		out = append(out, employeToResponse(&employes[i]))
	}
	return out, total, nil
}

// Update applies a partial update. A change to any placement field
// requires a motif and triggers the close-then-insert pair on the
// history; absent fields never count as changes.
func (s *employeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeRequest, actorID string) (*dto.UpdateEmployeResponse, error) {
	current, err := s.repo.Employe.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeIntrouvable
		}
		return nil, err
	}

	ancien := placement{
		SiteID:        current.SiteID,
		DepartementID: current.DepartementID,
		ServiceID:     current.ServiceID,
		EquipeID:      current.EquipeID,
		PosteID:       current.PosteID,
		FonctionID:    current.FonctionID,
	}

	nouveau := ancien
	if req.SiteID != nil {
		nouveau.SiteID = *req.SiteID
	}
	if req.DepartementID != nil {
		nouveau.DepartementID = *req.DepartementID
	}
	if req.ServiceID != nil {
		nouveau.ServiceID = *req.ServiceID
	}
	if req.EquipeID != nil {
		nouveau.EquipeID = req.EquipeID
	}
	if req.PosteID != nil {
		nouveau.PosteID = *req.PosteID
	}
	if req.FonctionID != nil {
		nouveau.FonctionID = req.FonctionID
	}

	changed := nouveau.SiteID != ancien.SiteID ||
		nouveau.DepartementID != ancien.DepartementID ||
		nouveau.ServiceID != ancien.ServiceID ||
		nouveau.PosteID != ancien.PosteID ||
		!ptrEq(nouveau.EquipeID, ancien.EquipeID) ||
		!ptrEq(nouveau.FonctionID, ancien.FonctionID)

	if changed {
		if req.MotifChangement == "" {
			return nil, ErrMotifChangementRequis
		}
		if err := s.checkPlacementRefs(ctx, nouveau); err != nil {
			return nil, err
		}
	}

	if req.Nom != nil {
		current.Nom = *req.Nom
	}
	if req.Prenom != nil {
		current.Prenom = *req.Prenom
	}
	if req.Statut != nil {
		current.Statut = *req.Statut
	}
	current.SiteID = nouveau.SiteID
	current.DepartementID = nouveau.DepartementID
	current.ServiceID = nouveau.ServiceID
	current.EquipeID = nouveau.EquipeID
	current.PosteID = nouveau.PosteID
	current.FonctionID = nouveau.FonctionID
	current.UpdatedBy = &actorID
	// preloaded associations must not be re-saved alongside the row
	clearAssociations(current)

	infos := infosPersoFromInput(req.InfosPerso)
	contact := contactFromInput(req.Contact)

	if changed {
		aff := &model.Affectation{
			EmployeID:            current.EmployeID,
			DateDebut:            dateOnly(time.Now()),
			Motif:                req.MotifChangement,
			AncienSiteID:         &ancien.SiteID,
			AncienDepartementID:  &ancien.DepartementID,
			AncienServiceID:      &ancien.ServiceID,
			AncienEquipeID:       ancien.EquipeID,
			AncienPosteID:        &ancien.PosteID,
			AncienFonctionID:     ancien.FonctionID,
			NouveauSiteID:        &nouveau.SiteID,
			NouveauDepartementID: &nouveau.DepartementID,
			NouveauServiceID:     &nouveau.ServiceID,
			NouveauEquipeID:      nouveau.EquipeID,
			NouveauPosteID:       &nouveau.PosteID,
			NouveauFonctionID:    nouveau.FonctionID,
			CreatedBy:            &actorID,
		}
		err = s.repo.Employe.UpdateWithAffectation(ctx, current, infos, contact, aff, req.MotifChangement)
	} else {
		err = s.repo.Employe.Update(ctx, current, infos, contact)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffectationIntrouvable
		}
		s.logger.Error("mise à jour employé échouée", zap.String("employe_id", id), zap.Error(err))
		return nil, err
	}

	if changed {
		s.logger.Info("affectation modifiée",
			zap.String("employe_id", id),
			zap.String("motif", req.MotifChangement))
	}

	reloaded, err := s.repo.Employe.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateEmployeResponse{
		Employe:            employeToResponse(reloaded),
		AffectationChanged: changed,
	}, nil
}

// Archive soft-deletes: statut becomes Licencié, the user-account link
// is severed and the open history record is closed at today. Archiving
// an already archived employee reports not-found.
func (s *employeService) Archive(ctx context.Context, id string, actorID string) error {
	matched, err := s.repo.Employe.Archive(ctx, id, dateOnly(time.Now()), actorID)
	if err != nil {
		s.logger.Error("archivage employé échoué", zap.String("employe_id", id), zap.Error(err))
		return err
	}
	if matched == 0 {
		return ErrEmployeIntrouvable
	}
	s.logger.Info("employé archivé", zap.String("employe_id", id))
	return nil
}

func (s *employeService) ListAffectations(ctx context.Context, employeID string) ([]dto.AffectationResponse, error) {
	if _, err := s.repo.Employe.GetByID(ctx, employeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeIntrouvable
		}
		return nil, err
	}

	affs, err := s.repo.Employe.ListAffectations(ctx, employeID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AffectationResponse, 0, len(affs))
	for i := range affs {
		a := &affs[i]
		resp := dto.AffectationResponse{
			ID:          a.AffectationID,
			EmployeID:   a.EmployeID,
			DateDebut:   a.DateDebut.Format(model.DateFormat),
			Motif:       a.Motif,
			Commentaire: a.Commentaire,
			Ancien: dto.PlacementIDs{
				SiteID:        a.AncienSiteID,
				DepartementID: a.AncienDepartementID,
				ServiceID:     a.AncienServiceID,
				EquipeID:      a.AncienEquipeID,
				PosteID:       a.AncienPosteID,
				FonctionID:    a.AncienFonctionID,
			},
			Nouveau: dto.PlacementIDs{
				SiteID:        a.NouveauSiteID,
				DepartementID: a.NouveauDepartementID,
				ServiceID:     a.NouveauServiceID,
				EquipeID:      a.NouveauEquipeID,
				PosteID:       a.NouveauPosteID,
				FonctionID:    a.NouveauFonctionID,
			},
			CreatedBy: a.CreatedBy,
		}
		if a.DateFin != nil {
			fin := a.DateFin.Format(model.DateFormat)
			resp.DateFin = &fin
		}
		out = append(out, resp)
	}
	return out, nil
}

// checkPlacementRefs verifies every referenced structure node exists.
func (s *employeService) checkPlacementRefs(ctx context.Context, p placement) error {
	if _, err := s.repo.Structure.GetSiteByID(ctx, p.SiteID); err != nil {
		return notFoundAs(err, ErrSiteIntrouvable)
	}
	if _, err := s.repo.Structure.GetDepartementByID(ctx, p.DepartementID); err != nil {
		return notFoundAs(err, ErrDepartementIntrouvable)
	}
	if _, err := s.repo.Structure.GetServiceByID(ctx, p.ServiceID); err != nil {
		return notFoundAs(err, ErrServiceIntrouvable)
	}
	if p.EquipeID != nil {
		if _, err := s.repo.Structure.GetEquipeByID(ctx, *p.EquipeID); err != nil {
			return notFoundAs(err, ErrEquipeIntrouvable)
		}
	}
	if _, err := s.repo.Structure.GetPosteByID(ctx, p.PosteID); err != nil {
		return notFoundAs(err, ErrPosteIntrouvable)
	}
	if p.FonctionID != nil {
		if _, err := s.repo.Structure.GetFonctionByID(ctx, *p.FonctionID); err != nil {
			return notFoundAs(err, ErrFonctionIntrouvable)
		}
	}
	return nil
}

// ── helpers ──

func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func ptrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clearAssociations(e *model.Employe) {
	e.Site = nil
	e.Departement = nil
	e.Service = nil
	e.Equipe = nil
	e.Poste = nil
	e.Fonction = nil
	e.InfosPerso = nil
	e.Contact = nil
}

func infosPersoFromInput(in *dto.InfosPersoInput) *model.InfosPerso {
	if in == nil {
		return nil
	}
	infos := &model.InfosPerso{
		LieuNaissance:         in.LieuNaissance,
		Nationalite:           in.Nationalite,
		SituationMatrimoniale: in.SituationMatrimoniale,
		NombreEnfants:         in.NombreEnfants,
	}
	if in.DateNaissance != "" {
		if d, err := time.Parse(model.DateFormat, in.DateNaissance); err == nil {
			infos.DateNaissance = &d
		}
	}
	return infos
}

func contactFromInput(in *dto.ContactInput) *model.Contact {
	if in == nil {
		return nil
	}
	return &model.Contact{
		Adresse:                 in.Adresse,
		Telephone:               in.Telephone,
		Email:                   in.Email,
		ContactUrgenceNom:       in.ContactUrgenceNom,
		ContactUrgenceTelephone: in.ContactUrgenceTelephone,
	}
}

func employeToResponse(e *model.Employe) dto.EmployeResponse {
	resp := dto.EmployeResponse{
		ID:           e.EmployeID,
		Matricule:    e.Matricule,
		Nom:          e.Nom,
		Prenom:       e.Prenom,
		Statut:       e.Statut,
		DateEmbauche: e.DateEmbauche.Format(model.DateFormat),
		UserID:       e.UserID,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}

	if e.Site != nil {
		resp.Placement.Site = &dto.StructureNodeResponse{ID: e.Site.SiteID, Code: e.Site.Code, Nom: e.Site.Nom, Ville: e.Site.Ville}
	}
	if e.Departement != nil {
		resp.Placement.Departement = &dto.StructureNodeResponse{ID: e.Departement.DepartementID, ParentID: e.Departement.SiteID, Code: e.Departement.Code, Nom: e.Departement.Nom}
	}
	if e.Service != nil {
		resp.Placement.Service = &dto.StructureNodeResponse{ID: e.Service.ServiceID, ParentID: e.Service.DepartementID, Code: e.Service.Code, Nom: e.Service.Nom}
	}
	if e.Equipe != nil {
		resp.Placement.Equipe = &dto.StructureNodeResponse{ID: e.Equipe.EquipeID, ParentID: e.Equipe.ServiceID, Code: e.Equipe.Code, Nom: e.Equipe.Nom}
	}
	if e.Poste != nil {
		resp.Placement.Poste = &dto.ReferentielResponse{ID: e.Poste.PosteID, Code: e.Poste.Code, Intitule: e.Poste.Intitule}
	}
	if e.Fonction != nil {
		resp.Placement.Fonction = &dto.ReferentielResponse{ID: e.Fonction.FonctionID, Code: e.Fonction.Code, Intitule: e.Fonction.Intitule}
	}

	if e.InfosPerso != nil {
		infos := &dto.InfosPersoInput{
			LieuNaissance:         e.InfosPerso.LieuNaissance,
			Nationalite:           e.InfosPerso.Nationalite,
			SituationMatrimoniale: e.InfosPerso.SituationMatrimoniale,
			NombreEnfants:         e.InfosPerso.NombreEnfants,
		}
		if e.InfosPerso.DateNaissance != nil {
			infos.DateNaissance = e.InfosPerso.DateNaissance.Format(model.DateFormat)
		}
		resp.InfosPerso = infos
	}
	if e.Contact != nil {
		resp.Contact = &dto.ContactInput{
			Adresse:                 e.Contact.Adresse,
			Telephone:               e.Contact.Telephone,
			Email:                   e.Contact.Email,
			ContactUrgenceNom:       e.Contact.ContactUrgenceNom,
			ContactUrgenceTelephone: e.Contact.ContactUrgenceTelephone,
		}
	}

	return resp
}
