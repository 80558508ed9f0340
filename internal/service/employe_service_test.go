package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

const actorID = "user-test"

func newEmployeFixture(t *testing.T) (EmployeService, *repository.Repository, *dto.CreateEmployeRequest) {
	t.Helper()
	repo := newTestRepository()
	siteID, deptID, svcID, posteID := seedStructure(repo)
	svc := NewEmployeService(repo, zap.NewNop())
	req := &dto.CreateEmployeRequest{
		Matricule:     "SOG-0001",
		Nom:           "Diop",
		Prenom:        "Awa",
		SiteID:        siteID,
		DepartementID: deptID,
		ServiceID:     svcID,
		PosteID:       posteID,
	}
	return svc, repo, req
}

func TestEmployeService_CreateOuvreHistorique(t *testing.T) {
	svc, repo, req := newEmployeFixture(t)
	ctx := context.Background()

	resp, err := svc.Create(ctx, req, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.EmployeID == "" {
		t.Fatal("EmployeID vide")
	}

	affs, err := repo.Employe.ListAffectations(ctx, resp.EmployeID)
	if err != nil {
		t.Fatalf("ListAffectations: %v", err)
	}
	if len(affs) != 1 {
		t.Fatalf("historique: %d entrées, attendu 1", len(affs))
	}
	if affs[0].Motif != model.MotifEmbauche {
		t.Errorf("Motif = %q, attendu %q", affs[0].Motif, model.MotifEmbauche)
	}
	if affs[0].DateFin != nil {
		t.Error("l'affectation initiale doit rester ouverte")
	}
	if affs[0].AncienSiteID != nil {
		t.Error("l'affectation initiale ne doit pas porter d'ancienne position")
	}
}

func TestEmployeService_CreateMatriculeDuplique(t *testing.T) {
	svc, _, req := newEmployeFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, req, actorID); err != nil {
		t.Fatalf("Create: %v", err)
	}
	req2 := *req
	req2.Nom = "Ndiaye"
	if _, err := svc.Create(ctx, &req2, actorID); !errors.Is(err, ErrMatriculeDejaUtilise) {
		t.Errorf("err = %v, attendu ErrMatriculeDejaUtilise", err)
	}
}

func TestEmployeService_CreateSiteInconnu(t *testing.T) {
	svc, _, req := newEmployeFixture(t)
	req.SiteID = "site-inexistant"
	if _, err := svc.Create(context.Background(), req, actorID); !errors.Is(err, ErrSiteIntrouvable) {
		t.Errorf("err = %v, attendu ErrSiteIntrouvable", err)
	}
}

func TestEmployeService_UpdateChangementSansMotif(t *testing.T) {
	svc, repo, req := newEmployeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, req, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	autrePoste := &model.Poste{Code: "CHEF", Intitule: "Chef d'équipe"}
	if err := repo.Structure.CreatePoste(ctx, autrePoste); err != nil {
		t.Fatalf("CreatePoste: %v", err)
	}

	upd := &dto.UpdateEmployeRequest{PosteID: &autrePoste.PosteID}
	if _, err := svc.Update(ctx, created.EmployeID, upd, actorID); !errors.Is(err, ErrMotifChangementRequis) {
		t.Errorf("err = %v, attendu ErrMotifChangementRequis", err)
	}
}

func TestEmployeService_UpdateChangementDAffectation(t *testing.T) {
	svc, repo, req := newEmployeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, req, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	autrePoste := &model.Poste{Code: "CHEF", Intitule: "Chef d'équipe"}
	if err := repo.Structure.CreatePoste(ctx, autrePoste); err != nil {
		t.Fatalf("CreatePoste: %v", err)
	}

	upd := &dto.UpdateEmployeRequest{
		PosteID:         &autrePoste.PosteID,
		MotifChangement: "Promotion",
	}
	resp, err := svc.Update(ctx, created.EmployeID, upd, actorID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !resp.AffectationChanged {
		t.Error("AffectationChanged = false, attendu true")
	}

	affs, err := repo.Employe.ListAffectations(ctx, created.EmployeID)
	if err != nil {
		t.Fatalf("ListAffectations: %v", err)
	}
	if len(affs) != 2 {
		t.Fatalf("historique: %d entrées, attendu 2", len(affs))
	}

	var ouvertes, fermees int
	for _, a := range affs {
		if a.DateFin == nil {
			ouvertes++
			if a.Motif != "Promotion" {
				t.Errorf("motif de la nouvelle entrée = %q, attendu Promotion", a.Motif)
			}
			if a.AncienPosteID == nil || *a.AncienPosteID == autrePoste.PosteID {
				t.Error("la nouvelle entrée doit porter l'ancien poste en snapshot")
			}
		} else {
			fermees++
			if !strings.Contains(a.Commentaire, "Clôture: Promotion") {
				t.Errorf("commentaire de clôture = %q", a.Commentaire)
			}
			attendu := dateOnly(time.Now()).AddDate(0, 0, -1)
			if !a.DateFin.Equal(attendu) {
				t.Errorf("DateFin = %v, attendu %v", a.DateFin, attendu)
			}
		}
	}
	if ouvertes != 1 || fermees != 1 {
		t.Errorf("historique: %d ouvertes / %d fermées, attendu 1/1", ouvertes, fermees)
	}
}

func TestEmployeService_UpdateSansChangementDePosition(t *testing.T) {
	svc, repo, req := newEmployeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, req, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	nom := "Fall"
	resp, err := svc.Update(ctx, created.EmployeID, &dto.UpdateEmployeRequest{Nom: &nom}, actorID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.AffectationChanged {
		t.Error("AffectationChanged = true sans changement de position")
	}
	if resp.Employe.Nom != "Fall" {
		t.Errorf("Nom = %q, attendu Fall", resp.Employe.Nom)
	}

	affs, _ := repo.Employe.ListAffectations(ctx, created.EmployeID)
	if len(affs) != 1 {
		t.Errorf("historique: %d entrées, attendu 1", len(affs))
	}
}

func TestEmployeService_Archive(t *testing.T) {
	svc, repo, req := newEmployeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, req, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Archive(ctx, created.EmployeID, actorID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	e, err := repo.Employe.GetByID(ctx, created.EmployeID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if e.Statut != model.StatutLicencie {
		t.Errorf("Statut = %q, attendu %q", e.Statut, model.StatutLicencie)
	}
	if e.UserID != nil {
		t.Error("UserID doit être détaché à l'archivage")
	}
	if _, err := repo.Employe.GetOpenAffectation(ctx, created.EmployeID); err == nil {
		t.Error("aucune affectation ne doit rester ouverte après archivage")
	}

	// repeated archive reports not-found
	if err := svc.Archive(ctx, created.EmployeID, actorID); !errors.Is(err, ErrEmployeIntrouvable) {
		t.Errorf("second archivage: err = %v, attendu ErrEmployeIntrouvable", err)
	}
}

func TestEmployeService_GetIntrouvable(t *testing.T) {
	svc, _, _ := newEmployeFixture(t)
	if _, err := svc.GetByID(context.Background(), "emp-absent"); !errors.Is(err, ErrEmployeIntrouvable) {
		t.Errorf("err = %v, attendu ErrEmployeIntrouvable", err)
	}
}

func TestEmployeService_ListFiltreStatut(t *testing.T) {
	svc, _, req := newEmployeFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, req, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	req2 := *req
	req2.Matricule = "SOG-0002"
	if _, err := svc.Create(ctx, &req2, actorID); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Archive(ctx, created.EmployeID, actorID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	list, total, err := svc.List(ctx, &dto.EmployeListRequest{Statut: model.StatutActif})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("List(Actif): total=%d len=%d, attendu 1/1", total, len(list))
	}
	if list[0].Matricule != "SOG-0002" {
		t.Errorf("Matricule = %q, attendu SOG-0002", list[0].Matricule)
	}
}
