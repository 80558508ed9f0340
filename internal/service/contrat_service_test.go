package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

func newContratFixture(t *testing.T) (ContratService, *repository.Repository, string) {
	t.Helper()
	repo := newTestRepository()
	siteID, deptID, svcID, posteID := seedStructure(repo)
	empSvc := NewEmployeService(repo, zap.NewNop())
	created, err := empSvc.Create(context.Background(), &dto.CreateEmployeRequest{
		Matricule:     "SOG-0001",
		Nom:           "Diop",
		Prenom:        "Awa",
		SiteID:        siteID,
		DepartementID: deptID,
		ServiceID:     svcID,
		PosteID:       posteID,
	}, actorID)
	if err != nil {
		t.Fatalf("Create employé: %v", err)
	}
	return NewContratService(repo, zap.NewNop()), repo, created.EmployeID
}

func TestContratService_CreateCDI(t *testing.T) {
	svc, _, employeID := newContratFixture(t)

	resp, err := svc.Create(context.Background(), &dto.CreateContratRequest{
		EmployeID: employeID,
		Type:      model.ContratCDI,
		DateDebut: "2026-01-01",
	}, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Statut != model.ContratActif {
		t.Errorf("Statut = %q, attendu %q", resp.Statut, model.ContratActif)
	}
	if resp.DateFinPrevue != nil {
		t.Error("un CDI ne porte pas de date de fin prévue")
	}
}

func TestContratService_CDDSansDateFinPrevue(t *testing.T) {
	svc, _, employeID := newContratFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateContratRequest{
		EmployeID: employeID,
		Type:      model.ContratCDD,
		DateDebut: "2026-01-01",
	}, actorID)
	if !errors.Is(err, ErrDateFinPrevueRequise) {
		t.Errorf("err = %v, attendu ErrDateFinPrevueRequise", err)
	}
}

func TestContratService_CDIAvecDateFinPrevue(t *testing.T) {
	svc, _, employeID := newContratFixture(t)

	fin := "2027-01-01"
	_, err := svc.Create(context.Background(), &dto.CreateContratRequest{
		EmployeID:     employeID,
		Type:          model.ContratCDI,
		DateDebut:     "2026-01-01",
		DateFinPrevue: &fin,
	}, actorID)
	if !errors.Is(err, ErrDateFinPrevueInterdite) {
		t.Errorf("err = %v, attendu ErrDateFinPrevueInterdite", err)
	}
}

func TestContratService_UnSeulContratActif(t *testing.T) {
	svc, _, employeID := newContratFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateContratRequest{
		EmployeID: employeID,
		Type:      model.ContratCDI,
		DateDebut: "2026-01-01",
	}, actorID); err != nil {
		t.Fatalf("Create: %v", err)
	}

	fin := "2026-12-31"
	_, err := svc.Create(ctx, &dto.CreateContratRequest{
		EmployeID:     employeID,
		Type:          model.ContratCDD,
		DateDebut:     "2026-02-01",
		DateFinPrevue: &fin,
	}, actorID)
	if !errors.Is(err, ErrContratActifExistant) {
		t.Errorf("err = %v, attendu ErrContratActifExistant", err)
	}
}

func TestContratService_AvenantSansParent(t *testing.T) {
	svc, _, employeID := newContratFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateContratRequest{
		EmployeID: employeID,
		Type:      model.ContratCDI,
		DateDebut: "2026-01-01",
		IsAvenant: true,
	}, actorID)
	if !errors.Is(err, ErrContratParentRequis) {
		t.Errorf("err = %v, attendu ErrContratParentRequis", err)
	}
}

func TestContratService_AvenantExempteDeLExclusivite(t *testing.T) {
	svc, _, employeID := newContratFixture(t)
	ctx := context.Background()

	parent, err := svc.Create(ctx, &dto.CreateContratRequest{
		EmployeID: employeID,
		Type:      model.ContratCDI,
		DateDebut: "2026-01-01",
	}, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.Create(ctx, &dto.CreateContratRequest{
		EmployeID:        employeID,
		Type:             model.ContratCDI,
		DateDebut:        "2026-06-01",
		IsAvenant:        true,
		ParentContractID: &parent.ID,
	}, actorID)
	if err != nil {
		t.Fatalf("Create avenant: %v", err)
	}
	if !resp.IsAvenant {
		t.Error("IsAvenant = false")
	}
}

func TestContratService_AvenantParentAutreEmploye(t *testing.T) {
	svc, repo, employeID := newContratFixture(t)
	ctx := context.Background()

	parent, err := svc.Create(ctx, &dto.CreateContratRequest{
		EmployeID: employeID,
		Type:      model.ContratCDI,
		DateDebut: "2026-01-01",
	}, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	autre := &model.Employe{
		Matricule: "SOG-0002", Nom: "Ndiaye", Prenom: "Moussa",
		Statut: model.StatutActif,
	}
	if err := repo.Employe.CreateWithAffectation(ctx, autre, nil, nil, &model.Affectation{Motif: model.MotifEmbauche}); err != nil {
		t.Fatalf("CreateWithAffectation: %v", err)
	}

	_, err = svc.Create(ctx, &dto.CreateContratRequest{
		EmployeID:        autre.EmployeID,
		Type:             model.ContratCDI,
		DateDebut:        "2026-06-01",
		IsAvenant:        true,
		ParentContractID: &parent.ID,
	}, actorID)
	if !errors.Is(err, ErrContratParentAutreEmploye) {
		t.Errorf("err = %v, attendu ErrContratParentAutreEmploye", err)
	}
}

func TestContratService_EmployeInconnu(t *testing.T) {
	svc, _, _ := newContratFixture(t)
	_, err := svc.Create(context.Background(), &dto.CreateContratRequest{
		EmployeID: "emp-absent",
		Type:      model.ContratCDI,
		DateDebut: "2026-01-01",
	}, actorID)
	if !errors.Is(err, ErrEmployeIntrouvable) {
		t.Errorf("err = %v, attendu ErrEmployeIntrouvable", err)
	}
}
