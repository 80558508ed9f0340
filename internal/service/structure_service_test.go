package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
)

func newStructureService() StructureService {
	return NewStructureService(newTestRepository(), zap.NewNop())
}

func TestStructureService_Hierarchie(t *testing.T) {
	svc := newStructureService()
	ctx := context.Background()

	site, err := svc.CreateSite(ctx, &dto.CreateSiteRequest{Code: "DKR", Nom: "Dakar", Ville: "Dakar"}, actorID)
	if err != nil {
		t.Fatalf("CreateSite: %v", err)
	}
	dept, err := svc.CreateDepartement(ctx, &dto.CreateDepartementRequest{SiteID: site.ID, Code: "PROD", Nom: "Production"}, actorID)
	if err != nil {
		t.Fatalf("CreateDepartement: %v", err)
	}
	if dept.ParentID != site.ID {
		t.Errorf("ParentID = %q, attendu %q", dept.ParentID, site.ID)
	}
	service, err := svc.CreateService(ctx, &dto.CreateServiceRequest{DepartementID: dept.ID, Code: "MAINT", Nom: "Maintenance"}, actorID)
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if _, err := svc.CreateEquipe(ctx, &dto.CreateEquipeRequest{ServiceID: service.ID, Code: "EQ1", Nom: "Équipe 1"}, actorID); err != nil {
		t.Fatalf("CreateEquipe: %v", err)
	}

	equipes, err := svc.ListEquipes(ctx, service.ID)
	if err != nil {
		t.Fatalf("ListEquipes: %v", err)
	}
	if len(equipes) != 1 {
		t.Errorf("ListEquipes: %d, attendu 1", len(equipes))
	}
}

func TestStructureService_ParentInconnu(t *testing.T) {
	svc := newStructureService()
	ctx := context.Background()

	if _, err := svc.CreateDepartement(ctx, &dto.CreateDepartementRequest{
		SiteID: "site-absent", Code: "PROD", Nom: "Production",
	}, actorID); !errors.Is(err, ErrSiteIntrouvable) {
		t.Errorf("err = %v, attendu ErrSiteIntrouvable", err)
	}
	if _, err := svc.CreateService(ctx, &dto.CreateServiceRequest{
		DepartementID: "dept-absent", Code: "MAINT", Nom: "Maintenance",
	}, actorID); !errors.Is(err, ErrDepartementIntrouvable) {
		t.Errorf("err = %v, attendu ErrDepartementIntrouvable", err)
	}
	if _, err := svc.CreateEquipe(ctx, &dto.CreateEquipeRequest{
		ServiceID: "svc-absent", Code: "EQ1", Nom: "Équipe 1",
	}, actorID); !errors.Is(err, ErrServiceIntrouvable) {
		t.Errorf("err = %v, attendu ErrServiceIntrouvable", err)
	}
}

func TestStructureService_CodeDuplique(t *testing.T) {
	svc := newStructureService()
	ctx := context.Background()

	if _, err := svc.CreateSite(ctx, &dto.CreateSiteRequest{Code: "DKR", Nom: "Dakar"}, actorID); err != nil {
		t.Fatalf("CreateSite: %v", err)
	}
	if _, err := svc.CreateSite(ctx, &dto.CreateSiteRequest{Code: "DKR", Nom: "Doublon"}, actorID); !errors.Is(err, ErrCodeDejaUtilise) {
		t.Errorf("err = %v, attendu ErrCodeDejaUtilise", err)
	}

	if _, err := svc.CreatePoste(ctx, &dto.CreatePosteRequest{Code: "TECH", Intitule: "Technicien"}, actorID); err != nil {
		t.Fatalf("CreatePoste: %v", err)
	}
	if _, err := svc.CreatePoste(ctx, &dto.CreatePosteRequest{Code: "TECH", Intitule: "Doublon"}, actorID); !errors.Is(err, ErrCodeDejaUtilise) {
		t.Errorf("err = %v, attendu ErrCodeDejaUtilise", err)
	}
}

func TestStructureService_Referentiels(t *testing.T) {
	svc := newStructureService()
	ctx := context.Background()

	if _, err := svc.CreateFonction(ctx, &dto.CreateFonctionRequest{Code: "RESP", Intitule: "Responsable"}, actorID); err != nil {
		t.Fatalf("CreateFonction: %v", err)
	}
	fonctions, err := svc.ListFonctions(ctx)
	if err != nil {
		t.Fatalf("ListFonctions: %v", err)
	}
	if len(fonctions) != 1 || fonctions[0].Intitule != "Responsable" {
		t.Errorf("ListFonctions = %+v", fonctions)
	}
}
