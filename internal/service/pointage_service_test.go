package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

func newPointageFixture(t *testing.T) (PointageService, JourFerieService, *repository.Repository, string) {
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
	return NewPointageService(repo, zap.NewNop()),
		NewJourFerieService(repo, zap.NewNop()),
		repo, created.EmployeID
}

func TestPointageService_JourOrdinaire(t *testing.T) {
	svc, _, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	// 2026-03-02 is a Monday
	if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
		EmployeID:   employeID,
		Date:        "2026-03-02",
		HeureEntree: "08:00",
	}); err != nil {
		t.Fatalf("Checkin: %v", err)
	}

	resp, err := svc.Checkout(ctx, employeID, &dto.CheckoutRequest{
		Date:        "2026-03-02",
		HeureSortie: "17:00",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if resp.HeuresNormales != 8.00 || resp.HeuresSup15 != 1.00 || resp.HeuresSup40 != 0 {
		t.Errorf("ventilation = %v/%v/%v, attendu 8/1/0",
			resp.HeuresNormales, resp.HeuresSup15, resp.HeuresSup40)
	}
	if resp.MajorationPourcentage != 0 {
		t.Errorf("MajorationPourcentage = %v, attendu 0", resp.MajorationPourcentage)
	}
	// ordinary-day overtime stays in the tier columns
	if resp.HeuresSupHorsMajoration != 0 {
		t.Errorf("HeuresSupHorsMajoration = %v, attendu 0", resp.HeuresSupHorsMajoration)
	}
}

func TestPointageService_CheckinDouble(t *testing.T) {
	svc, _, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	req := &dto.CheckinRequest{EmployeID: employeID, Date: "2026-03-02", HeureEntree: "08:00"}
	if _, err := svc.Checkin(ctx, req); err != nil {
		t.Fatalf("Checkin: %v", err)
	}
	if _, err := svc.Checkin(ctx, req); !errors.Is(err, ErrPointageExistant) {
		t.Errorf("err = %v, attendu ErrPointageExistant", err)
	}
}

func TestPointageService_CheckoutSansCheckin(t *testing.T) {
	svc, _, _, employeID := newPointageFixture(t)

	_, err := svc.Checkout(context.Background(), employeID, &dto.CheckoutRequest{
		Date:        "2026-03-02",
		HeureSortie: "17:00",
	})
	if !errors.Is(err, ErrPointageIntrouvable) {
		t.Errorf("err = %v, attendu ErrPointageIntrouvable", err)
	}
}

func TestPointageService_CheckoutDouble(t *testing.T) {
	svc, _, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
		EmployeID: employeID, Date: "2026-03-02", HeureEntree: "08:00",
	}); err != nil {
		t.Fatalf("Checkin: %v", err)
	}
	out := &dto.CheckoutRequest{Date: "2026-03-02", HeureSortie: "17:00"}
	if _, err := svc.Checkout(ctx, employeID, out); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if _, err := svc.Checkout(ctx, employeID, out); !errors.Is(err, ErrSortieDejaEnregistree) {
		t.Errorf("err = %v, attendu ErrSortieDejaEnregistree", err)
	}
}

func TestPointageService_CheckoutJourFerie(t *testing.T) {
	svc, jfSvc, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	if _, err := jfSvc.Create(ctx, &dto.CreateJourFerieRequest{
		Date: "2026-04-04", // Saturday
		Nom:  "Fête nationale",
	}, actorID); err != nil {
		t.Fatalf("Create jour férié: %v", err)
	}

	if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
		EmployeID: employeID, Date: "2026-04-04", HeureEntree: "08:00",
	}); err != nil {
		t.Fatalf("Checkin: %v", err)
	}
	resp, err := svc.Checkout(ctx, employeID, &dto.CheckoutRequest{
		Date:        "2026-04-04",
		HeureSortie: "20:15",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if resp.MajorationPourcentage != 60 {
		t.Errorf("MajorationPourcentage = %v, attendu 60", resp.MajorationPourcentage)
	}
	if resp.HeuresSupHorsMajoration != 12.25 {
		t.Errorf("HeuresSupHorsMajoration = %v, attendu 12.25", resp.HeuresSupHorsMajoration)
	}
	if resp.HeuresNormales != 0 || resp.HeuresSup15 != 0 || resp.HeuresSup40 != 0 {
		t.Errorf("tranches non nulles un jour férié: %+v", resp)
	}
	if !resp.PanierRepasDu {
		t.Error("PanierRepasDu = false, attendu true")
	}
}

func TestPointageService_CheckoutDimanche(t *testing.T) {
	svc, _, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	// 2026-03-08 is a Sunday
	if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
		EmployeID: employeID, Date: "2026-03-08", HeureEntree: "08:00",
	}); err != nil {
		t.Fatalf("Checkin: %v", err)
	}
	resp, err := svc.Checkout(ctx, employeID, &dto.CheckoutRequest{
		Date:        "2026-03-08",
		HeureSortie: "12:00",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if resp.MajorationPourcentage != 60 {
		t.Errorf("MajorationPourcentage = %v, attendu 60", resp.MajorationPourcentage)
	}
	if resp.HeuresSupHorsMajoration != 4.00 {
		t.Errorf("HeuresSupHorsMajoration = %v, attendu 4.00", resp.HeuresSupHorsMajoration)
	}
}

func TestPointageService_CheckoutDimancheFerie(t *testing.T) {
	svc, jfSvc, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	if _, err := jfSvc.Create(ctx, &dto.CreateJourFerieRequest{
		Date: "2026-03-08", // Sunday
		Nom:  "Fête religieuse",
	}, actorID); err != nil {
		t.Fatalf("Create jour férié: %v", err)
	}

	if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
		EmployeID: employeID, Date: "2026-03-08", HeureEntree: "09:00",
	}); err != nil {
		t.Fatalf("Checkin: %v", err)
	}
	resp, err := svc.Checkout(ctx, employeID, &dto.CheckoutRequest{
		Date:        "2026-03-08",
		HeureSortie: "19:40",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if resp.MajorationPourcentage != 100 {
		t.Errorf("MajorationPourcentage = %v, attendu 100", resp.MajorationPourcentage)
	}
	if resp.HeuresSupHorsMajoration != 10.75 {
		t.Errorf("HeuresSupHorsMajoration = %v, attendu 10.75", resp.HeuresSupHorsMajoration)
	}
}

func TestPointageService_FerieRecurrent(t *testing.T) {
	svc, jfSvc, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	// recurrent holiday declared in an earlier year
	if _, err := jfSvc.Create(ctx, &dto.CreateJourFerieRequest{
		Date:      "2024-04-04",
		Nom:       "Fête de l'Indépendance",
		Recurrent: true,
	}, actorID); err != nil {
		t.Fatalf("Create jour férié: %v", err)
	}

	if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
		EmployeID: employeID, Date: "2026-04-04", HeureEntree: "08:00",
	}); err != nil {
		t.Fatalf("Checkin: %v", err)
	}
	resp, err := svc.Checkout(ctx, employeID, &dto.CheckoutRequest{
		Date:        "2026-04-04",
		HeureSortie: "16:00",
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if resp.MajorationPourcentage != 60 {
		t.Errorf("MajorationPourcentage = %v, attendu 60 via récurrence", resp.MajorationPourcentage)
	}
}

func TestPointageService_ListMois(t *testing.T) {
	svc, _, _, employeID := newPointageFixture(t)
	ctx := context.Background()

	for _, date := range []string{"2026-03-02", "2026-03-03", "2026-04-01"} {
		if _, err := svc.Checkin(ctx, &dto.CheckinRequest{
			EmployeID: employeID, Date: date, HeureEntree: "08:00",
		}); err != nil {
			t.Fatalf("Checkin %s: %v", date, err)
		}
	}

	list, err := svc.ListMois(ctx, employeID, "2026-03")
	if err != nil {
		t.Fatalf("ListMois: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("ListMois(2026-03): %d pointages, attendu 2", len(list))
	}

	if _, err := svc.ListMois(ctx, employeID, "mars-2026"); !errors.Is(err, ErrMoisInvalide) {
		t.Errorf("err = %v, attendu ErrMoisInvalide", err)
	}
}

func TestJourFerieService_DateDupliquee(t *testing.T) {
	_, jfSvc, _, _ := newPointageFixture(t)
	ctx := context.Background()

	req := &dto.CreateJourFerieRequest{Date: "2026-04-04", Nom: "Fête nationale"}
	if _, err := jfSvc.Create(ctx, req, actorID); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := jfSvc.Create(ctx, req, actorID); !errors.Is(err, ErrJourFerieExistant) {
		t.Errorf("err = %v, attendu ErrJourFerieExistant", err)
	}
}

func TestJourFerieService_Deactivate(t *testing.T) {
	_, jfSvc, _, _ := newPointageFixture(t)
	ctx := context.Background()

	created, err := jfSvc.Create(ctx, &dto.CreateJourFerieRequest{
		Date: "2026-04-04", Nom: "Fête nationale",
	}, actorID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := jfSvc.Deactivate(ctx, created.ID, actorID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if err := jfSvc.Deactivate(ctx, created.ID, actorID); !errors.Is(err, ErrJourFerieIntrouvable) {
		t.Errorf("second Deactivate: err = %v, attendu ErrJourFerieIntrouvable", err)
	}
}

func TestJourFerieService_ExportICS(t *testing.T) {
	_, jfSvc, _, _ := newPointageFixture(t)
	ctx := context.Background()

	if _, err := jfSvc.Create(ctx, &dto.CreateJourFerieRequest{
		Date:      "2026-04-04",
		Nom:       "Fête de l'Indépendance",
		Recurrent: true,
	}, actorID); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ics, err := jfSvc.ExportICS(ctx)
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "RRULE:FREQ=YEARLY"} {
		if !strings.Contains(ics, want) {
			t.Errorf("export ICS sans %q", want)
		}
	}
}
