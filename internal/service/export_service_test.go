package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
)

func TestExportService_PointagesMois(t *testing.T) {
	pointageSvc, _, repo, employeID := newPointageFixture(t)
	exportSvc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	for _, jour := range []string{"2026-03-02", "2026-03-03"} {
		if _, err := pointageSvc.Checkin(ctx, &dto.CheckinRequest{
			EmployeID:   employeID,
			Date:        jour,
			HeureEntree: "08:00",
		}); err != nil {
			t.Fatalf("Checkin %s: %v", jour, err)
		}
		if _, err := pointageSvc.Checkout(ctx, employeID, &dto.CheckoutRequest{
			Date:        jour,
			HeureSortie: "17:00",
		}); err != nil {
			t.Fatalf("Checkout %s: %v", jour, err)
		}
	}

	buf, filename, err := exportSvc.ExportPointagesMois(ctx, employeID, "2026-03")
	if err != nil {
		t.Fatalf("ExportPointagesMois: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("classeur vide")
	}
	if filename != "pointages_SOG-0001_2026-03.xlsx" {
		t.Errorf("filename = %q", filename)
	}
}

func TestExportService_MoisSansPointage(t *testing.T) {
	_, _, repo, employeID := newPointageFixture(t)
	exportSvc := NewExportService(repo, zap.NewNop())

	_, _, err := exportSvc.ExportPointagesMois(context.Background(), employeID, "2026-03")
	if !errors.Is(err, ErrExportAucunPointage) {
		t.Errorf("err = %v, attendu ErrExportAucunPointage", err)
	}
}

func TestExportService_MoisInvalide(t *testing.T) {
	_, _, repo, employeID := newPointageFixture(t)
	exportSvc := NewExportService(repo, zap.NewNop())

	_, _, err := exportSvc.ExportPointagesMois(context.Background(), employeID, "mars-2026")
	if !errors.Is(err, ErrMoisInvalide) {
		t.Errorf("err = %v, attendu ErrMoisInvalide", err)
	}
}

func TestExportService_EmployeInconnu(t *testing.T) {
	exportSvc := NewExportService(newTestRepository(), zap.NewNop())

	_, _, err := exportSvc.ExportPointagesMois(context.Background(), "emp-absent", "2026-03")
	if !errors.Is(err, ErrEmployeIntrouvable) {
		t.Errorf("err = %v, attendu ErrEmployeIntrouvable", err)
	}
}
