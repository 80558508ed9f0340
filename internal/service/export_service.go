package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

var ErrExportAucunPointage = errors.New("aucun pointage sur la période")

// ExportService monthly timesheet export as an .xlsx workbook. The
// buffer is returned to the handler, which sets the download headers.
type ExportService interface {
	ExportPointagesMois(ctx context.Context, employeID, mois string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService implementation.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportPointagesMois builds one sheet: a header row, one row per
// attendance day, then a totals row feeding payroll.
func (s *exportService) ExportPointagesMois(ctx context.Context, employeID, mois string) (*bytes.Buffer, string, error) {
	employe, err := s.repo.Employe.GetByID(ctx, employeID)
	if err != nil {
		return nil, "", notFoundAs(err, ErrEmployeIntrouvable)
	}

	debut, fin, err := moisBornes(mois)
	if err != nil {
		return nil, "", err
	}

	pointages, err := s.repo.Pointage.ListByEmployeMois(ctx, employeID, debut, fin)
	if err != nil {
		s.logger.Error("lecture pointages échouée", zap.Error(err))
		return nil, "", err
	}
	if len(pointages) == 0 {
		return nil, "", ErrExportAucunPointage
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pointages"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "C", 9)
	f.SetColWidth(sheet, "D", "H", 14)
	f.SetColWidth(sheet, "I", "I", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	titre := fmt.Sprintf("%s %s (%s) — %s", employe.Prenom, employe.Nom, employe.Matricule, debut.Format("2006-01"))
	f.SetCellValue(sheet, "A1", titre)
	f.MergeCell(sheet, "A1", "I1")

	headers := []string{"Date", "Entrée", "Sortie", "H. normales", "H. sup 15%", "H. sup 40%", "H. majorées", "Majoration %", "Panier repas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A2", "I2", headerStyle)

	var totNormales, totSup15, totSup40, totMajorees float64
	paniers := 0
	row := 3
	for i := range pointages {
		p := &pointages[i]
		sortie := ""
		if p.HeureSortie != nil {
			sortie = *p.HeureSortie
		}
		panier := "Non"
		if p.PanierRepasDu {
			panier = "Oui"
			paniers++
		}
		values := []interface{}{
			p.Date.Format(model.DateFormat),
			p.HeureEntree,
			sortie,
			p.HeuresNormales,
			p.HeuresSup15,
			p.HeuresSup40,
			p.HeuresSupHorsMajoration,
			p.MajorationPourcentage,
			panier,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		totNormales += p.HeuresNormales
		totSup15 += p.HeuresSup15
		totSup40 += p.HeuresSup40
		totMajorees += p.HeuresSupHorsMajoration
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Totaux")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), round2(totNormales))
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), round2(totSup15))
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), round2(totSup40))
	f.SetCellValue(sheet, fmt.Sprintf("G%d", row), round2(totMajorees))
	f.SetCellValue(sheet, fmt.Sprintf("I%d", row), paniers)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("génération Excel échouée", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("pointages_%s_%s.xlsx", employe.Matricule, debut.Format("2006-01"))
	return buf, filename, nil
}
