package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrHeureInvalide     = errors.New("heure invalide, format attendu HH:MM")
	ErrSortieAvantEntree = errors.New("l'heure de sortie doit être postérieure à l'heure d'entrée")
)

// HoursResult is the breakdown computed at checkout. On an ordinary day
// the overtime lives in the two tier fields and MajorationPourcentage
// stays zero; on a Sunday or a holiday the tiers stay zero and the full
// worked quantity is reported in HeuresSupplementaires under the
// surcharge rate. Both shapes are deliberate and consumed as-is by the
// payroll export.
type HoursResult struct {
	TotalHeures           float64 `json:"total_heures"`
	HeuresNormales        float64 `json:"heures_normales"`
	HeuresSup15           float64 `json:"heures_sup_15"`
	HeuresSup40           float64 `json:"heures_sup_40"`
	HeuresSupplementaires float64 `json:"heures_supplementaires"`
	MajorationPourcentage float64 `json:"majoration_pourcentage"`
	PanierRepasDu         bool    `json:"panier_repas_du"`
}

// CalculateHours computes the paid-hours breakdown for one same-day
// shift. Pure function, no I/O.
//
// Rules:
//  1. duration = sortie − entrée, rounded UP to the quarter hour
//  2. panier repas due from 10 rounded hours
//  3. day classification, first match wins:
//     dimanche + férié → 100% on everything
//     férié            → holiday surcharge (60% when unset)
//     dimanche         → 60% on everything
//     ordinaire        → 8h normales, then 2h at 15%, remainder at 40%
func CalculateHours(heureEntree, heureSortie string, ferie, dimanche bool, majorationFeriee float64) (*HoursResult, error) {
	entree, err := parseHeure(heureEntree)
	if err != nil {
		return nil, err
	}
	sortie, err := parseHeure(heureSortie)
	if err != nil {
		return nil, err
	}
	if sortie <= entree {
		return nil, ErrSortieAvantEntree
	}

	// integer quarter-hour ceiling, no float ceil wobble
	minutes := sortie - entree
	quarts := (minutes + 14) / 15
	total := float64(quarts) * 0.25

	res := &HoursResult{
		TotalHeures:   round2(total),
		PanierRepasDu: total >= 10,
	}

	switch {
	case dimanche && ferie:
		res.HeuresSupplementaires = round2(total)
		res.MajorationPourcentage = 100
	case ferie:
		if majorationFeriee <= 0 {
			majorationFeriee = 60
		}
		res.HeuresSupplementaires = round2(total)
		res.MajorationPourcentage = round2(majorationFeriee)
	case dimanche:
		res.HeuresSupplementaires = round2(total)
		res.MajorationPourcentage = 60
	default:
		res.HeuresNormales = round2(math.Min(total, 8))
		overtime := math.Max(0, total-8)
		res.HeuresSup15 = round2(math.Min(overtime, 2))
		res.HeuresSup40 = round2(math.Max(0, overtime-2))
		res.HeuresSupplementaires = round2(res.HeuresSup15 + res.HeuresSup40)
	}

	return res, nil
}

// parseHeure converts "HH:MM" to minutes since midnight.
func parseHeure(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrHeureInvalide
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrHeureInvalide
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrHeureInvalide
	}
	return h*60 + m, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
