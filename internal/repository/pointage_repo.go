package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// PointageRepository attendance data access.
type PointageRepository interface {
	Create(ctx context.Context, pointage *model.Pointage) error
	GetByEmployeAndDate(ctx context.Context, employeID string, date time.Time) (*model.Pointage, error)
	// UpdateSortie writes the exit time and the computed breakdown;
	// called exactly once per record, at checkout.
	UpdateSortie(ctx context.Context, pointage *model.Pointage) error
	ListByEmployeMois(ctx context.Context, employeID string, debut, fin time.Time) ([]model.Pointage, error)
}

type pointageRepo struct {
	db *gorm.DB
}

// NewPointageRepo creates the GORM implementation.
func NewPointageRepo(db *gorm.DB) PointageRepository {
	return &pointageRepo{db: db}
}

func (r *pointageRepo) Create(ctx context.Context, pointage *model.Pointage) error {
	return r.db.WithContext(ctx).Create(pointage).Error
}

func (r *pointageRepo) GetByEmployeAndDate(ctx context.Context, employeID string, date time.Time) (*model.Pointage, error) {
	var pointage model.Pointage
	err := r.db.WithContext(ctx).
		Where("employe_id = ? AND date = ?", employeID, date).
		First(&pointage).Error
	if err != nil {
		return nil, err
	}
	return &pointage, nil
}

func (r *pointageRepo) UpdateSortie(ctx context.Context, pointage *model.Pointage) error {
	return r.db.WithContext(ctx).
		Model(&model.Pointage{}).
		Where("pointage_id = ?", pointage.PointageID).
		Updates(map[string]interface{}{
			"heure_sortie":               pointage.HeureSortie,
			"heures_normales":            pointage.HeuresNormales,
			"heures_sup_15":              pointage.HeuresSup15,
			"heures_sup_40":              pointage.HeuresSup40,
			"heures_sup_hors_majoration": pointage.HeuresSupHorsMajoration,
			"majoration_pourcentage":     pointage.MajorationPourcentage,
			"panier_repas_du":            pointage.PanierRepasDu,
		}).Error
}

func (r *pointageRepo) ListByEmployeMois(ctx context.Context, employeID string, debut, fin time.Time) ([]model.Pointage, error) {
	var pointages []model.Pointage
	err := r.db.WithContext(ctx).
		Where("employe_id = ? AND date >= ? AND date < ?", employeID, debut, fin).
		Order("date ASC").
		Find(&pointages).Error
	return pointages, err
}
