package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// MedicalRepository data access for visits and work accidents.
type MedicalRepository interface {
	CreateVisite(ctx context.Context, visite *model.VisiteMedicale) error
	ListVisitesByEmploye(ctx context.Context, employeID string) ([]model.VisiteMedicale, error)
	CreateAccident(ctx context.Context, accident *model.AccidentTravail) error
	ListAccidentsByEmploye(ctx context.Context, employeID string) ([]model.AccidentTravail, error)
}

type medicalRepo struct {
	db *gorm.DB
}

// NewMedicalRepo creates the GORM implementation.
func NewMedicalRepo(db *gorm.DB) MedicalRepository {
	return &medicalRepo{db: db}
}

func (r *medicalRepo) CreateVisite(ctx context.Context, visite *model.VisiteMedicale) error {
	return r.db.WithContext(ctx).Create(visite).Error
}

func (r *medicalRepo) ListVisitesByEmploye(ctx context.Context, employeID string) ([]model.VisiteMedicale, error) {
	var visites []model.VisiteMedicale
	err := r.db.WithContext(ctx).
		Where("employe_id = ?", employeID).
		Order("date_visite DESC").
		Find(&visites).Error
	return visites, err
}

func (r *medicalRepo) CreateAccident(ctx context.Context, accident *model.AccidentTravail) error {
	return r.db.WithContext(ctx).Create(accident).Error
}

func (r *medicalRepo) ListAccidentsByEmploye(ctx context.Context, employeID string) ([]model.AccidentTravail, error) {
	var accidents []model.AccidentTravail
	err := r.db.WithContext(ctx).
		Where("employe_id = ?", employeID).
		Order("date_accident DESC").
		Find(&accidents).Error
	return accidents, err
}
