package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// CongeRepository leave request data access.
type CongeRepository interface {
	// CreateWithValidation inserts the request and its initial
	// "Soumission Employé" validation step atomically.
	CreateWithValidation(ctx context.Context, demande *model.DemandeConge, validation *model.ValidationConge) error
	GetByID(ctx context.Context, id string) (*model.DemandeConge, error)
	// HasOverlap reports whether any blocking-status request of the
	// employee intersects [debut, fin], containment included.
	HasOverlap(ctx context.Context, employeID string, debut, fin time.Time) (bool, error)
	ListByEmploye(ctx context.Context, employeID string) ([]model.DemandeConge, error)
	// AppendValidation adds a workflow step and moves statut_actuel,
	// atomically.
	AppendValidation(ctx context.Context, demandeID string, validation *model.ValidationConge, nouveauStatut string) error
}

type congeRepo struct {
	db *gorm.DB
}

// NewCongeRepo creates the GORM implementation.
func NewCongeRepo(db *gorm.DB) CongeRepository {
	return &congeRepo{db: db}
}

func (r *congeRepo) CreateWithValidation(ctx context.Context, demande *model.DemandeConge, validation *model.ValidationConge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(demande).Error; err != nil {
			return err
		}
		validation.DemandeID = demande.DemandeID
		return tx.Create(validation).Error
	})
}

func (r *congeRepo) GetByID(ctx context.Context, id string) (*model.DemandeConge, error) {
	var demande model.DemandeConge
	err := r.db.WithContext(ctx).
		Preload("Validations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("demande_id = ?", id).
		First(&demande).Error
	if err != nil {
		return nil, err
	}
	return &demande, nil
}

func (r *congeRepo) HasOverlap(ctx context.Context, employeID string, debut, fin time.Time) (bool, error) {
	var count int64
	// date_debut <= fin AND date_fin >= debut catches partial overlap
	// and containment in both directions
	err := r.db.WithContext(ctx).
		Model(&model.DemandeConge{}).
		Where("employe_id = ? AND statut_actuel IN ? AND date_debut <= ? AND date_fin >= ?",
			employeID, model.StatutsCongesBloquants, fin, debut).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *congeRepo) ListByEmploye(ctx context.Context, employeID string) ([]model.DemandeConge, error) {
	var demandes []model.DemandeConge
	err := r.db.WithContext(ctx).
		Preload("Validations").
		Where("employe_id = ?", employeID).
		Order("date_debut DESC").
		Find(&demandes).Error
	return demandes, err
}

func (r *congeRepo) AppendValidation(ctx context.Context, demandeID string, validation *model.ValidationConge, nouveauStatut string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		validation.DemandeID = demandeID
		if err := tx.Create(validation).Error; err != nil {
			return err
		}
		return tx.Model(&model.DemandeConge{}).
			Where("demande_id = ?", demandeID).
			Update("statut_actuel", nouveauStatut).Error
	})
}
