package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// ContratRepository contract data access.
type ContratRepository interface {
	// Create inserts the contract; for a non-avenant it also mirrors
	// the position onto the employee live row, in the same transaction.
	Create(ctx context.Context, contrat *model.Contrat) error
	GetByID(ctx context.Context, id string) (*model.Contrat, error)
	GetActifNonAvenant(ctx context.Context, employeID string) (*model.Contrat, error)
	ListByEmploye(ctx context.Context, employeID string) ([]model.Contrat, error)
}

type contratRepo struct {
	db *gorm.DB
}

// NewContratRepo creates the GORM implementation.
func NewContratRepo(db *gorm.DB) ContratRepository {
	return &contratRepo{db: db}
}

func (r *contratRepo) Create(ctx context.Context, contrat *model.Contrat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contrat).Error; err != nil {
			return err
		}
		if !contrat.IsAvenant && contrat.PosteID != nil {
			return tx.Model(&model.Employe{}).
				Where("employe_id = ?", contrat.EmployeID).
				Update("poste_id", *contrat.PosteID).Error
		}
		return nil
	})
}

func (r *contratRepo) GetByID(ctx context.Context, id string) (*model.Contrat, error) {
	var contrat model.Contrat
	err := r.db.WithContext(ctx).
		Where("contrat_id = ?", id).
		First(&contrat).Error
	if err != nil {
		return nil, err
	}
	return &contrat, nil
}

func (r *contratRepo) GetActifNonAvenant(ctx context.Context, employeID string) (*model.Contrat, error) {
	var contrat model.Contrat
	err := r.db.WithContext(ctx).
		Where("employe_id = ? AND statut = ? AND is_avenant = FALSE", employeID, model.ContratActif).
		First(&contrat).Error
	if err != nil {
		return nil, err
	}
	return &contrat, nil
}

func (r *contratRepo) ListByEmploye(ctx context.Context, employeID string) ([]model.Contrat, error) {
	var contrats []model.Contrat
	err := r.db.WithContext(ctx).
		Where("employe_id = ?", employeID).
		Order("date_debut DESC").
		Find(&contrats).Error
	return contrats, err
}
