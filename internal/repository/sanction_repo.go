package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// SanctionRepository sanction data access.
type SanctionRepository interface {
	Create(ctx context.Context, sanction *model.Sanction) error
	// CreateLicenciement inserts the sanction, flips the employee to
	// Licencié and stamps the active contract's end date, atomically.
	CreateLicenciement(ctx context.Context, sanction *model.Sanction, dateFin time.Time) error
	ListByEmploye(ctx context.Context, employeID string) ([]model.Sanction, error)
}

type sanctionRepo struct {
	db *gorm.DB
}

// NewSanctionRepo creates the GORM implementation.
func NewSanctionRepo(db *gorm.DB) SanctionRepository {
	return &sanctionRepo{db: db}
}

func (r *sanctionRepo) Create(ctx context.Context, sanction *model.Sanction) error {
	return r.db.WithContext(ctx).Create(sanction).Error
}

func (r *sanctionRepo) CreateLicenciement(ctx context.Context, sanction *model.Sanction, dateFin time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sanction).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Employe{}).
			Where("employe_id = ?", sanction.EmployeID).
			Update("statut", model.StatutLicencie).Error; err != nil {
			return err
		}

		// close whatever contract is running; a terminated employee may
		// legitimately have none (e.g. consultant record kept lean)
		return tx.Model(&model.Contrat{}).
			Where("employe_id = ? AND statut = ?", sanction.EmployeID, model.ContratActif).
			Updates(map[string]interface{}{
				"statut":          model.ContratTermine,
				"date_fin_reelle": dateFin,
			}).Error
	})
}

func (r *sanctionRepo) ListByEmploye(ctx context.Context, employeID string) ([]model.Sanction, error) {
	var sanctions []model.Sanction
	err := r.db.WithContext(ctx).
		Where("employe_id = ?", employeID).
		Order("date_constatation DESC").
		Find(&sanctions).Error
	return sanctions, err
}
