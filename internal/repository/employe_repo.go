package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// EmployeFilters directory listing filters.
type EmployeFilters struct {
	Statut        string
	SiteID        string
	DepartementID string
}

// EmployeRepository employee data access. The multi-statement writes
// (hire, placement change, archive) each run in a single transaction;
// the placement change locks the employee row first so two concurrent
// mutations for the same employee serialize instead of both closing
// the same open history record (read committed is not enough on its
// own).
type EmployeRepository interface {
	CreateWithAffectation(ctx context.Context, e *model.Employe, infos *model.InfosPerso, contact *model.Contact, aff *model.Affectation) error
	GetByID(ctx context.Context, id string) (*model.Employe, error)
	GetByMatricule(ctx context.Context, matricule string) (*model.Employe, error)
	List(ctx context.Context, filters *EmployeFilters, offset, limit int) ([]model.Employe, int64, error)
	Update(ctx context.Context, e *model.Employe, infos *model.InfosPerso, contact *model.Contact) error
	UpdateWithAffectation(ctx context.Context, e *model.Employe, infos *model.InfosPerso, contact *model.Contact, aff *model.Affectation, motif string) error
	Archive(ctx context.Context, id string, closeDate time.Time, archivedBy string) (int64, error)
	GetOpenAffectation(ctx context.Context, employeID string) (*model.Affectation, error)
	ListAffectations(ctx context.Context, employeID string) ([]model.Affectation, error)
}

type employeRepo struct {
	db *gorm.DB
}

// NewEmployeRepo creates the GORM implementation.
func NewEmployeRepo(db *gorm.DB) EmployeRepository {
	return &employeRepo{db: db}
}

func (r *employeRepo) CreateWithAffectation(ctx context.Context, e *model.Employe, infos *model.InfosPerso, contact *model.Contact, aff *model.Affectation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		if infos != nil {
			infos.EmployeID = e.EmployeID
			if err := tx.Create(infos).Error; err != nil {
				return err
			}
		}
		if contact != nil {
			contact.EmployeID = e.EmployeID
			if err := tx.Create(contact).Error; err != nil {
				return err
			}
		}
		aff.EmployeID = e.EmployeID
		return tx.Create(aff).Error
	})
}

func (r *employeRepo) GetByID(ctx context.Context, id string) (*model.Employe, error) {
	var e model.Employe
	err := r.db.WithContext(ctx).
		Preload("Site").
		Preload("Departement").
		Preload("Service").
		Preload("Equipe").
		Preload("Poste").
		Preload("Fonction").
		Preload("InfosPerso").
		Preload("Contact").
		Where("employe_id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeRepo) GetByMatricule(ctx context.Context, matricule string) (*model.Employe, error) {
	var e model.Employe
	err := r.db.WithContext(ctx).
		Where("matricule = ?", matricule).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeRepo) List(ctx context.Context, filters *EmployeFilters, offset, limit int) ([]model.Employe, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Employe{})

	if filters != nil {
		if filters.Statut != "" {
			q = q.Where("statut = ?", filters.Statut)
		}
		if filters.SiteID != "" {
			q = q.Where("site_id = ?", filters.SiteID)
		}
		if filters.DepartementID != "" {
			q = q.Where("departement_id = ?", filters.DepartementID)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employes []model.Employe
	err := q.Preload("Site").Preload("Departement").Preload("Service").
		Preload("Equipe").Preload("Poste").Preload("Fonction").
		Offset(offset).Limit(limit).
		Order("matricule ASC").
		Find(&employes).Error
	if err != nil {
		return nil, 0, err
	}

	return employes, total, nil
}

func (r *employeRepo) Update(ctx context.Context, e *model.Employe, infos *model.InfosPerso, contact *model.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		return upsertSousFiches(tx, e.EmployeID, infos, contact)
	})
}

// UpdateWithAffectation applies a placement change atomically:
// lock the employee row, close the open history record at the day
// before the new record starts, insert the new record, then persist
// the live row and sub-records. Any failure rolls everything back.
func (r *employeRepo) UpdateWithAffectation(ctx context.Context, e *model.Employe, infos *model.InfosPerso, contact *model.Contact, aff *model.Affectation, motif string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// serialize concurrent placement changes per employee
		var locked model.Employe
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employe_id = ?", e.EmployeID).
			First(&locked).Error; err != nil {
			return err
		}

		var ouverte model.Affectation
		err := tx.Where("employe_id = ? AND date_fin IS NULL", e.EmployeID).
			First(&ouverte).Error
		if err != nil {
			return err
		}

		veille := aff.DateDebut.AddDate(0, 0, -1)
		commentaire := ouverte.Commentaire
		if commentaire != "" {
			commentaire += " | "
		}
		commentaire += "Clôture: " + motif
		if err := tx.Model(&model.Affectation{}).
			Where("affectation_id = ?", ouverte.AffectationID).
			Updates(map[string]interface{}{
				"date_fin":    veille,
				"commentaire": commentaire,
			}).Error; err != nil {
			return err
		}

		if err := tx.Create(aff).Error; err != nil {
			return err
		}

		if err := tx.Save(e).Error; err != nil {
			return err
		}
		return upsertSousFiches(tx, e.EmployeID, infos, contact)
	})
}

// Archive flips the employee to Licencié, severs the account link and
// closes the open history record. The status update is conditioned on
// the employee not already being archived; the matched row count is
// returned so the caller can translate zero into a not-found.
func (r *employeRepo) Archive(ctx context.Context, id string, closeDate time.Time, archivedBy string) (int64, error) {
	var matched int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Employe{}).
			Where("employe_id = ? AND statut <> ?", id, model.StatutLicencie).
			Updates(map[string]interface{}{
				"statut":     model.StatutLicencie,
				"user_id":    nil,
				"updated_by": archivedBy,
			})
		if res.Error != nil {
			return res.Error
		}
		matched = res.RowsAffected
		if matched == 0 {
			return nil // nothing to close either
		}

		return tx.Model(&model.Affectation{}).
			Where("employe_id = ? AND date_fin IS NULL", id).
			Update("date_fin", closeDate).Error
	})
	return matched, err
}

func (r *employeRepo) GetOpenAffectation(ctx context.Context, employeID string) (*model.Affectation, error) {
	var aff model.Affectation
	err := r.db.WithContext(ctx).
		Where("employe_id = ? AND date_fin IS NULL", employeID).
		First(&aff).Error
	if err != nil {
		return nil, err
	}
	return &aff, nil
}

func (r *employeRepo) ListAffectations(ctx context.Context, employeID string) ([]model.Affectation, error) {
	var affs []model.Affectation
	err := r.db.WithContext(ctx).
		Where("employe_id = ?", employeID).
		Order("date_debut ASC").
		Find(&affs).Error
	return affs, err
}

// upsertSousFiches writes the personal and contact sub-records,
// creating them when the employee was hired without them.
func upsertSousFiches(tx *gorm.DB, employeID string, infos *model.InfosPerso, contact *model.Contact) error {
	if infos != nil {
		infos.EmployeID = employeID
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employe_id"}},
			UpdateAll: true,
		}).Create(infos).Error; err != nil {
			return err
		}
	}
	if contact != nil {
		contact.EmployeID = employeID
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employe_id"}},
			UpdateAll: true,
		}).Create(contact).Error; err != nil {
			return err
		}
	}
	return nil
}
