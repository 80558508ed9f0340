package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// JourFerieRepository holiday calendar data access.
type JourFerieRepository interface {
	Create(ctx context.Context, jour *model.JourFerie) error
	GetByDate(ctx context.Context, date time.Time) (*model.JourFerie, error)
	// FindForDate resolves the holiday applying to a day, honoring
	// recurrent holidays (month/day match in later years).
	FindForDate(ctx context.Context, date time.Time) (*model.JourFerie, error)
	List(ctx context.Context) ([]model.JourFerie, error)
	Deactivate(ctx context.Context, id string, updatedBy string) (int64, error)
}

type jourFerieRepo struct {
	db *gorm.DB
}

// NewJourFerieRepo creates the GORM implementation.
func NewJourFerieRepo(db *gorm.DB) JourFerieRepository {
	return &jourFerieRepo{db: db}
}

func (r *jourFerieRepo) Create(ctx context.Context, jour *model.JourFerie) error {
	return r.db.WithContext(ctx).Create(jour).Error
}

func (r *jourFerieRepo) GetByDate(ctx context.Context, date time.Time) (*model.JourFerie, error) {
	var jour model.JourFerie
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&jour).Error
	if err != nil {
		return nil, err
	}
	return &jour, nil
}

func (r *jourFerieRepo) FindForDate(ctx context.Context, date time.Time) (*model.JourFerie, error) {
	var jour model.JourFerie
	err := r.db.WithContext(ctx).
		Where("actif = TRUE AND (date = ? OR (recurrent = TRUE AND EXTRACT(MONTH FROM date) = ? AND EXTRACT(DAY FROM date) = ?))",
			date, int(date.Month()), date.Day()).
		Order("date DESC").
		First(&jour).Error
	if err != nil {
		return nil, err
	}
	return &jour, nil
}

func (r *jourFerieRepo) List(ctx context.Context) ([]model.JourFerie, error) {
	var jours []model.JourFerie
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&jours).Error
	return jours, err
}

func (r *jourFerieRepo) Deactivate(ctx context.Context, id string, updatedBy string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.JourFerie{}).
		Where("jour_ferie_id = ? AND actif = TRUE", id).
		Updates(map[string]interface{}{
			"actif":      false,
			"updated_by": updatedBy,
		})
	return res.RowsAffected, res.Error
}
