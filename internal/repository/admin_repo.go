package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
)

// DocumentRepository document library data access.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	List(ctx context.Context, offset, limit int) ([]model.Document, int64, error)
}

type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepo creates the GORM implementation.
func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepo) List(ctx context.Context, offset, limit int) ([]model.Document, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Document{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []model.Document
	err := q.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, total, err
}

// AlerteRepository alert data access.
type AlerteRepository interface {
	Create(ctx context.Context, alerte *model.Alerte) error
	List(ctx context.Context, nonVuesSeulement bool) ([]model.Alerte, error)
	MarkSeen(ctx context.Context, id string) (int64, error)
}

type alerteRepo struct {
	db *gorm.DB
}

// NewAlerteRepo creates the GORM implementation.
func NewAlerteRepo(db *gorm.DB) AlerteRepository {
	return &alerteRepo{db: db}
}

func (r *alerteRepo) Create(ctx context.Context, alerte *model.Alerte) error {
	return r.db.WithContext(ctx).Create(alerte).Error
}

func (r *alerteRepo) List(ctx context.Context, nonVuesSeulement bool) ([]model.Alerte, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if nonVuesSeulement {
		q = q.Where("vue = FALSE")
	}
	var alertes []model.Alerte
	err := q.Find(&alertes).Error
	return alertes, err
}

func (r *alerteRepo) MarkSeen(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Alerte{}).
		Where("alerte_id = ?", id).
		Update("vue", true)
	return res.RowsAffected, res.Error
}
