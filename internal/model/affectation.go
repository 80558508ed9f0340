package model

import "time"

// MotifEmbauche is the motif of the record opened at hire.
const MotifEmbauche = "Embauche initiale"

// Affectation one entry of an employee's placement history — table
// affectations. Ordered by DateDebut the records form a non-overlapping
// timeline; exactly one record per employee has DateFin IS NULL (the
// current placement), enforced by a partial unique index and by the
// close-then-insert transaction in the employee repository.
type Affectation struct {
	AffectationID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"affectation_id"`
	EmployeID     string     `gorm:"type:uuid;not null;index"                       json:"employe_id"`
	DateDebut     time.Time  `gorm:"type:date;not null"                             json:"date_debut"`
	DateFin       *time.Time `gorm:"type:date"                                      json:"date_fin,omitempty"`
	Motif         string     `gorm:"type:varchar(255);not null"                     json:"motif"`
	Commentaire   string     `gorm:"type:text"                                      json:"commentaire,omitempty"`

	// placement before the change (empty on the initial record)
	AncienSiteID        *string `gorm:"type:uuid" json:"ancien_site_id,omitempty"`
	AncienDepartementID *string `gorm:"type:uuid" json:"ancien_departement_id,omitempty"`
	AncienServiceID     *string `gorm:"type:uuid" json:"ancien_service_id,omitempty"`
	AncienEquipeID      *string `gorm:"type:uuid" json:"ancien_equipe_id,omitempty"`
	AncienPosteID       *string `gorm:"type:uuid" json:"ancien_poste_id,omitempty"`
	AncienFonctionID    *string `gorm:"type:uuid" json:"ancien_fonction_id,omitempty"`

	// placement after the change
	NouveauSiteID        *string `gorm:"type:uuid" json:"nouveau_site_id,omitempty"`
	NouveauDepartementID *string `gorm:"type:uuid" json:"nouveau_departement_id,omitempty"`
	NouveauServiceID     *string `gorm:"type:uuid" json:"nouveau_service_id,omitempty"`
	NouveauEquipeID      *string `gorm:"type:uuid" json:"nouveau_equipe_id,omitempty"`
	NouveauPosteID       *string `gorm:"type:uuid" json:"nouveau_poste_id,omitempty"`
	NouveauFonctionID    *string `gorm:"type:uuid" json:"nouveau_fonction_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                          json:"created_by,omitempty"`
}

// TableName maps the model to its table.
func (Affectation) TableName() string { return "affectations" }
