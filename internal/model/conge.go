package model

import "time"

// leave request statuses
const (
	CongeSoumis    = "Soumis"
	CongeEnAttente = "En attente"
	CongeApprouve  = "Approuvé"
	CongeRejete    = "Rejeté"
	CongeAnnule    = "Annulé"
)

// validation step constants
const (
	NiveauSoumissionEmploye = "Soumission Employé"
	DecisionEnAttente       = "En attente"
	DecisionApprouvee       = "Approuvé"
	DecisionRejetee         = "Rejeté"
)

// StatutsCongesBloquants are the statuses whose date ranges block a
// new overlapping request for the same employee.
var StatutsCongesBloquants = []string{CongeSoumis, CongeEnAttente, CongeApprouve}

// DemandeConge leave request — table demandes_conges.
type DemandeConge struct {
	DemandeID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"demande_id"`
	EmployeID    string    `gorm:"type:uuid;not null;index"                       json:"employe_id"`
	Type         string    `gorm:"type:varchar(30);not null"                      json:"type"`
	DateDebut    time.Time `gorm:"type:date;not null"                             json:"date_debut"`
	DateFin      time.Time `gorm:"type:date;not null"                             json:"date_fin"`
	NbJours      float64   `gorm:"type:numeric(5,2);not null"                     json:"nb_jours"`
	Motif        string    `gorm:"type:text"                                      json:"motif,omitempty"`
	StatutActuel string    `gorm:"type:varchar(20);not null;default:'Soumis'"     json:"statut_actuel"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy    *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`

	Validations []ValidationConge `gorm:"foreignKey:DemandeID;references:DemandeID" json:"validations,omitempty"`
}

// TableName maps the model to its table.
func (DemandeConge) TableName() string { return "demandes_conges" }

// ValidationConge one append-only step of the validation workflow —
// table validations_conges.
type ValidationConge struct {
	ValidationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"validation_id"`
	DemandeID    string    `gorm:"type:uuid;not null;index"                       json:"demande_id"`
	ValidateurID *string   `gorm:"type:uuid"                                      json:"validateur_id,omitempty"`
	Niveau       string    `gorm:"type:varchar(50);not null"                      json:"niveau"`
	Decision     string    `gorm:"type:varchar(20);not null"                      json:"decision"`
	Commentaire  string    `gorm:"type:text"                                      json:"commentaire,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName maps the model to its table.
func (ValidationConge) TableName() string { return "validations_conges" }
