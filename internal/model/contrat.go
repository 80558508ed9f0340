package model

import "time"

// contract types
const (
	ContratCDI           = "CDI"
	ContratCDD           = "CDD"
	ContratStage         = "Stage"
	ContratConsultant    = "Consultant"
	ContratSaisonnier    = "Saisonnier"
	ContratApprentissage = "Apprentissage"
)

// contract statuses
const (
	ContratActif   = "Actif"
	ContratTermine = "Terminé"
)

// ContratTypes valid values for the type field.
var ContratTypes = []string{
	ContratCDI, ContratCDD, ContratStage,
	ContratConsultant, ContratSaisonnier, ContratApprentissage,
}

// Contrat employment contract — table contrats. An avenant references
// its parent contract and is exempt from the one-active-contract rule.
type Contrat struct {
	ContratID        string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"contrat_id"`
	EmployeID        string     `gorm:"type:uuid;not null;index"                       json:"employe_id"`
	Type             string     `gorm:"type:varchar(20);not null"                      json:"type"`
	Statut           string     `gorm:"type:varchar(20);not null;default:'Actif'"      json:"statut"`
	DateDebut        time.Time  `gorm:"type:date;not null"                             json:"date_debut"`
	DateFinPrevue    *time.Time `gorm:"type:date"                                      json:"date_fin_prevue,omitempty"`
	DateFinReelle    *time.Time `gorm:"type:date"                                      json:"date_fin_reelle,omitempty"`
	PosteID          *string    `gorm:"type:uuid"                                      json:"poste_id,omitempty"`
	SalaireDeBase    *float64   `gorm:"type:numeric(12,2)"                             json:"salaire_de_base,omitempty"`
	IsAvenant        bool       `gorm:"not null;default:false"                         json:"is_avenant"`
	ParentContractID *string    `gorm:"type:uuid"                                      json:"parent_contract_id,omitempty"`
	BaseModel

	Employe *Employe `gorm:"foreignKey:EmployeID;references:EmployeID" json:"employe,omitempty"`
	Poste   *Poste   `gorm:"foreignKey:PosteID;references:PosteID"     json:"poste,omitempty"`
}

// TableName maps the model to its table.
func (Contrat) TableName() string { return "contrats" }
