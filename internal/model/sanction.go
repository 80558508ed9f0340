package model

import "time"

// sanction types
const (
	SanctionAvertissementOral  = "Avertissement oral"
	SanctionAvertissementEcrit = "Avertissement écrit"
	SanctionBlame              = "Blâme"
	SanctionMiseAPied          = "Mise à pied"
	SanctionRetrogradation     = "Rétrogradation"
	SanctionLicenciement       = "Licenciement"
)

// SanctionTypes valid values for the type field.
var SanctionTypes = []string{
	SanctionAvertissementOral, SanctionAvertissementEcrit, SanctionBlame,
	SanctionMiseAPied, SanctionRetrogradation, SanctionLicenciement,
}

// Sanction disciplinary sanction — table sanctions. A Licenciement
// flips the employee to Licencié and closes the active contract.
type Sanction struct {
	SanctionID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"sanction_id"`
	EmployeID        string    `gorm:"type:uuid;not null;index"                       json:"employe_id"`
	Type             string    `gorm:"type:varchar(30);not null"                      json:"type"`
	DateConstatation time.Time `gorm:"type:date;not null"                             json:"date_constatation"`
	DateEffet        time.Time `gorm:"type:date;not null"                             json:"date_effet"`
	JoursMiseAPied   *int      `json:"jours_mise_a_pied,omitempty"`
	Motif            string    `gorm:"type:text;not null"                             json:"motif"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy        *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`

	Employe *Employe `gorm:"foreignKey:EmployeID;references:EmployeID" json:"employe,omitempty"`
}

// TableName maps the model to its table.
func (Sanction) TableName() string { return "sanctions" }
