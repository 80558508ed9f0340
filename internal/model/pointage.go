package model

import "time"

// Pointage daily attendance record — table pointages. One row per
// (employé, date); the derived hour columns are written exactly once,
// at checkout, and never at check-in.
type Pointage struct {
	PointageID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"pointage_id"`
	EmployeID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_pointage_jour"   json:"employe_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_pointage_jour"   json:"date"`
	HeureEntree string    `gorm:"type:varchar(5);not null"                           json:"heure_entree"`
	HeureSortie *string   `gorm:"type:varchar(5)"                                    json:"heure_sortie,omitempty"`

	HeuresNormales          float64 `gorm:"type:numeric(5,2);not null;default:0" json:"heures_normales"`
	HeuresSup15             float64 `gorm:"type:numeric(5,2);not null;default:0" json:"heures_sup_15"`
	HeuresSup40             float64 `gorm:"type:numeric(5,2);not null;default:0" json:"heures_sup_40"`
	HeuresSupHorsMajoration float64 `gorm:"type:numeric(5,2);not null;default:0" json:"heures_sup_hors_majoration"`
	MajorationPourcentage   float64 `gorm:"type:numeric(5,2);not null;default:0" json:"majoration_pourcentage"`
	PanierRepasDu           bool    `gorm:"not null;default:false"               json:"panier_repas_du"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Employe *Employe `gorm:"foreignKey:EmployeID;references:EmployeID" json:"employe,omitempty"`
}

// TableName maps the model to its table.
func (Pointage) TableName() string { return "pointages" }
