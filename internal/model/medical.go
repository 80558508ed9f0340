package model

import "time"

// medical visit types
const (
	VisiteEmbauche   = "Embauche"
	VisitePeriodique = "Périodique"
	VisiteReprise    = "Reprise"
)

// VisiteMedicale occupational-health visit — table visites_medicales.
type VisiteMedicale struct {
	VisiteID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"visite_id"`
	EmployeID   string    `gorm:"type:uuid;not null;index"                       json:"employe_id"`
	DateVisite  time.Time `gorm:"type:date;not null"                             json:"date_visite"`
	Type        string    `gorm:"type:varchar(30);not null"                      json:"type"`
	Aptitude    string    `gorm:"type:varchar(30)"                               json:"aptitude,omitempty"`
	Commentaire string    `gorm:"type:text"                                      json:"commentaire,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy   *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName maps the model to its table.
func (VisiteMedicale) TableName() string { return "visites_medicales" }

// AccidentTravail work accident declaration — table accidents_travail.
// JoursArret carries the prescribed sick-leave day count when any.
type AccidentTravail struct {
	AccidentID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"accident_id"`
	EmployeID    string    `gorm:"type:uuid;not null;index"                       json:"employe_id"`
	DateAccident time.Time `gorm:"type:date;not null"                             json:"date_accident"`
	Lieu         string    `gorm:"type:varchar(255)"                              json:"lieu,omitempty"`
	Description  string    `gorm:"type:text;not null"                             json:"description"`
	Gravite      string    `gorm:"type:varchar(20)"                               json:"gravite,omitempty"`
	JoursArret   *int      `json:"jours_arret,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy    *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName maps the model to its table.
func (AccidentTravail) TableName() string { return "accidents_travail" }
