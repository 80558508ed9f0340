package model

import "time"

// JourFerie public holiday — table jours_feries. Recurrent holidays
// match on month/day in every later year.
type JourFerie struct {
	JourFerieID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"jour_ferie_id"`
	Date                  time.Time `gorm:"type:date;not null;uniqueIndex"                 json:"date"`
	Nom                   string    `gorm:"type:varchar(100);not null"                     json:"nom"`
	Type                  string    `gorm:"type:varchar(30);not null;default:'Légal'"      json:"type"`
	Recurrent             bool      `gorm:"not null;default:false"                         json:"recurrent"`
	MajorationPourcentage float64   `gorm:"type:numeric(5,2);not null;default:60"          json:"majoration_pourcentage"`
	Actif                 bool      `gorm:"not null;default:true"                          json:"actif"`
	BaseModel
}

// TableName maps the model to its table.
func (JourFerie) TableName() string { return "jours_feries" }

// CouvreDate reports whether the holiday applies to the given day,
// honoring the recurrence flag.
func (j *JourFerie) CouvreDate(d time.Time) bool {
	if !j.Actif {
		return false
	}
	if j.Date.Month() == d.Month() && j.Date.Day() == d.Day() {
		if j.Recurrent {
			return true
		}
		return j.Date.Year() == d.Year()
	}
	return false
}
