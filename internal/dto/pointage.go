package dto

// ── pointage ──

// CheckinRequest morning check-in.
type CheckinRequest struct {
	EmployeID   string `json:"employe_id"   binding:"required,uuid"`
	Date        string `json:"date"         binding:"omitempty,datetime=2006-01-02"`
	HeureEntree string `json:"heure_entree" binding:"required,len=5"`
}

// CheckoutRequest evening check-out for the open record of the day.
type CheckoutRequest struct {
	Date        string `json:"date"         binding:"omitempty,datetime=2006-01-02"`
	HeureSortie string `json:"heure_sortie" binding:"required,len=5"`
}

// PointageListRequest month listing filter.
type PointageListRequest struct {
	PaginationRequest
	Mois string `form:"mois" binding:"omitempty,datetime=2006-01"`
}

// CheckinResponse check-in result.
type CheckinResponse struct {
	PointageID  string `json:"pointage_id"`
	EmployeID   string `json:"employe_id"`
	Date        string `json:"date"`
	HeureEntree string `json:"heure_entree"`
}

// PointageResponse full attendance record with the computed breakdown.
type PointageResponse struct {
	ID                      string  `json:"id"`
	EmployeID               string  `json:"employe_id"`
	Date                    string  `json:"date"`
	HeureEntree             string  `json:"heure_entree"`
	HeureSortie             *string `json:"heure_sortie,omitempty"`
	HeuresNormales          float64 `json:"heures_normales"`
	HeuresSup15             float64 `json:"heures_sup_15"`
	HeuresSup40             float64 `json:"heures_sup_40"`
	HeuresSupHorsMajoration float64 `json:"heures_sup_hors_majoration"`
	MajorationPourcentage   float64 `json:"majoration_pourcentage"`
	PanierRepasDu           bool    `json:"panier_repas_du"`
}

// ── jours fériés ──

// CreateJourFerieRequest new holiday.
type CreateJourFerieRequest struct {
	Date                  string   `json:"date"                   binding:"required,datetime=2006-01-02"`
	Nom                   string   `json:"nom"                    binding:"required,min=2,max=100"`
	Type                  string   `json:"type"                   binding:"omitempty,max=30"`
	Recurrent             bool     `json:"recurrent"`
	MajorationPourcentage *float64 `json:"majoration_pourcentage" binding:"omitempty,min=0,max=200"`
}

// JourFerieResponse holiday entry.
type JourFerieResponse struct {
	ID                    string  `json:"id"`
	Date                  string  `json:"date"`
	Nom                   string  `json:"nom"`
	Type                  string  `json:"type"`
	Recurrent             bool    `json:"recurrent"`
	MajorationPourcentage float64 `json:"majoration_pourcentage"`
	Actif                 bool    `json:"actif"`
}
