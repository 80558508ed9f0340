package dto

// ── sanctions ──

// CreateSanctionRequest new disciplinary sanction. JoursMiseAPied is
// required and positive only for type "Mise à pied"; the conditional
// branch is checked in the service after structural binding.
type CreateSanctionRequest struct {
	EmployeID        string `json:"employe_id"         binding:"required,uuid"`
	Type             string `json:"type"               binding:"required,oneof='Avertissement oral' 'Avertissement écrit' Blâme 'Mise à pied' Rétrogradation Licenciement"`
	DateConstatation string `json:"date_constatation"  binding:"required,datetime=2006-01-02"`
	DateEffet        string `json:"date_effet"         binding:"required,datetime=2006-01-02"`
	JoursMiseAPied   *int   `json:"jours_mise_a_pied"  binding:"omitempty,min=1"`
	Motif            string `json:"motif"              binding:"required,min=3"`
}

// SanctionResponse sanction entry.
type SanctionResponse struct {
	ID               string `json:"id"`
	EmployeID        string `json:"employe_id"`
	Type             string `json:"type"`
	DateConstatation string `json:"date_constatation"`
	DateEffet        string `json:"date_effet"`
	JoursMiseAPied   *int   `json:"jours_mise_a_pied,omitempty"`
	Motif            string `json:"motif"`
}
