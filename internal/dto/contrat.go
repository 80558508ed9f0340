package dto

// ── contrats ──

// CreateContratRequest new contract or avenant.
type CreateContratRequest struct {
	EmployeID        string   `json:"employe_id"         binding:"required,uuid"`
	Type             string   `json:"type"               binding:"required,oneof=CDI CDD Stage Consultant Saisonnier Apprentissage"`
	DateDebut        string   `json:"date_debut"         binding:"required,datetime=2006-01-02"`
	DateFinPrevue    *string  `json:"date_fin_prevue"    binding:"omitempty,datetime=2006-01-02"`
	PosteID          *string  `json:"poste_id"           binding:"omitempty,uuid"`
	SalaireDeBase    *float64 `json:"salaire_de_base"    binding:"omitempty,min=0"`
	IsAvenant        bool     `json:"is_avenant"`
	ParentContractID *string  `json:"parent_contract_id" binding:"omitempty,uuid"`
}

// ContratResponse contract entry.
type ContratResponse struct {
	ID               string   `json:"id"`
	EmployeID        string   `json:"employe_id"`
	Type             string   `json:"type"`
	Statut           string   `json:"statut"`
	DateDebut        string   `json:"date_debut"`
	DateFinPrevue    *string  `json:"date_fin_prevue,omitempty"`
	DateFinReelle    *string  `json:"date_fin_reelle,omitempty"`
	PosteID          *string  `json:"poste_id,omitempty"`
	SalaireDeBase    *float64 `json:"salaire_de_base,omitempty"`
	IsAvenant        bool     `json:"is_avenant"`
	ParentContractID *string  `json:"parent_contract_id,omitempty"`
}
