package dto

// ── congés ──

// CreateDemandeCongeRequest leave request submission.
type CreateDemandeCongeRequest struct {
	EmployeID string `json:"employe_id" binding:"required,uuid"`
	Type      string `json:"type"       binding:"required,max=30"`
	DateDebut string `json:"date_debut" binding:"required,datetime=2006-01-02"`
	DateFin   string `json:"date_fin"   binding:"required,datetime=2006-01-02"`
	Motif     string `json:"motif"      binding:"omitempty,max=500"`
}

// DecideCongeRequest appends a validation step.
type DecideCongeRequest struct {
	Niveau      string `json:"niveau"      binding:"required,max=50"`
	Decision    string `json:"decision"    binding:"required,oneof=Approuvé Rejeté 'En attente'"`
	Commentaire string `json:"commentaire" binding:"omitempty,max=500"`
}

// ValidationCongeResponse one workflow step.
type ValidationCongeResponse struct {
	ID           string  `json:"id"`
	ValidateurID *string `json:"validateur_id,omitempty"`
	Niveau       string  `json:"niveau"`
	Decision     string  `json:"decision"`
	Commentaire  string  `json:"commentaire,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// DemandeCongeResponse leave request with its workflow trail.
type DemandeCongeResponse struct {
	ID           string                    `json:"id"`
	EmployeID    string                    `json:"employe_id"`
	Type         string                    `json:"type"`
	DateDebut    string                    `json:"date_debut"`
	DateFin      string                    `json:"date_fin"`
	NbJours      float64                   `json:"nb_jours"`
	Motif        string                    `json:"motif,omitempty"`
	StatutActuel string                    `json:"statut_actuel"`
	Validations  []ValidationCongeResponse `json:"validations,omitempty"`
}
