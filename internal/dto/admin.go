package dto

// ── documents ──

// CreateDocumentRequest new HR document entry.
type CreateDocumentRequest struct {
	Titre      string  `json:"titre"       binding:"required,min=2,max=255"`
	Categorie  string  `json:"categorie"   binding:"required,max=50"`
	FichierURL string  `json:"fichier_url" binding:"required,url"`
	EmployeID  *string `json:"employe_id"  binding:"omitempty,uuid"`
}

// DocumentResponse document entry.
type DocumentResponse struct {
	ID         string  `json:"id"`
	Titre      string  `json:"titre"`
	Categorie  string  `json:"categorie"`
	FichierURL string  `json:"fichier_url"`
	EmployeID  *string `json:"employe_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ── alertes ──

// CreateAlerteRequest manual alert.
type CreateAlerteRequest struct {
	Type      string  `json:"type"       binding:"required,max=50"`
	Message   string  `json:"message"    binding:"required,min=3"`
	EmployeID *string `json:"employe_id" binding:"omitempty,uuid"`
}

// AlerteResponse alert entry.
type AlerteResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Message   string  `json:"message"`
	EmployeID *string `json:"employe_id,omitempty"`
	Vue       bool    `json:"vue"`
	CreatedAt string  `json:"created_at"`
}
