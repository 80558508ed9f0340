package dto

// ── suivi médical ──

// CreateVisiteMedicaleRequest new occupational-health visit.
type CreateVisiteMedicaleRequest struct {
	EmployeID   string `json:"employe_id"  binding:"required,uuid"`
	DateVisite  string `json:"date_visite" binding:"required,datetime=2006-01-02"`
	Type        string `json:"type"        binding:"required,oneof=Embauche Périodique Reprise"`
	Aptitude    string `json:"aptitude"    binding:"omitempty,max=30"`
	Commentaire string `json:"commentaire" binding:"omitempty,max=1000"`
}

// VisiteMedicaleResponse visit entry.
type VisiteMedicaleResponse struct {
	ID          string `json:"id"`
	EmployeID   string `json:"employe_id"`
	DateVisite  string `json:"date_visite"`
	Type        string `json:"type"`
	Aptitude    string `json:"aptitude,omitempty"`
	Commentaire string `json:"commentaire,omitempty"`
}

// ── accidents du travail ──

// CreateAccidentRequest new work-accident declaration.
type CreateAccidentRequest struct {
	EmployeID    string `json:"employe_id"    binding:"required,uuid"`
	DateAccident string `json:"date_accident" binding:"required,datetime=2006-01-02"`
	Lieu         string `json:"lieu"          binding:"omitempty,max=255"`
	Description  string `json:"description"   binding:"required,min=3"`
	Gravite      string `json:"gravite"       binding:"omitempty,oneof=Légère Moyenne Grave"`
	JoursArret   *int   `json:"jours_arret"   binding:"omitempty,min=1"`
}

// AccidentResponse accident entry.
type AccidentResponse struct {
	ID           string `json:"id"`
	EmployeID    string `json:"employe_id"`
	DateAccident string `json:"date_accident"`
	Lieu         string `json:"lieu,omitempty"`
	Description  string `json:"description"`
	Gravite      string `json:"gravite,omitempty"`
	JoursArret   *int   `json:"jours_arret,omitempty"`
}
