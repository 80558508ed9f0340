package dto

// ── registre de structure ──

// CreateSiteRequest new site.
type CreateSiteRequest struct {
	Code  string `json:"code"  binding:"required,min=2,max=20"`
	Nom   string `json:"nom"   binding:"required,min=2,max=100"`
	Ville string `json:"ville" binding:"omitempty,max=100"`
}

// CreateDepartementRequest new department under a site.
type CreateDepartementRequest struct {
	SiteID string `json:"site_id" binding:"required,uuid"`
	Code   string `json:"code"    binding:"required,min=2,max=20"`
	Nom    string `json:"nom"     binding:"required,min=2,max=100"`
}

// CreateServiceRequest new service under a department.
type CreateServiceRequest struct {
	DepartementID string `json:"departement_id" binding:"required,uuid"`
	Code          string `json:"code"           binding:"required,min=2,max=20"`
	Nom           string `json:"nom"            binding:"required,min=2,max=100"`
}

// CreateEquipeRequest new team under a service.
type CreateEquipeRequest struct {
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Code      string `json:"code"       binding:"required,min=2,max=20"`
	Nom       string `json:"nom"        binding:"required,min=2,max=100"`
}

// CreatePosteRequest new position referential entry.
type CreatePosteRequest struct {
	Code     string `json:"code"     binding:"required,min=2,max=20"`
	Intitule string `json:"intitule" binding:"required,min=2,max=100"`
}

// CreateFonctionRequest new function referential entry.
type CreateFonctionRequest struct {
	Code     string `json:"code"     binding:"required,min=2,max=20"`
	Intitule string `json:"intitule" binding:"required,min=2,max=100"`
}

// StructureNodeResponse one node of the hierarchy.
type StructureNodeResponse struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Code     string `json:"code"`
	Nom      string `json:"nom"`
	Ville    string `json:"ville,omitempty"`
}

// ReferentielResponse one poste/fonction entry.
type ReferentielResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Intitule string `json:"intitule"`
}
