package dto

// ── annuaire des employés ──

// InfosPersoInput personal sub-record fields.
type InfosPersoInput struct {
	DateNaissance         string `json:"date_naissance"         binding:"omitempty,datetime=2006-01-02"`
	LieuNaissance         string `json:"lieu_naissance"         binding:"omitempty,max=100"`
	Nationalite           string `json:"nationalite"            binding:"omitempty,max=50"`
	SituationMatrimoniale string `json:"situation_matrimoniale" binding:"omitempty,max=30"`
	NombreEnfants         int    `json:"nombre_enfants"         binding:"omitempty,min=0"`
}

// ContactInput contact sub-record fields.
type ContactInput struct {
	Adresse                 string `json:"adresse"                   binding:"omitempty,max=255"`
	Telephone               string `json:"telephone"                 binding:"omitempty,max=30"`
	Email                   string `json:"email"                     binding:"omitempty,email"`
	ContactUrgenceNom       string `json:"contact_urgence_nom"       binding:"omitempty,max=100"`
	ContactUrgenceTelephone string `json:"contact_urgence_telephone" binding:"omitempty,max=30"`
}

// CreateEmployeRequest hire.
type CreateEmployeRequest struct {
	Matricule     string           `json:"matricule"      binding:"required,min=2,max=30"`
	Nom           string           `json:"nom"            binding:"required,min=1,max=100"`
	Prenom        string           `json:"prenom"         binding:"required,min=1,max=100"`
	DateEmbauche  string           `json:"date_embauche"  binding:"omitempty,datetime=2006-01-02"`
	SiteID        string           `json:"site_id"        binding:"required,uuid"`
	DepartementID string           `json:"departement_id" binding:"required,uuid"`
	ServiceID     string           `json:"service_id"     binding:"required,uuid"`
	EquipeID      *string          `json:"equipe_id"      binding:"omitempty,uuid"`
	PosteID       string           `json:"poste_id"       binding:"required,uuid"`
	FonctionID    *string          `json:"fonction_id"    binding:"omitempty,uuid"`
	UserID        *string          `json:"user_id"        binding:"omitempty,uuid"`
	InfosPerso    *InfosPersoInput `json:"infos_perso"`
	Contact       *ContactInput    `json:"contact"`
}

// UpdateEmployeRequest typed partial update. Absent fields (nil) are
// left unchanged; any present placement field that differs from the
// live record requires MotifChangement.
type UpdateEmployeRequest struct {
	Nom             *string          `json:"nom"             binding:"omitempty,min=1,max=100"`
	Prenom          *string          `json:"prenom"          binding:"omitempty,min=1,max=100"`
	Statut          *string          `json:"statut"          binding:"omitempty,oneof=Actif Congé Maladie Suspendu"`
	SiteID          *string          `json:"site_id"         binding:"omitempty,uuid"`
	DepartementID   *string          `json:"departement_id"  binding:"omitempty,uuid"`
	ServiceID       *string          `json:"service_id"      binding:"omitempty,uuid"`
	EquipeID        *string          `json:"equipe_id"       binding:"omitempty,uuid"`
	PosteID         *string          `json:"poste_id"        binding:"omitempty,uuid"`
	FonctionID      *string          `json:"fonction_id"     binding:"omitempty,uuid"`
	MotifChangement string           `json:"motif_changement" binding:"omitempty,max=255"`
	InfosPerso      *InfosPersoInput `json:"infos_perso"`
	Contact         *ContactInput    `json:"contact"`
}

// EmployeListRequest directory filters.
type EmployeListRequest struct {
	PaginationRequest
	Statut        string `form:"statut"         binding:"omitempty,oneof=Actif Congé Maladie Suspendu Licencié"`
	SiteID        string `form:"site_id"        binding:"omitempty,uuid"`
	DepartementID string `form:"departement_id" binding:"omitempty,uuid"`
}

// PlacementResponse resolved current placement.
type PlacementResponse struct {
	Site        *StructureNodeResponse `json:"site,omitempty"`
	Departement *StructureNodeResponse `json:"departement,omitempty"`
	Service     *StructureNodeResponse `json:"service,omitempty"`
	Equipe      *StructureNodeResponse `json:"equipe,omitempty"`
	Poste       *ReferentielResponse   `json:"poste,omitempty"`
	Fonction    *ReferentielResponse   `json:"fonction,omitempty"`
}

// EmployeResponse directory entry.
type EmployeResponse struct {
	ID           string             `json:"id"`
	Matricule    string             `json:"matricule"`
	Nom          string             `json:"nom"`
	Prenom       string             `json:"prenom"`
	Statut       string             `json:"statut"`
	DateEmbauche string             `json:"date_embauche"`
	Placement    PlacementResponse  `json:"placement"`
	UserID       *string            `json:"user_id,omitempty"`
	InfosPerso   *InfosPersoInput   `json:"infos_perso,omitempty"`
	Contact      *ContactInput      `json:"contact,omitempty"`
	CreatedAt    string             `json:"created_at"`
}

// CreateEmployeResponse hire result.
type CreateEmployeResponse struct {
	EmployeID string `json:"employe_id"`
	Matricule string `json:"matricule"`
}

// UpdateEmployeResponse update result; AffectationChanged reports
// whether a history record was written.
type UpdateEmployeResponse struct {
	Employe            EmployeResponse `json:"employe"`
	AffectationChanged bool            `json:"affectation_changed"`
}

// AffectationResponse one placement-history entry.
type AffectationResponse struct {
	ID          string            `json:"id"`
	EmployeID   string            `json:"employe_id"`
	DateDebut   string            `json:"date_debut"`
	DateFin     *string           `json:"date_fin,omitempty"`
	Motif       string            `json:"motif"`
	Commentaire string            `json:"commentaire,omitempty"`
	Ancien      PlacementIDs      `json:"ancien"`
	Nouveau     PlacementIDs      `json:"nouveau"`
	CreatedBy   *string           `json:"created_by,omitempty"`
}

// PlacementIDs raw placement snapshot.
type PlacementIDs struct {
	SiteID        *string `json:"site_id,omitempty"`
	DepartementID *string `json:"departement_id,omitempty"`
	ServiceID     *string `json:"service_id,omitempty"`
	EquipeID      *string `json:"equipe_id,omitempty"`
	PosteID       *string `json:"poste_id,omitempty"`
	FonctionID    *string `json:"fonction_id,omitempty"`
}
