package model

// Organizational hierarchy: site → département → service → équipe,
// plus the flat postes / fonctions referentials. The hierarchy is
// append-only; no delete is modeled.

// Site — table sites.
type Site struct {
	SiteID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"site_id"`
	Code   string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Nom    string `gorm:"type:varchar(100);not null"                     json:"nom"`
	Ville  string `gorm:"type:varchar(100)"                              json:"ville,omitempty"`
	BaseModel
}

// TableName maps the model to its table.
func (Site) TableName() string { return "sites" }

// Departement — table departements.
type Departement struct {
	DepartementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"departement_id"`
	SiteID        string `gorm:"type:uuid;not null"                             json:"site_id"`
	Code          string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Nom           string `gorm:"type:varchar(100);not null"                     json:"nom"`
	BaseModel

	Site *Site `gorm:"foreignKey:SiteID;references:SiteID" json:"site,omitempty"`
}

// TableName maps the model to its table.
func (Departement) TableName() string { return "departements" }

// Service — table services.
type Service struct {
	ServiceID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"service_id"`
	DepartementID string `gorm:"type:uuid;not null"                             json:"departement_id"`
	Code          string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Nom           string `gorm:"type:varchar(100);not null"                     json:"nom"`
	BaseModel

	Departement *Departement `gorm:"foreignKey:DepartementID;references:DepartementID" json:"departement,omitempty"`
}

// TableName maps the model to its table.
func (Service) TableName() string { return "services" }

// Equipe — table equipes.
type Equipe struct {
	EquipeID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"equipe_id"`
	ServiceID string `gorm:"type:uuid;not null"                             json:"service_id"`
	Code      string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Nom       string `gorm:"type:varchar(100);not null"                     json:"nom"`
	BaseModel

	Service *Service `gorm:"foreignKey:ServiceID;references:ServiceID" json:"service,omitempty"`
}

// TableName maps the model to its table.
func (Equipe) TableName() string { return "equipes" }

// Poste — table postes.
type Poste struct {
	PosteID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"poste_id"`
	Code     string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Intitule string `gorm:"type:varchar(100);not null"                     json:"intitule"`
	BaseModel
}

// TableName maps the model to its table.
func (Poste) TableName() string { return "postes" }

// Fonction — table fonctions.
type Fonction struct {
	FonctionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"fonction_id"`
	Code       string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Intitule   string `gorm:"type:varchar(100);not null"                     json:"intitule"`
	BaseModel
}

// TableName maps the model to its table.
func (Fonction) TableName() string { return "fonctions" }
