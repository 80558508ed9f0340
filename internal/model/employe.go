package model

import "time"

// employee statuses
const (
	StatutActif    = "Actif"
	StatutConge    = "Congé"
	StatutMaladie  = "Maladie"
	StatutSuspendu = "Suspendu"
	StatutLicencie = "Licencié"
)

// Employe core employee record — table employes.
// The archive operation is a status transition to Licencié, not a row
// delete; the matricule stays reserved forever.
type Employe struct {
	EmployeID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employe_id"`
	Matricule     string    `gorm:"type:varchar(30);not null;uniqueIndex"          json:"matricule"`
	Nom           string    `gorm:"type:varchar(100);not null"                     json:"nom"`
	Prenom        string    `gorm:"type:varchar(100);not null"                     json:"prenom"`
	Statut        string    `gorm:"type:varchar(20);not null;default:'Actif'"      json:"statut"`
	DateEmbauche  time.Time `gorm:"type:date;not null"                             json:"date_embauche"`
	SiteID        string    `gorm:"type:uuid;not null"                             json:"site_id"`
	DepartementID string    `gorm:"type:uuid;not null"                             json:"departement_id"`
	ServiceID     string    `gorm:"type:uuid;not null"                             json:"service_id"`
	EquipeID      *string   `gorm:"type:uuid"                                      json:"equipe_id,omitempty"`
	PosteID       string    `gorm:"type:uuid;not null"                             json:"poste_id"`
	FonctionID    *string   `gorm:"type:uuid"                                      json:"fonction_id,omitempty"`
	UserID        *string   `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	BaseModel

	Site        *Site        `gorm:"foreignKey:SiteID;references:SiteID"                json:"site,omitempty"`
	Departement *Departement `gorm:"foreignKey:DepartementID;references:DepartementID" json:"departement,omitempty"`
	Service     *Service     `gorm:"foreignKey:ServiceID;references:ServiceID"          json:"service,omitempty"`
	Equipe      *Equipe      `gorm:"foreignKey:EquipeID;references:EquipeID"            json:"equipe,omitempty"`
	Poste       *Poste       `gorm:"foreignKey:PosteID;references:PosteID"              json:"poste,omitempty"`
	Fonction    *Fonction    `gorm:"foreignKey:FonctionID;references:FonctionID"        json:"fonction,omitempty"`
	InfosPerso  *InfosPerso  `gorm:"foreignKey:EmployeID;references:EmployeID"          json:"infos_perso,omitempty"`
	Contact     *Contact     `gorm:"foreignKey:EmployeID;references:EmployeID"          json:"contact,omitempty"`
}

// TableName maps the model to its table.
func (Employe) TableName() string { return "employes" }

// InfosPerso personal sub-record — table employes_infos_perso.
type InfosPerso struct {
	EmployeID             string     `gorm:"type:uuid;primaryKey"               json:"employe_id"`
	DateNaissance         *time.Time `gorm:"type:date"                          json:"date_naissance,omitempty"`
	LieuNaissance         string     `gorm:"type:varchar(100)"                  json:"lieu_naissance,omitempty"`
	Nationalite           string     `gorm:"type:varchar(50)"                   json:"nationalite,omitempty"`
	SituationMatrimoniale string     `gorm:"type:varchar(30)"                   json:"situation_matrimoniale,omitempty"`
	NombreEnfants         int        `gorm:"not null;default:0"                 json:"nombre_enfants"`
	CreatedAt             time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName maps the model to its table.
func (InfosPerso) TableName() string { return "employes_infos_perso" }

// Contact contact sub-record — table employes_contacts.
type Contact struct {
	EmployeID               string    `gorm:"type:uuid;primaryKey"               json:"employe_id"`
	Adresse                 string    `gorm:"type:varchar(255)"                  json:"adresse,omitempty"`
	Telephone               string    `gorm:"type:varchar(30)"                   json:"telephone,omitempty"`
	Email                   string    `gorm:"type:varchar(255)"                  json:"email,omitempty"`
	ContactUrgenceNom       string    `gorm:"type:varchar(100)"                  json:"contact_urgence_nom,omitempty"`
	ContactUrgenceTelephone string    `gorm:"type:varchar(30)"                   json:"contact_urgence_telephone,omitempty"`
	CreatedAt               time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName maps the model to its table.
func (Contact) TableName() string { return "employes_contacts" }
