package model

import "time"

// Document HR document library entry — table documents.
type Document struct {
	DocumentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"document_id"`
	Titre      string    `gorm:"type:varchar(255);not null"                     json:"titre"`
	Categorie  string    `gorm:"type:varchar(50);not null"                      json:"categorie"`
	FichierURL string    `gorm:"type:varchar(500);not null"                     json:"fichier_url"`
	EmployeID  *string   `gorm:"type:uuid"                                      json:"employe_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy  *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName maps the model to its table.
func (Document) TableName() string { return "documents" }

// Alerte manual HR alert — table alertes. Delivery is out of scope;
// alerts are only stored and listed.
type Alerte struct {
	AlerteID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"alerte_id"`
	Type      string    `gorm:"type:varchar(50);not null"                      json:"type"`
	Message   string    `gorm:"type:text;not null"                             json:"message"`
	EmployeID *string   `gorm:"type:uuid"                                      json:"employe_id,omitempty"`
	Vue       bool      `gorm:"not null;default:false"                         json:"vue"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName maps the model to its table.
func (Alerte) TableName() string { return "alertes" }
