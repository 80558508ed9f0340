package model

import "time"

// user roles
const (
	RoleAdmin   = "admin"
	RoleRH      = "rh"
	RoleManager = "manager"
	RoleEmploye = "employe"
)

// User application account — table users.
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	Nom          string    `gorm:"type:varchar(100);not null"                     json:"nom"`
	Role         string    `gorm:"type:varchar(20);not null;default:'employe'"    json:"role"`
	Actif        bool      `gorm:"not null;default:true"                          json:"actif"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName maps the model to its table.
func (User) TableName() string { return "users" }
