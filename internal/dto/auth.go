package dto

// ── authentification ──

// LoginRequest credentials.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshRequest refresh-token exchange.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest password change for the current user.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// TokenResponse token pair returned by login/refresh.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}

// UserResponse sanitized account info.
type UserResponse struct {
	ID    string `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
