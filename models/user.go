package models

// User represents user data in the system
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Don't return password hash in JSON
	IsAdmin      bool   `json:"is_admin"`
}

// UserRegister holds data needed for registration
type UserRegister struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

// UserLogin holds data needed for login
type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
