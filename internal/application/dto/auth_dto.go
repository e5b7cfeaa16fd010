package dto

import "time"

// LoginRequest credenciales del panel.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// UserResponse salida de un usuario (nunca incluye el hash del password).
type UserResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	UserNumber   string `json:"user_number,omitempty"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
	Message   string       `json:"message"`
}

// SessionResponse sesión activa (GET /api/auth/me).
type SessionResponse struct {
	UserID    string        `json:"user_id"`
	Username  string        `json:"username"`
	Role      string        `json:"role"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserResponse `json:"user,omitempty"`
}
