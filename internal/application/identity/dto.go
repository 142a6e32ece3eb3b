package identity

import (
	"time"

	"github.com/notaventas/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"clave" binding:"required"`
}

// LoginResponse carries the issued tokens and the authenticated user
type LoginResponse struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	User                  UserResponse `json:"usuario"`
}

// RefreshRequest carries a refresh token when it is not sent as a cookie
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest changes the caller's own password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"clave_actual" binding:"required"`
	NewPassword     string `json:"clave_nueva" binding:"required,min=8,max=128"`
}

// VerifyPasswordRequest re-confirms the caller's password before a
// sensitive action
type VerifyPasswordRequest struct {
	Password string `json:"clave" binding:"required"`
}

// CreateUserRequest represents a request to create a back-office account
type CreateUserRequest struct {
	Username  string     `json:"usuario" binding:"required,min=3,max=100"`
	Password  string     `json:"clave" binding:"required,min=8,max=128"`
	FirstName string     `json:"nombre" binding:"omitempty,max=100"`
	LastName  string     `json:"apellido" binding:"omitempty,max=100"`
	Email     string     `json:"email" binding:"omitempty,email,max=200"`
	Position  string     `json:"cargo" binding:"omitempty,max=100"`
	RUT       string     `json:"rut" binding:"omitempty,rut"`
	IsAdmin   bool       `json:"es_admin"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateUserRequest updates a user's profile. Nil fields keep their value.
type UpdateUserRequest struct {
	FirstName *string    `json:"nombre" binding:"omitempty,max=100"`
	LastName  *string    `json:"apellido" binding:"omitempty,max=100"`
	Email     *string    `json:"email" binding:"omitempty,email,max=200"`
	Position  *string    `json:"cargo" binding:"omitempty,max=100"`
	RUT       *string    `json:"rut" binding:"omitempty,rut"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// ResetPasswordRequest sets a new password for a user (admin operation)
type ResetPasswordRequest struct {
	NewPassword string `json:"clave_nueva" binding:"required,min=8,max=128"`
}

// UserResponse represents a user account in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"usuario"`
	FirstName   string     `json:"nombre"`
	LastName    string     `json:"apellido"`
	Email       string     `json:"email"`
	Position    string     `json:"cargo"`
	RUT         string     `json:"rut"`
	IsAdmin     bool       `json:"es_admin"`
	Status      string     `json:"estado"`
	LastLoginAt *time.Time `json:"ultimo_acceso,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// UserListFilter represents filter options for the user list
type UserListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"estado" binding:"omitempty,oneof=active deactivated"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToUserResponse maps a domain user to its response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Position:    user.Position,
		RUT:         user.RUT,
		IsAdmin:     user.IsAdmin,
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		Version:     user.Version,
	}
}

// ToUserResponses maps a slice of domain users to response DTOs
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
