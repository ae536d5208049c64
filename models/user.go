package models

import "time"

// ============================================================================
// USER MODEL
// ============================================================================

type User struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	FullName      string    `json:"fullName"`
	PasswordHash  string    `json:"-"` // Never expose in JSON
	CodeSecret    string    `json:"-"` // HOTP secret, never expose
	CodeCounter   uint64    `json:"-"`
	EmailVerified bool      `json:"emailVerified"`
	PhoneVerified bool      `json:"phoneVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ============================================================================
// AUTHENTICATION REQUESTS
// ============================================================================

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyRequest struct {
	UserID string `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required,len=6"`
}

// ResendRequest asks for a fresh verification code. Type is "email" or "phone".
type ResendRequest struct {
	UserID string `json:"userId" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=email phone"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ============================================================================
// RESPONSES
// ============================================================================

// Envelope is the shape every endpoint answers with. Payload fields are
// flattened next to it by the concrete response types below.
type Envelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Code    ErrorCode `json:"code,omitempty"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type RegisterResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    RegisterData `json:"data"`
}

type RegisterData struct {
	UserID string `json:"userId"`
}

type ProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}
