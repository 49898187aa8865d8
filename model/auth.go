package model

import "time"

// OTPRecord is the otp collection document, one live code per email.
type OTPRecord struct {
	Email     string    `bson:"email" json:"email"`
	OTP       string    `bson:"otp" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"pwd" validate:"required"`
}

type SessionDetails struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse keeps the legacy payload shape: failures come back as
// success=false with a message rather than an error status.
type LoginResponse struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	Token          string          `json:"token,omitempty"`
	SessionDetails *SessionDetails `json:"session_details,omitempty"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"pwd" validate:"required,min=6"`
}

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"pwd" validate:"required,min=6"`
	OTP      string `json:"otp" validate:"required,len=6"`
}

type VerifyOTPResponse struct {
	UserID string `json:"user_id"`
}
