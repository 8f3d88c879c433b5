package dto

import "time"

type AdminLoginRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
