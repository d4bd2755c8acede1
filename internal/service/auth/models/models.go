package models

import (
	"time"

	"github.com/google/uuid"
)

// SignInRequest форма входа
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse установленная сессия
type SignInResponse struct {
	SessionID string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}
