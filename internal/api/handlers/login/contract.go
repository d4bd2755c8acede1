package login

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

type AuthService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error)
}

type FormValidator interface {
	Validate(form interface{}) error
}

type SessionCookie interface {
	Set(w http.ResponseWriter, sessionID string, expiresAt time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
