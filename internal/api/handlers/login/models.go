package login

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

// LoginForm форма входа, возвращаемая пользователю (без пароля)
type LoginForm struct {
	Email string `json:"email"`
}

// LoginPage пустая форма входа
type LoginPage struct {
	Form LoginForm `json:"form"`
}

// SignedInResponse данные установленной сессии
type SignedInResponse struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}

// ToForm возвращает форму для повторного показа
func ToForm(req *models.SignInRequest) LoginForm {
	return LoginForm{Email: req.Email}
}

// FromServiceResponse конвертирует ответ сервиса
func FromServiceResponse(resp *models.SignInResponse) *SignedInResponse {
	return &SignedInResponse{
		UserID:    resp.UserID.String(),
		Email:     resp.Email,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
	}
}
