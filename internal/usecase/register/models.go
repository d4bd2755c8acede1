package register

import (
	"github.com/google/uuid"

	authModels "github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

// Request форма регистрации
type Request struct {
	FullName        string `json:"fullName" validate:"required,maxrunes=120"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,maxrunes=30"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Response результат регистрации
type Response struct {
	UserID uuid.UUID
	// Session заполнен, если identity сервис сразу выдал сессию.
	// Иначе пользователь должен подтвердить email и войти.
	Session *authModels.SignInResponse
	// ProfileCreated true, если профиль пришлось создать вручную
	ProfileCreated bool
}
