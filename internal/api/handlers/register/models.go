package register

import (
	registerUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/register"
)

// RegisterForm форма регистрации, возвращаемая пользователю (без паролей)
type RegisterForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// RegisterPage пустая форма регистрации
type RegisterPage struct {
	Form RegisterForm `json:"form"`
}

// RegisteredResponse результат регистрации
type RegisteredResponse struct {
	UserID                 string `json:"userId"`
	SignedIn               bool   `json:"signedIn"`
	NeedsEmailConfirmation bool   `json:"needsEmailConfirmation"`
}

// ToForm возвращает форму для повторного показа
func ToForm(req *registerUC.Request) RegisterForm {
	return RegisterForm{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
}

// FromUseCaseResponse конвертирует ответ use case
func FromUseCaseResponse(resp *registerUC.Response) *RegisteredResponse {
	return &RegisteredResponse{
		UserID:                 resp.UserID.String(),
		SignedIn:               resp.Session != nil,
		NeedsEmailConfirmation: resp.Session == nil,
	}
}
