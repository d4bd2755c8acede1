package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("identity client: invalid credentials")

	// ErrEmailTaken возвращается, если пользователь с таким email уже зарегистрирован
	ErrEmailTaken = errors.New("identity client: email already registered")

	// ErrUnauthorized возвращается, если токен доступа недействителен или истек
	ErrUnauthorized = errors.New("identity client: unauthorized")

	// ErrRejected возвращается, если сервис отклонил запрос (валидация, лимиты)
	ErrRejected = errors.New("identity client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента или недоступности сервиса
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrInvalidToken возвращается при локальной проверке недействительного JWT
	ErrInvalidToken = errors.New("identity token: invalid token")
)

// Error ошибка identity сервиса с человекочитаемым сообщением.
// errors.Is сопоставляет ее с одной из sentinel ошибок пакета.
type Error struct {
	Status  int
	Code    string
	Message string
	kind    error
}

// NewError создает ошибку с классификацией по статусу, коду и тексту
func NewError(status int, code, message string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		kind:    classify(status, code, message, ""),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: status=%d code=%s: %s", e.kind, e.Status, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Message извлекает текст ошибки identity сервиса для показа пользователю.
// Для остальных ошибок возвращает пустую строку.
func Message(err error) string {
	var idErr *Error
	if errors.As(err, &idErr) {
		return idErr.Message
	}
	return ""
}
