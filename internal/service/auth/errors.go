package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")

	// ErrSignInRejected возвращается, если identity сервис отклонил вход по другой причине
	// (email не подтвержден, превышен лимит запросов)
	ErrSignInRejected = errors.New("auth service: sign in rejected")

	// ErrUnauthenticated возвращается, если сессия отсутствует, истекла или токен недействителен
	ErrUnauthenticated = errors.New("auth service: unauthenticated")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
