package register

import "errors"

var (
	// ErrEmailTaken возвращается, если email уже зарегистрирован
	ErrEmailTaken = errors.New("register: email already registered")

	// ErrSignUpFailed возвращается, если identity сервис отклонил регистрацию
	ErrSignUpFailed = errors.New("register: sign up failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register: internal error")
)
