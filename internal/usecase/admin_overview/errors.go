package admin_overview

import "errors"

var (
	// ErrNotAdmin возвращается, если пользователь не администратор
	ErrNotAdmin = errors.New("admin_overview: caller is not an admin")

	// ErrProfileUnavailable возвращается, если профиль не удалось загрузить
	ErrProfileUnavailable = errors.New("admin_overview: profile unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_overview: internal error")
)
