package load_dashboard

import "errors"

var (
	// ErrIsAdmin возвращается для администратора: его страница /admin
	ErrIsAdmin = errors.New("load_dashboard: caller is an admin")

	// ErrProfileUnavailable возвращается, если профиль не удалось загрузить
	ErrProfileUnavailable = errors.New("load_dashboard: profile unavailable")
)
