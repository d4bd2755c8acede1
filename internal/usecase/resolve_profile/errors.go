package resolve_profile

import "errors"

var (
	// ErrUnauthenticated возвращается, если запрос выполняется без пользователя
	ErrUnauthenticated = errors.New("resolve_profile: caller is not authenticated")

	// ErrProfileUnavailable возвращается, если профиль не удалось загрузить за все попытки
	ErrProfileUnavailable = errors.New("resolve_profile: profile unavailable")
)
