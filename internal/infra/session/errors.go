package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrInvalidTTL возвращается при попытке сохранить сессию без срока жизни
	ErrInvalidTTL = errors.New("session.store: ttl must be positive")

	// ErrStore возвращается при ошибке Redis
	ErrStore = errors.New("session.store: redis error")

	// ErrDecode возвращается, если сохраненная сессия повреждена
	ErrDecode = errors.New("session.store: failed to decode session")
)
