package logout

import (
	"context"
	"net/http"
)

type AuthService interface {
	SignOut(ctx context.Context, sessionID string) error
}

type SessionCookie interface {
	Read(r *http.Request) string
	Clear(w http.ResponseWriter)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
