package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/infra/session"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
)

// IdentityClient интерфейс клиента identity сервиса
type IdentityClient interface {
	SignIn(ctx context.Context, email, password string) (*identity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*identity.User, error)
}

// TokenVerifier локальная проверка access token
type TokenVerifier interface {
	Verify(raw string) (*identity.Claims, error)
}

// SessionStore хранилище серверных сессий
type SessionStore interface {
	Save(ctx context.Context, sess *session.Session, ttl time.Duration) (string, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
