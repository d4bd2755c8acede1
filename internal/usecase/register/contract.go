package register

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	authModels "github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

// IdentityClient интерфейс клиента identity сервиса
type IdentityClient interface {
	SignUp(ctx context.Context, email, password string, attrs identity.Attributes) (*identity.SignUpResult, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	CreateIfMissing(ctx context.Context, p *domain.Profile) (bool, error)
}

// SessionEstablisher сохраняет сессию, выданную при регистрации
type SessionEstablisher interface {
	Establish(ctx context.Context, sess *identity.Session) (*authModels.SignInResponse, error)
}

// FormValidator проверяет форму регистрации
type FormValidator interface {
	Validate(form interface{}) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
