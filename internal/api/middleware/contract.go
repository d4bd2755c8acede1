package middleware

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// CallerResolver определяет пользователя по ID сессии или bearer токену
type CallerResolver interface {
	ResolveCaller(ctx context.Context, sessionID, bearer string) (domain.Caller, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
