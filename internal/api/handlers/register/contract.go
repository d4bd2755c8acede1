package register

import (
	"context"
	"net/http"
	"time"

	registerUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/register"
)

type RegisterUseCase interface {
	Execute(ctx context.Context, req *registerUC.Request) (*registerUC.Response, error)
}

type SessionCookie interface {
	Set(w http.ResponseWriter, sessionID string, expiresAt time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
