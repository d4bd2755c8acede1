package dashboard

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	loadDashboard "github.com/m04kA/SMC-BarbershopService/internal/usecase/load_dashboard"
)

type LoadDashboardUseCase interface {
	Execute(ctx context.Context, caller domain.Caller) (*loadDashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
