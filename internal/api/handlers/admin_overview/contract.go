package admin_overview

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	adminOverview "github.com/m04kA/SMC-BarbershopService/internal/usecase/admin_overview"
)

type AdminOverviewUseCase interface {
	Execute(ctx context.Context, caller domain.Caller) (*adminOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
