package home

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
)

type CatalogService interface {
	Home(ctx context.Context) (*models.HomeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
