package admin_overview

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	profileModels "github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// ProfileResolver загружает профиль текущего пользователя (с повторами)
type ProfileResolver interface {
	Execute(ctx context.Context, caller domain.Caller) (*domain.Profile, error)
}

// AppointmentsService сервис записей
type AppointmentsService interface {
	ListAll(ctx context.Context, caller domain.Caller) ([]appointmentModels.AppointmentResponse, error)
	Stats(ctx context.Context, caller domain.Caller) (*appointmentModels.StatsResponse, error)
}

// ProfilesService сервис профилей
type ProfilesService interface {
	ListCustomers(ctx context.Context, caller domain.Caller) ([]profileModels.CustomerResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
