package load_dashboard

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

// ProfileResolver загружает профиль текущего пользователя (с повторами)
type ProfileResolver interface {
	Execute(ctx context.Context, caller domain.Caller) (*domain.Profile, error)
}

// AppointmentsService сервис записей
type AppointmentsService interface {
	ListForCaller(ctx context.Context, caller domain.Caller) ([]appointmentModels.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
