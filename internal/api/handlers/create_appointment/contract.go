package create_appointment

import (
	"context"

	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Options(ctx context.Context) (*createAppointment.Options, error)
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

type FormValidator interface {
	Validate(form interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
