package load_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	profileModels "github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// UseCase собирает личный кабинет клиента
type UseCase struct {
	profiles     ProfileResolver
	appointments AppointmentsService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(profiles ProfileResolver, appointments AppointmentsService, logger Logger) *UseCase {
	return &UseCase{profiles: profiles, appointments: appointments, logger: logger}
}

// Execute загружает профиль (с повторами) и записи пользователя.
// Администратор получает ErrIsAdmin, записи для него не загружаются.
func (uc *UseCase) Execute(ctx context.Context, caller domain.Caller) (*Response, error) {
	p, err := uc.profiles.Execute(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	if p.IsAdmin {
		return nil, ErrIsAdmin
	}

	resp := &Response{
		Profile:      profileModels.FromDomainProfile(p),
		Appointments: []appointmentModels.AppointmentResponse{},
	}

	list, err := uc.appointments.ListForCaller(ctx, caller)
	if err != nil {
		uc.logger.Warn("LoadDashboard: appointments for user=%s not loaded: %v", caller.ID, err)
		resp.AppointmentsFailed = true
		return resp, nil
	}

	resp.Appointments = list
	return resp, nil
}
