package admin_overview

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles"
	profileModels "github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// UseCase собирает панель администратора
type UseCase struct {
	profiles     ProfileResolver
	appointments AppointmentsService
	customers    ProfilesService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(profiles ProfileResolver, appointments AppointmentsService, customers ProfilesService, logger Logger) *UseCase {
	return &UseCase{
		profiles:     profiles,
		appointments: appointments,
		customers:    customers,
		logger:       logger,
	}
}

// Execute проверяет, что пользователь администратор, и параллельно загружает
// записи, клиентов и статистику. Результат собирается после завершения всех трех.
func (uc *UseCase) Execute(ctx context.Context, caller domain.Caller) (*Response, error) {
	p, err := uc.profiles.Execute(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	if !p.IsAdmin {
		return nil, ErrNotAdmin
	}

	var (
		list      []appointmentModels.AppointmentResponse
		customers []profileModels.CustomerResponse
		stats     *appointmentModels.StatsResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = uc.appointments.ListAll(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = uc.customers.ListCustomers(gctx, caller)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = uc.appointments.Stats(gctx, caller)
		return err
	})

	if err := g.Wait(); err != nil {
		// права могли быть сняты между проверкой и загрузкой
		if errors.Is(err, appointments.ErrAccessDenied) || errors.Is(err, profiles.ErrAccessDenied) {
			return nil, ErrNotAdmin
		}
		uc.logger.Error("AdminOverview: failed to load data for admin=%s: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("AdminOverview: admin=%s, %d appointments, %d customers", caller.ID, len(list), len(customers))
	return &Response{
		Profile:      profileModels.FromDomainProfile(p),
		Stats:        *stats,
		Appointments: list,
		Customers:    customers,
	}, nil
}
