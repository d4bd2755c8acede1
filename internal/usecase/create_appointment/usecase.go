package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/catalog"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	window          domain.BookingWindow
	maxNotes        int
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	window domain.BookingWindow,
	maxNotes int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if maxNotes <= 0 {
		maxNotes = domain.MaxNotesLength
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		window:          window,
		maxNotes:        maxNotes,
		metrics:         metrics,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Options возвращает данные для формы записи: активные услуги, сетку слотов
// и допустимый диапазон дат
func (uc *UseCase) Options(ctx context.Context) (*Options, error) {
	services, err := uc.serviceRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	first, last := uc.window.Bounds(uc.timeProvider.Now())
	return &Options{
		Services: services,
		Slots:    domain.GenerateSlots(),
		MinDate:  first,
		MaxDate:  last,
	}, nil
}

// Execute выполняет use case создания записи.
// Сначала проверяется занятость слота (понятная ошибка в обычном случае),
// затем выполняется условная вставка, которая не пропустит вторую активную
// запись на тот же слот при гонке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, service=%s, date=%s, time=%s",
		req.Caller.ID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxNotes); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна попадать в окно записи
	if err := validateDate(uc.window, req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	var result *domain.Appointment
	var serviceName string

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3. Услуга должна существовать и быть активной
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Active {
			return fmt.Errorf("%w: service id=%s is inactive", ErrServiceNotFound, service.ID)
		}
		serviceName = service.Name

		// 4. Предварительная проверка занятости слота
		taken, err := uc.appointmentRepo.FindScheduledAt(txCtx, date, req.Time)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if len(taken) > 0 {
			uc.metrics.IncSlotConflict("precheck")
			return ErrSlotConflict
		}

		// 5. Условная вставка
		created, err := uc.appointmentRepo.CreateIfSlotFree(txCtx, &domain.Appointment{
			UserID:    req.Caller.ID,
			ServiceID: req.ServiceID,
			Date:      date,
			Time:      req.Time,
			Status:    domain.StatusScheduled,
			Notes:     normalizeNotes(req.Notes),
		})
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				// проверка прошла, но слот заняли параллельно
				uc.metrics.IncSlotConflict("insert")
				return ErrSlotConflict
			case errors.Is(err, appointmentRepo.ErrInvalidReference):
				return ErrServiceNotFound
			default:
				return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateAppointment: %v", err)
		} else {
			uc.logger.Warn("CreateAppointment: rejected for user=%s: %v", req.Caller.ID, err)
		}
		return nil, err
	}

	uc.metrics.IncAppointmentCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:          result.ID,
		ServiceID:   result.ServiceID,
		ServiceName: serviceName,
		Date:        result.Date,
		Time:        result.Time,
		Status:      result.Status,
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
	}, nil
}
