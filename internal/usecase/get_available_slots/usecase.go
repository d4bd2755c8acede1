package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// UseCase use case для получения сетки слотов с отметкой занятости.
// Слот свободен, если на него нет записи со статусом scheduled; длительность
// услуги на соседние слоты не влияет.
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	window          domain.BookingWindow
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, window domain.BookingWindow, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		window:          window,
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req, uc.window, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)

	taken, err := uc.appointmentRepo.ListScheduledTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list scheduled times for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list scheduled times: %v", ErrInternal, err)
	}

	busy := make(map[types.TimeString]struct{}, len(taken))
	for _, t := range taken {
		busy[t] = struct{}{}
	}

	grid := domain.GenerateSlots()
	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		_, isBusy := busy[t]
		slots = append(slots, Slot{Time: t, Available: !isBusy})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, %d of %d slots taken", date.Format(domain.DateFormat), len(busy), len(grid))
	return &Response{Date: date, Slots: slots}, nil
}
