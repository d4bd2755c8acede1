package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	profileRepo     ProfileRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
	now             func() time.Time
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	profileRepo ProfileRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListForCaller получает записи текущего пользователя вместе с услугами.
// Сортировка: по дате и времени по возрастанию.
func (s *Service) ListForCaller(ctx context.Context, caller domain.Caller) ([]models.AppointmentResponse, error) {
	if caller.IsZero() {
		return nil, ErrAccessDenied
	}

	s.logger.Info("ListForCaller: fetching appointments for user=%s", caller.ID)

	var list []*domain.AppointmentDetails
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		list, err = s.appointmentRepo.ListByUser(txCtx, caller.ID)
		return err
	})
	if err != nil {
		s.logger.Error("ListForCaller: repository error for user=%s: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: ListForCaller - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForCaller: fetched %d appointments for user=%s", len(list), caller.ID)
	return models.FromDomainDetailsList(list, false), nil
}

// ListAll получает все записи с клиентами и услугами (только администратор).
// Сортировка: по дате и времени по убыванию. Для каждой записи указаны
// допустимые действия.
func (s *Service) ListAll(ctx context.Context, caller domain.Caller) ([]models.AppointmentResponse, error) {
	s.logger.Info("ListAll: fetching all appointments for admin=%s", caller.ID)

	var list []*domain.AppointmentDetails
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if err := s.requireAdmin(txCtx, caller); err != nil {
			return err
		}

		var err error
		list, err = s.appointmentRepo.ListAll(txCtx)
		if err != nil {
			return fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListAll: fetched %d appointments", len(list))
	return models.FromDomainDetailsList(list, true), nil
}

// Stats считает статистику записей и клиентов (только администратор).
// Подсчет статусов выполняется на стороне сервиса.
func (s *Service) Stats(ctx context.Context, caller domain.Caller) (*models.StatsResponse, error) {
	s.logger.Info("Stats: computing stats for admin=%s", caller.ID)

	var stats domain.AppointmentStats
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if err := s.requireAdmin(txCtx, caller); err != nil {
			return err
		}

		statuses, err := s.appointmentRepo.ListStatuses(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Stats - list statuses: %v", ErrInternal, err)
		}

		customers, err := s.profileRepo.CountCustomers(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Stats - count customers: %v", ErrInternal, err)
		}

		stats = domain.ComputeStats(statuses, customers)
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainStats(stats)
	return &resp, nil
}

// UpdateStatus меняет статус записи (только администратор).
// Разрешены переходы scheduled → completed|cancelled и cancelled → scheduled.
// Повторное открытие отмененной записи невозможно, если ее слот уже занят.
func (s *Service) UpdateStatus(ctx context.Context, caller domain.Caller, id uuid.UUID, req *models.UpdateStatusRequest) error {
	target := domain.AppointmentStatus(req.Status)
	if !target.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s by user=%s", id, target, caller.ID)

	var from domain.AppointmentStatus
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.requireAdmin(txCtx, caller); err != nil {
			return err
		}

		// Блокируем строку до конца транзакции
		current, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get appointment: %v", ErrInternal, err)
		}
		from = current.Status

		if !domain.CanTransition(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, target, s.now().UTC()); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				return ErrSlotConflict
			default:
				return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict):
			s.metrics.IncSlotConflict("reopen")
			s.logger.Warn("UpdateStatus: slot of appointment id=%s is taken, cannot reopen", id)
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: appointment id=%s: %v", id, err)
		default:
			s.logger.Warn("UpdateStatus: appointment id=%s: %v", id, err)
		}
		return err
	}

	s.metrics.IncStatusTransition(string(from), string(target))
	s.logger.Info("UpdateStatus: appointment id=%s moved %s -> %s", id, from, target)
	return nil
}

// Вспомогательные методы

// requireAdmin проверяет, что пользователь является администратором.
// Проверка выполняется на сервере, независимо от редиректов в представлениях.
func (s *Service) requireAdmin(ctx context.Context, caller domain.Caller) error {
	if caller.IsZero() {
		return ErrAccessDenied
	}

	p, err := s.profileRepo.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("requireAdmin: profile for user=%s not found", caller.ID)
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: requireAdmin - get profile: %v", ErrInternal, err)
	}

	if !p.IsAdmin {
		s.logger.Warn("requireAdmin: user=%s is not an admin", caller.ID)
		return ErrAccessDenied
	}
	return nil
}
