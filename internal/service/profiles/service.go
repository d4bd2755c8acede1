package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	profileRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// Service сервис для работы с профилями
type Service struct {
	profileRepo ProfileRepository
	txManager   TransactionManager
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// Get получает профиль текущего пользователя
func (s *Service) Get(ctx context.Context, caller domain.Caller) (*models.ProfileResponse, error) {
	if caller.IsZero() {
		return nil, ErrAccessDenied
	}

	var p *domain.Profile
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.profileRepo.GetByID(txCtx, caller.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Get: profile for user=%s not found", caller.ID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Get: repository error for user=%s: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(p), nil
}

// UpdateContact обновляет имя и телефон текущего пользователя.
// Пустые значения очищают поле.
func (s *Service) UpdateContact(ctx context.Context, caller domain.Caller, req *models.UpdateContactRequest) (*models.ProfileResponse, error) {
	if caller.IsZero() {
		return nil, ErrAccessDenied
	}

	s.logger.Info("UpdateContact: updating profile of user=%s", caller.ID)

	var updated *domain.Profile
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.profileRepo.UpdateContact(txCtx, caller.ID, req.ToDomain(), s.now().UTC())
		return err
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("UpdateContact: profile for user=%s not found", caller.ID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("UpdateContact: repository error for user=%s: %v", caller.ID, err)
		return nil, fmt.Errorf("%w: UpdateContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateContact: profile of user=%s updated", caller.ID)
	return models.FromDomainProfile(updated), nil
}

// ListCustomers получает профили клиентов (не администраторов), новые первыми.
// Доступно только администратору.
func (s *Service) ListCustomers(ctx context.Context, caller domain.Caller) ([]models.CustomerResponse, error) {
	if caller.IsZero() {
		return nil, ErrAccessDenied
	}

	var list []*domain.Profile
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		self, err := s.profileRepo.GetByID(txCtx, caller.ID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: ListCustomers - get caller profile: %v", ErrInternal, err)
		}
		if !self.IsAdmin {
			return ErrAccessDenied
		}

		list, err = s.profileRepo.ListCustomers(txCtx)
		if err != nil {
			return fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccessDenied) {
			s.logger.Warn("ListCustomers: user=%s is not an admin", caller.ID)
		} else {
			s.logger.Error("ListCustomers: %v", err)
		}
		return nil, err
	}

	s.logger.Info("ListCustomers: fetched %d customers", len(list))
	return models.FromDomainCustomers(list), nil
}
