package resolve_profile

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// UseCase загружает профиль пользователя с повторными попытками.
// Профиль может появиться с задержкой после регистрации, поэтому любая
// ошибка чтения повторяется с фиксированной паузой.
type UseCase struct {
	profileRepo ProfileRepository
	txManager   TransactionManager
	policy      Policy
	metrics     Metrics
	logger      Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(profileRepo ProfileRepository, txManager TransactionManager, policy Policy, metrics Metrics, logger Logger) *UseCase {
	if policy.Attempts <= 0 {
		policy.Attempts = DefaultPolicy().Attempts
	}
	return &UseCase{
		profileRepo: profileRepo,
		txManager:   txManager,
		policy:      policy,
		metrics:     metrics,
		logger:      logger,
		sleep:       sleepContext,
	}
}

// Execute загружает профиль текущего пользователя
func (uc *UseCase) Execute(ctx context.Context, caller domain.Caller) (*domain.Profile, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated
	}

	var lastErr error
	for attempt := 1; attempt <= uc.policy.Attempts; attempt++ {
		var p *domain.Profile
		lastErr = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
			var err error
			p, err = uc.profileRepo.GetByID(txCtx, caller.ID)
			return err
		})
		if lastErr == nil {
			uc.metrics.IncProfileFetch("ok")
			return p, nil
		}

		uc.logger.Warn("ResolveProfile: attempt %d/%d for user=%s failed: %v",
			attempt, uc.policy.Attempts, caller.ID, lastErr)

		if attempt == uc.policy.Attempts {
			break
		}

		uc.metrics.IncProfileFetch("retry")
		if err := uc.sleep(ctx, uc.policy.Pause); err != nil {
			lastErr = err
			break
		}
	}

	uc.metrics.IncProfileFetch("failed")
	uc.logger.Error("ResolveProfile: giving up on user=%s: %v", caller.ID, lastErr)
	return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
