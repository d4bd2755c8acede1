package register

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
	"github.com/m04kA/SMC-BarbershopService/pkg/txmanager"
)

// UseCase use case регистрации пользователя
type UseCase struct {
	identity   IdentityClient
	profiles   ProfileRepository
	sessions   SessionEstablisher
	validator  FormValidator
	txManager  TransactionManager
	probeDelay time.Duration
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// probeDelay пауза перед проверкой профиля (0 = без паузы).
func NewUseCase(
	identityClient IdentityClient,
	profiles ProfileRepository,
	sessions SessionEstablisher,
	validator FormValidator,
	txManager TransactionManager,
	probeDelay time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		identity:   identityClient,
		profiles:   profiles,
		sessions:   sessions,
		validator:  validator,
		txManager:  txManager,
		probeDelay: probeDelay,
		logger:     logger,
	}
}

// Execute регистрирует пользователя.
// Форма проверяется локально до обращения к identity сервису. Профиль обычно
// создает триггер БД; если его нет, он создается здесь идемпотентной вставкой.
// Ошибка этой вставки только логируется: учетная запись уже создана.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)

	// 1. Локальная валидация
	if err := uc.validator.Validate(req); err != nil {
		uc.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	// 2. Регистрация в identity сервисе
	result, err := uc.identity.SignUp(ctx, req.Email, req.Password, identity.Attributes{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailTaken):
			uc.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, fmt.Errorf("%w: %w", ErrEmailTaken, err)
		case errors.Is(err, identity.ErrRejected):
			uc.logger.Warn("Register: sign up rejected for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: %w", ErrSignUpFailed, err)
		default:
			uc.logger.Error("Register: identity error for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: sign up: %w", ErrInternal, err)
		}
	}

	user := result.User
	uc.logger.Info("Register: user=%s created", user.ID)

	// 3. Проверка профиля и резервное создание
	resp := &Response{UserID: user.ID}
	resp.ProfileCreated = uc.ensureProfile(ctx, &domain.Profile{
		ID:       user.ID,
		Email:    firstNonEmpty(user.Email, req.Email),
		FullName: ptr.NilIfEmpty(req.FullName),
		Phone:    ptr.NilIfEmpty(req.Phone),
	})

	// 4. Сессия, если email подтверждается автоматически
	if result.Session != nil {
		sess, err := uc.sessions.Establish(ctx, result.Session)
		if err != nil {
			// Учетная запись создана; пользователь сможет войти вручную
			uc.logger.Error("Register: failed to establish session for user=%s: %v", user.ID, err)
		} else {
			resp.Session = sess
		}
	}

	return resp, nil
}

// ensureProfile создает профиль, если триггер его не создал. Возвращает true,
// если профиль был создан здесь.
func (uc *UseCase) ensureProfile(ctx context.Context, p *domain.Profile) bool {
	if uc.probeDelay > 0 {
		timer := time.NewTimer(uc.probeDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			uc.logger.Warn("Register: profile probe for user=%s cancelled: %v", p.ID, ctx.Err())
			return false
		case <-timer.C:
		}
	}

	// Новый пользователь еще не аутентифицирован, RLS проверяет его как субъект
	txCtx := txmanager.WithSubject(ctx, p.ID)

	created := false
	err := uc.txManager.Do(txCtx, func(ctx context.Context) error {
		exists, err := uc.profiles.Exists(ctx, p.ID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		created, err = uc.profiles.CreateIfMissing(ctx, p)
		return err
	})
	if err != nil {
		uc.logger.Warn("Register: fallback profile creation for user=%s failed: %v", p.ID, err)
		return false
	}

	if created {
		uc.logger.Info("Register: profile for user=%s created by fallback", p.ID)
	}
	return created
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
