package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/session"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
)

// Service сервис аутентификации: вход, выход и определение текущего пользователя
type Service struct {
	identity   IdentityClient
	verifier   TokenVerifier
	sessions   SessionStore
	sessionTTL time.Duration
	logger     Logger
	now        func() time.Time
}

// NewService создает сервис аутентификации.
// verifier может быть nil: тогда bearer токены проверяются запросом к identity сервису.
func NewService(
	identityClient IdentityClient,
	verifier TokenVerifier,
	sessions SessionStore,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		identity:   identityClient,
		verifier:   verifier,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SignIn выполняет вход и создает серверную сессию
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	email := strings.TrimSpace(req.Email)
	s.logger.Info("SignIn: email=%s", email)

	sess, err := s.identity.SignIn(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			s.logger.Warn("SignIn: invalid credentials for email=%s", email)
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		if errors.Is(err, identity.ErrRejected) {
			s.logger.Warn("SignIn: rejected for email=%s: %v", email, err)
			return nil, fmt.Errorf("%w: %w", ErrSignInRejected, err)
		}
		s.logger.Error("SignIn: identity error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - identity error: %w", ErrInternal, err)
	}

	return s.Establish(ctx, sess)
}

// Establish сохраняет выданную identity сервисом сессию.
// Срок жизни равен сроку access token, но не больше session.ttl.
func (s *Service) Establish(ctx context.Context, sess *identity.Session) (*models.SignInResponse, error) {
	now := s.now()
	expiresAt := sess.Expiry(now)
	ttl := expiresAt.Sub(now)
	if ttl <= 0 || (s.sessionTTL > 0 && ttl > s.sessionTTL) {
		ttl = s.sessionTTL
		expiresAt = now.Add(ttl)
	}

	stored := &session.Session{
		UserID:       sess.User.ID,
		Email:        sess.User.Email,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    expiresAt.UTC(),
	}

	id, err := s.sessions.Save(ctx, stored, ttl)
	if err != nil {
		s.logger.Error("Establish: failed to save session for user=%s: %v", sess.User.ID, err)
		return nil, fmt.Errorf("%w: Establish - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Establish: session created for user=%s", sess.User.ID)
	return &models.SignInResponse{
		SessionID: id,
		UserID:    stored.UserID,
		Email:     stored.Email,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// SignOut завершает сессию. Ошибка выхода на стороне identity сервиса
// только логируется: локальная сессия удаляется в любом случае.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil
		}
		s.logger.Error("SignOut: failed to load session: %v", err)
		return fmt.Errorf("%w: SignOut - load session: %v", ErrInternal, err)
	}

	if err := s.identity.SignOut(ctx, sess.AccessToken); err != nil {
		s.logger.Warn("SignOut: identity logout failed for user=%s: %v", sess.UserID, err)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("SignOut: failed to delete session for user=%s: %v", sess.UserID, err)
		return fmt.Errorf("%w: SignOut - delete session: %v", ErrInternal, err)
	}

	s.logger.Info("SignOut: user=%s signed out", sess.UserID)
	return nil
}

// ResolveCaller определяет пользователя запроса по ID сессии из cookie
// или по bearer токену. Сессия имеет приоритет.
func (s *Service) ResolveCaller(ctx context.Context, sessionID, bearer string) (domain.Caller, error) {
	if sessionID != "" {
		return s.fromSession(ctx, sessionID)
	}
	if bearer != "" {
		return s.fromToken(ctx, bearer)
	}
	return domain.Caller{}, ErrUnauthenticated
}

func (s *Service) fromSession(ctx context.Context, id string) (domain.Caller, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrDecode) {
			return domain.Caller{}, ErrUnauthenticated
		}
		return domain.Caller{}, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}

	if !sess.ExpiresAt.After(s.now()) {
		if err := s.sessions.Delete(ctx, id); err != nil {
			s.logger.Warn("ResolveCaller: failed to delete expired session: %v", err)
		}
		return domain.Caller{}, ErrUnauthenticated
	}

	return domain.Caller{
		ID:          sess.UserID,
		Email:       sess.Email,
		AccessToken: sess.AccessToken,
	}, nil
}

func (s *Service) fromToken(ctx context.Context, token string) (domain.Caller, error) {
	if s.verifier != nil {
		claims, err := s.verifier.Verify(token)
		if err != nil {
			return domain.Caller{}, ErrUnauthenticated
		}
		id, err := claims.UserID()
		if err != nil {
			return domain.Caller{}, ErrUnauthenticated
		}
		return domain.Caller{ID: id, Email: claims.Email, AccessToken: token}, nil
	}

	user, err := s.identity.GetUser(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrUnauthorized) {
			return domain.Caller{}, ErrUnauthenticated
		}
		return domain.Caller{}, fmt.Errorf("%w: get user: %v", ErrInternal, err)
	}
	return domain.Caller{ID: user.ID, Email: user.Email, AccessToken: token}, nil
}
