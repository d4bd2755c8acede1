package testfixtures

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/infra/session"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
)

type identityAccount struct {
	user     identity.User
	password string
}

// Identity is an in-memory identity provider.
type Identity struct {
	mu       sync.Mutex
	accounts map[string]identityAccount
	tokens   map[string]uuid.UUID

	// AutoConfirm makes SignUp return a session.
	AutoConfirm bool
	// OnSignUp runs after an account is created (e.g. to emulate the profile trigger).
	OnSignUp func(identity.User, identity.Attributes)

	SignUpErr  error
	SignInErr  error
	SignOutErr error

	SignUps  int
	SignOuts int
}

// NewIdentity creates an empty provider.
func NewIdentity() *Identity {
	return &Identity{
		accounts: make(map[string]identityAccount),
		tokens:   make(map[string]uuid.UUID),
	}
}

// AddUser registers an account directly.
func (f *Identity) AddUser(id uuid.UUID, email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = identityAccount{
		user:     identity.User{ID: id, Email: email, CreatedAt: ReferenceTime()},
		password: password,
	}
}

func (f *Identity) SignUp(ctx context.Context, email, password string, attrs identity.Attributes) (*identity.SignUpResult, error) {
	f.mu.Lock()
	f.SignUps++
	if f.SignUpErr != nil {
		f.mu.Unlock()
		return nil, f.SignUpErr
	}
	if _, ok := f.accounts[email]; ok {
		f.mu.Unlock()
		return nil, identity.NewError(422, "user_already_exists", "User already registered")
	}

	user := identity.User{
		ID:           uuid.New(),
		Email:        email,
		UserMetadata: map[string]interface{}{"full_name": attrs.FullName, "phone": attrs.Phone},
		CreatedAt:    ReferenceTime(),
	}
	f.accounts[email] = identityAccount{user: user, password: password}

	result := &identity.SignUpResult{User: user}
	if f.AutoConfirm {
		result.Session = f.issue(user)
	}
	hook := f.OnSignUp
	f.mu.Unlock()

	if hook != nil {
		hook(user, attrs)
	}
	return result, nil
}

func (f *Identity) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SignInErr != nil {
		return nil, f.SignInErr
	}
	acc, ok := f.accounts[email]
	if !ok || acc.password != password {
		return nil, identity.NewError(400, "invalid_credentials", "Invalid login credentials")
	}
	return f.issue(acc.user), nil
}

func (f *Identity) SignOut(ctx context.Context, accessToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignOuts++
	delete(f.tokens, accessToken)
	return f.SignOutErr
}

func (f *Identity) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.tokens[accessToken]
	if !ok {
		return nil, identity.ErrUnauthorized
	}
	for _, acc := range f.accounts {
		if acc.user.ID == id {
			u := acc.user
			return &u, nil
		}
	}
	return nil, identity.ErrUnauthorized
}

func (f *Identity) issue(user identity.User) *identity.Session {
	token := "access-" + uuid.NewString()
	f.tokens[token] = user.ID
	return &identity.Session{
		AccessToken:  token,
		TokenType:    "bearer",
		ExpiresIn:    3600,
		RefreshToken: "refresh-" + uuid.NewString(),
		User:         user,
	}
}

// Sessions is an in-memory session store with TTL support driven by a Clock.
type Sessions struct {
	mu    sync.Mutex
	items map[string]sessionEntry
	clock *Clock
	Err   error
}

type sessionEntry struct {
	sess      session.Session
	expiresAt time.Time
}

// NewSessions creates an empty store; TTLs are evaluated against clock.
func NewSessions(clock *Clock) *Sessions {
	return &Sessions{items: make(map[string]sessionEntry), clock: clock}
}

func (s *Sessions) Save(ctx context.Context, sess *session.Session, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if ttl <= 0 {
		return "", session.ErrInvalidTTL
	}
	id := uuid.NewString()
	sess.ID = id
	s.items[id] = sessionEntry{sess: *sess, expiresAt: s.clock.Now().Add(ttl)}
	return id, nil
}

func (s *Sessions) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	entry, ok := s.items[id]
	if !ok || !entry.expiresAt.After(s.clock.Now()) {
		return nil, session.ErrSessionNotFound
	}
	out := entry.sess
	return &out, nil
}

func (s *Sessions) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
