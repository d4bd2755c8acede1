package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "session:"
	defaultTimeout = 5 * time.Second
)

// Session серверная сессия пользователя. Cookie хранит только ID.
type Session struct {
	ID           string    `json:"-"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Config параметры подключения к Redis
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// Connect создает клиента Redis и проверяет соединение
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStore, err)
	}

	return client, nil
}

// Store хранилище сессий в Redis
// Ключ: session:<uuid>, значение: JSON, TTL = срок жизни сессии
type Store struct {
	client redis.Cmdable
}

// NewStore создает хранилище сессий
func NewStore(client redis.Cmdable) *Store {
	return &Store{client: client}
}

// Save сохраняет сессию под новым случайным ID и возвращает его
func (s *Store) Save(ctx context.Context, sess *Session, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("%w: Save - marshal: %v", ErrStore, err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, key(id), payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: Save - set: %v", ErrStore, err)
	}

	sess.ID = id
	return id, nil
}

// Get возвращает сессию по ID
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	payload, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get: %v", ErrStore, err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	sess.ID = id

	return &sess, nil
}

// Delete удаляет сессию. Отсутствующая сессия не считается ошибкой.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

func key(id string) string {
	return keyPrefix + id
}
