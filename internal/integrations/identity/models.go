package identity

import (
	"time"

	"github.com/google/uuid"
)

// User учетная запись identity сервиса
type User struct {
	ID           uuid.UUID              `json:"id"`
	Email        string                 `json:"email"`
	Phone        string                 `json:"phone,omitempty"`
	Role         string                 `json:"role,omitempty"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	ConfirmedAt  *time.Time             `json:"confirmed_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Attributes дополнительные данные пользователя при регистрации
type Attributes struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// Session выданная пара токенов
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Expiry возвращает момент истечения access token
func (s *Session) Expiry(now time.Time) time.Time {
	if s.ExpiresAt > 0 {
		return time.Unix(s.ExpiresAt, 0)
	}
	return now.Add(time.Duration(s.ExpiresIn) * time.Second)
}

// SignUpResult результат регистрации. Session заполнен, только если сервис
// подтверждает email автоматически.
type SignUpResult struct {
	User    User
	Session *Session
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Data     Attributes `json:"data"`
}

// signUpResponse GoTrue отдает либо сессию (autoconfirm), либо пользователя
type signUpResponse struct {
	User
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	SessionUser  *User  `json:"user"`
}

// errorResponse тело ошибки GoTrue (поля различаются между версиями)
type errorResponse struct {
	Code             interface{} `json:"code"`
	ErrorCode        string      `json:"error_code"`
	Msg              string      `json:"msg"`
	Message          string      `json:"message"`
	Error            string      `json:"error"`
	ErrorDescription string      `json:"error_description"`
}
