package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 64 << 10

// Client клиент identity сервиса (GoTrue API)
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента identity сервиса
func NewClient(baseURL, anonKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SignUp регистрирует пользователя. attrs попадают в user_metadata и
// используются триггером создания профиля.
func (c *Client) SignUp(ctx context.Context, email, password string, attrs Attributes) (*SignUpResult, error) {
	var resp signUpResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", signUpRequest{
		Email:    email,
		Password: password,
		Data:     attrs,
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := &SignUpResult{User: resp.User}
	if resp.AccessToken != "" && resp.SessionUser != nil {
		result.User = *resp.SessionUser
		result.Session = &Session{
			AccessToken:  resp.AccessToken,
			TokenType:    resp.TokenType,
			ExpiresIn:    resp.ExpiresIn,
			ExpiresAt:    resp.ExpiresAt,
			RefreshToken: resp.RefreshToken,
			User:         *resp.SessionUser,
		}
	}

	c.log.Info("Identity: signed up user_id=%s", result.User.ID)
	return result, nil
}

// SignIn выполняет вход по email и паролю
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var sess Session
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentialsRequest{
		Email:    email,
		Password: password,
	}, &sess)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// SignOut отзывает сессию на стороне identity сервиса
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// GetUser возвращает пользователя по access token
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Identity: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp, path)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// decodeError переводит ответ GoTrue с ошибкой в *Error
func (c *Client) decodeError(resp *http.Response, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorResponse
	_ = json.Unmarshal(raw, &body)

	message := firstNonEmpty(body.Msg, body.ErrorDescription, body.Message, body.Error, strings.TrimSpace(string(raw)), http.StatusText(resp.StatusCode))
	code := firstNonEmpty(body.ErrorCode, body.Error)

	e := NewError(resp.StatusCode, code, message)
	e.kind = classify(resp.StatusCode, code, message, path)

	if e.kind == ErrInternal {
		c.log.Error("Identity: %s returned %d: %s", path, resp.StatusCode, message)
	} else {
		c.log.Warn("Identity: %s returned %d: %s", path, resp.StatusCode, message)
	}
	return e
}

func classify(status int, code, message, path string) error {
	lower := strings.ToLower(message)

	switch {
	case code == "user_already_exists" || code == "email_exists" || strings.Contains(lower, "already registered"):
		return ErrEmailTaken
	case code == "invalid_grant" || code == "invalid_credentials" || strings.Contains(lower, "invalid login credentials"):
		return ErrInvalidCredentials
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if strings.HasPrefix(path, "/auth/v1/token") {
			return ErrInvalidCredentials
		}
		return ErrUnauthorized
	case status >= http.StatusInternalServerError:
		return ErrInternal
	default:
		return ErrRejected
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
