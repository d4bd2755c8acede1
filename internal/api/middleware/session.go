package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth"
	"github.com/m04kA/SMC-BarbershopService/pkg/txmanager"
)

// LoginPath страница входа для анонимных пользователей
const LoginPath = "/login"

type callerKey struct{}

// WithCaller кладет пользователя запроса в контекст
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext возвращает пользователя запроса; для анонимного запроса
// возвращается нулевой Caller и false
func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	if !ok || caller.IsZero() {
		return domain.Caller{}, false
	}
	return caller, true
}

// SessionCookie параметры cookie с ID серверной сессии
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set выставляет cookie сессии
func (c SessionCookie) Set(w http.ResponseWriter, sessionID string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear удаляет cookie сессии
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read возвращает ID сессии из cookie или пустую строку
func (c SessionCookie) Read(r *http.Request) string {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Session определяет пользователя запроса (cookie сессии, затем
// Authorization: Bearer) и кладет его в контекст. Анонимный запрос
// пропускается дальше без пользователя.
func Session(resolver CallerResolver, cookie SessionCookie, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := cookie.Read(r)
			bearer := bearerToken(r)
			if sessionID == "" && bearer == "" {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := resolver.ResolveCaller(r.Context(), sessionID, bearer)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					if sessionID != "" {
						cookie.Clear(w)
					}
				} else {
					logger.Error("%s %s - Failed to resolve caller: %v", r.Method, r.URL.Path, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithCaller(r.Context(), caller)
			ctx = txmanager.WithSubject(ctx, caller.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCaller перенаправляет анонимного пользователя на страницу входа
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CallerFromContext(r.Context()); !ok {
			handlers.Redirect(w, r, LoginPath)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
