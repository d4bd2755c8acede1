package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth/models"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
)

const (
	msgInvalidRequestBody = "Dados inválidos"
	msgLoginFailed        = "Erro ao fazer login"
	msgLoginSucceeded     = "Login realizado com sucesso!"

	dashboardPath = "/dashboard"
)

type Handler struct {
	service   AuthService
	validator FormValidator
	cookie    SessionCookie
	logger    Logger
}

func NewHandler(service AuthService, validator FormValidator, cookie SessionCookie, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		cookie:    cookie,
		logger:    logger,
	}
}

// Page GET /login
// Вошедший пользователь сразу отправляется в личный кабинет
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.CallerFromContext(r.Context()); ok {
		handlers.Redirect(w, r, dashboardPath)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, LoginPage{})
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("POST /login - Validation failed: %v", err)
		handlers.RespondFormError(w, http.StatusBadRequest, handlers.MessageOr(validation.Message(err), msgLoginFailed), ToForm(&req))
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials: email=%s", req.Email)
			handlers.RespondFormError(w, http.StatusUnauthorized,
				handlers.MessageOr(identity.Message(err), msgLoginFailed), ToForm(&req))

		case errors.Is(err, auth.ErrSignInRejected):
			h.logger.Warn("POST /login - Sign in rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondFormError(w, http.StatusBadRequest,
				handlers.MessageOr(identity.Message(err), msgLoginFailed), ToForm(&req))

		default:
			h.logger.Error("POST /login - Failed to sign in: email=%s, error=%v", req.Email, err)
			handlers.RespondFormError(w, http.StatusInternalServerError, msgLoginFailed, ToForm(&req))
		}
		return
	}

	h.cookie.Set(w, result.SessionID, result.ExpiresAt)

	h.logger.Info("POST /login - Signed in successfully: user_id=%s", result.UserID)
	handlers.RespondMessage(w, http.StatusOK, msgLoginSucceeded, dashboardPath, FromServiceResponse(result))
}
