package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	registerUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/register"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
)

const (
	msgInvalidRequestBody = "Dados inválidos"
	msgRegisterFailed     = "Erro ao criar conta"
	msgEmailTaken         = "Este email já está cadastrado"
	msgRegistered         = "Conta criada com sucesso!"
	msgConfirmEmail       = "Conta criada com sucesso! Confirme seu email para fazer login."

	dashboardPath = "/dashboard"
	loginPath     = "/login"
)

type Handler struct {
	useCase RegisterUseCase
	cookie  SessionCookie
	logger  Logger
}

func NewHandler(useCase RegisterUseCase, cookie SessionCookie, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		cookie:  cookie,
		logger:  logger,
	}
}

// Page GET /register
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.CallerFromContext(r.Context()); ok {
		handlers.Redirect(w, r, dashboardPath)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, RegisterPage{})
}

// Handle POST /register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req registerUC.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		form := ToForm(&req)
		switch {
		case errors.Is(err, validation.ErrValidation):
			h.logger.Warn("POST /register - Validation failed: email=%s", req.Email)
			handlers.RespondFormError(w, http.StatusBadRequest,
				handlers.MessageOr(validation.Message(err), msgRegisterFailed), form)

		case errors.Is(err, registerUC.ErrEmailTaken):
			h.logger.Warn("POST /register - Email already registered: email=%s", req.Email)
			handlers.RespondFormError(w, http.StatusConflict,
				handlers.MessageOr(identity.Message(err), msgEmailTaken), form)

		case errors.Is(err, registerUC.ErrSignUpFailed):
			h.logger.Warn("POST /register - Sign up rejected: email=%s, error=%v", req.Email, err)
			handlers.RespondFormError(w, http.StatusBadRequest,
				handlers.MessageOr(identity.Message(err), msgRegisterFailed), form)

		default:
			h.logger.Error("POST /register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondFormError(w, http.StatusInternalServerError, msgRegisterFailed, form)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.Session == nil {
		h.logger.Info("POST /register - Account created, email confirmation pending: user_id=%s", result.UserID)
		handlers.RespondMessage(w, http.StatusCreated, msgConfirmEmail, loginPath, response)
		return
	}

	h.cookie.Set(w, result.Session.SessionID, result.Session.ExpiresAt)

	h.logger.Info("POST /register - Account created and signed in: user_id=%s, profile_created=%t",
		result.UserID, result.ProfileCreated)
	handlers.RespondMessage(w, http.StatusCreated, msgRegistered, dashboardPath, response)
}
