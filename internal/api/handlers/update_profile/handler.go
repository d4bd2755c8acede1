package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
)

const (
	msgInvalidRequestBody = "Dados inválidos"
	msgUpdateFailed       = "Erro ao atualizar perfil"
	msgProfileNotFound    = "Perfil não encontrado"
	msgUpdated            = "Perfil atualizado com sucesso!"
)

type Handler struct {
	service   ProfileService
	validator FormValidator
	logger    Logger
}

func NewHandler(service ProfileService, validator FormValidator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /profile
// Пустые поля сохраняются как NULL
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, middleware.LoginPath)
		return
	}

	var req models.UpdateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("POST /profile - Validation failed: user_id=%s, error=%v", caller.ID, err)
		handlers.RespondFormError(w, http.StatusBadRequest,
			handlers.MessageOr(validation.Message(err), msgUpdateFailed), req)
		return
	}

	result, err := h.service.UpdateContact(r.Context(), caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("POST /profile - Profile not found: user_id=%s", caller.ID)
			handlers.RespondFormError(w, http.StatusNotFound, msgProfileNotFound, req)

		default:
			h.logger.Error("POST /profile - Failed to update profile: user_id=%s, error=%v", caller.ID, err)
			handlers.RespondFormError(w, http.StatusInternalServerError, msgUpdateFailed, req)
		}
		return
	}

	h.logger.Info("POST /profile - Profile updated: user_id=%s", caller.ID)
	handlers.RespondMessage(w, http.StatusOK, msgUpdated, "", result)
}
