package profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles"
)

const (
	msgProfileUnavailable = "Erro ao carregar perfil do usuário. Tente fazer login novamente."
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, middleware.LoginPath)
		return
	}

	result, err := h.service.Get(r.Context(), caller)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			h.logger.Warn("GET /profile - Profile not found: user_id=%s", caller.ID)
			handlers.RespondNotFound(w, msgProfileUnavailable)
			return
		}

		h.logger.Error("GET /profile - Failed to get profile: user_id=%s, error=%v", caller.ID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgProfileUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
