package dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	loadDashboard "github.com/m04kA/SMC-BarbershopService/internal/usecase/load_dashboard"
)

const (
	msgProfileUnavailable = "Erro ao carregar perfil do usuário. Tente fazer login novamente."

	adminPath = "/admin"
)

type Handler struct {
	useCase LoadDashboardUseCase
	logger  Logger
}

func NewHandler(useCase LoadDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /dashboard
// Администратор перенаправляется на /admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, middleware.LoginPath)
		return
	}

	result, err := h.useCase.Execute(r.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, loadDashboard.ErrIsAdmin):
			handlers.Redirect(w, r, adminPath)

		case errors.Is(err, loadDashboard.ErrProfileUnavailable):
			h.logger.Warn("GET /dashboard - Profile unavailable: user_id=%s, error=%v", caller.ID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgProfileUnavailable)

		default:
			h.logger.Error("GET /dashboard - Failed to load dashboard: user_id=%s, error=%v", caller.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard - Dashboard loaded: user_id=%s, count=%d, failed=%t",
		caller.ID, len(result.Appointments), result.AppointmentsFailed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
