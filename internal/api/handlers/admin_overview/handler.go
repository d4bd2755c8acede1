package admin_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	adminOverview "github.com/m04kA/SMC-BarbershopService/internal/usecase/admin_overview"
)

const (
	msgLoadFailed = "Erro ao carregar dados. Tente fazer login novamente."

	dashboardPath = "/dashboard"
)

type Handler struct {
	useCase AdminOverviewUseCase
	logger  Logger
}

func NewHandler(useCase AdminOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /admin
// Пользователь без прав администратора перенаправляется на /dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, middleware.LoginPath)
		return
	}

	result, err := h.useCase.Execute(r.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, adminOverview.ErrNotAdmin):
			h.logger.Warn("GET /admin - Not an admin: user_id=%s", caller.ID)
			handlers.Redirect(w, r, dashboardPath)

		case errors.Is(err, adminOverview.ErrProfileUnavailable):
			h.logger.Warn("GET /admin - Profile unavailable: user_id=%s, error=%v", caller.ID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgLoadFailed)

		default:
			h.logger.Error("GET /admin - Failed to load admin panel: user_id=%s, error=%v", caller.ID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		}
		return
	}

	h.logger.Info("GET /admin - Admin panel loaded: user_id=%s, appointments=%d, customers=%d",
		caller.ID, len(result.Appointments), len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
