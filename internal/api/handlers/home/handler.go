package home

import (
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /
// Публичная страница: информация о барбершопе и активные услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	_, signedIn := middleware.CallerFromContext(r.Context())

	result, err := h.service.Home(r.Context())
	if err != nil {
		h.logger.Error("GET / - Failed to load home page: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result, signedIn))
}
