package logout

import (
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
)

const homePath = "/"

type Handler struct {
	service AuthService
	cookie  SessionCookie
	logger  Logger
}

func NewHandler(service AuthService, cookie SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /logout
// Cookie удаляется даже если сессию не удалось удалить из хранилища
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := h.cookie.Read(r)

	if err := h.service.SignOut(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /logout - Failed to sign out: %v", err)
	}

	h.cookie.Clear(w)
	handlers.Redirect(w, r, homePath)
}
