package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "Agendamento inválido"
	msgInvalidRequestBody   = "Dados inválidos"
	msgInvalidStatus        = "Status inválido"
	msgNotFound             = "Agendamento não encontrado"
	msgForbidden            = "Acesso restrito a administradores"
	msgInvalidTransition    = "Não é possível alterar o status deste agendamento"
	msgSlotTaken            = "Este horário já está ocupado. Não é possível reabrir o agendamento."
	msgUpdateFailed         = "Erro ao atualizar status"
	msgUpdated              = "Status atualizado com sucesso!"

	adminPath = "/admin"
)

type Handler struct {
	service   AppointmentService
	validator FormValidator
	logger    Logger
}

func NewHandler(service AppointmentService, validator FormValidator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /admin/appointments/{appointmentId}/status
// Права администратора проверяет сервис, а не маршрут
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, middleware.LoginPath)
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("POST /admin/appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/appointments/{id}/status - Invalid status %q", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	err = h.service.UpdateStatus(r.Context(), caller, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /admin/appointments/{id}/status - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, caller.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /admin/appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("POST /admin/appointments/{id}/status - Transition not allowed: appointment_id=%s, target=%s",
				appointmentID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrSlotConflict):
			h.logger.Warn("POST /admin/appointments/{id}/status - Slot taken on reopen: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("POST /admin/appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("POST /admin/appointments/{id}/status - Status updated: appointment_id=%s, status=%s, admin_id=%s",
		appointmentID, req.Status, caller.ID)
	handlers.RespondMessage(w, http.StatusOK, msgUpdated, adminPath, nil)
}
