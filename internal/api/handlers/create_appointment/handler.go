package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
)

const (
	msgInvalidRequestBody = "Dados inválidos"
	msgInvalidForm        = "Verifique o serviço, a data e o horário escolhidos"
	msgSlotTaken          = "Este horário já está ocupado. Escolha outro horário."
	msgServiceNotFound    = "Serviço não encontrado"
	msgInvalidDate        = "Escolha uma data dentro do período disponível para agendamento"
	msgInvalidTimeSlot    = "Horário inválido. Escolha um horário da lista."
	msgCreateFailed       = "Erro ao criar agendamento"
	msgLoadFailed         = "Erro ao carregar serviços. Tente novamente."
	msgCreated            = "Agendamento realizado!"

	dashboardPath = "/dashboard"
)

type Handler struct {
	useCase   CreateAppointmentUseCase
	validator FormValidator
	logger    Logger
}

func NewHandler(useCase CreateAppointmentUseCase, validator FormValidator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: validator,
		logger:    logger,
	}
}

// Options GET /appointment
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.useCase.Options(r.Context())
	if err != nil {
		h.logger.Error("GET /appointment - Failed to load booking options: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseOptions(opts))
}

// Handle POST /appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		handlers.Redirect(w, r, middleware.LoginPath)
		return
	}

	var form AppointmentForm
	if err := handlers.DecodeJSON(r, &form); err != nil {
		h.logger.Warn("POST /appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(&form); err != nil {
		h.logger.Warn("POST /appointment - Validation failed: user_id=%s, error=%v", caller.ID, err)
		handlers.RespondFormError(w, http.StatusBadRequest,
			handlers.MessageOr(validation.Message(err), msgInvalidForm), form)
		return
	}

	// Конвертируем форму в модель use case (с парсингом даты и времени)
	useCaseReq, err := form.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /appointment - Failed to parse form: user_id=%s, error=%v", caller.ID, err)
		handlers.RespondFormError(w, http.StatusBadRequest, msgInvalidForm, form)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointment - Slot taken: user_id=%s, date=%s, time=%s", caller.ID, form.Date, form.Time)
			handlers.RespondFormError(w, http.StatusConflict, msgSlotTaken, form)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointment - Service not found: service_id=%s", form.ServiceID)
			handlers.RespondFormError(w, http.StatusNotFound, msgServiceNotFound, form)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointment - Date outside booking window: date=%s", form.Date)
			handlers.RespondFormError(w, http.StatusBadRequest, msgInvalidDate, form)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointment - Invalid time slot: time=%s", form.Time)
			handlers.RespondFormError(w, http.StatusBadRequest, msgInvalidTimeSlot, form)

		case errors.Is(err, createAppointment.ErrNotesTooLong):
			handlers.RespondFormError(w, http.StatusBadRequest, validation.MsgNotesTooLong, form)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondFormError(w, http.StatusBadRequest, msgInvalidForm, form)

		case errors.Is(err, createAppointment.ErrUnauthenticated):
			handlers.Redirect(w, r, middleware.LoginPath)

		default:
			h.logger.Error("POST /appointment - Failed to create appointment: user_id=%s, error=%v", caller.ID, err)
			handlers.RespondFormError(w, http.StatusInternalServerError, msgCreateFailed, form)
		}
		return
	}

	h.logger.Info("POST /appointment - Appointment created: appointment_id=%s, user_id=%s, date=%s, time=%s",
		result.ID, caller.ID, form.Date, form.Time)
	handlers.RespondMessage(w, http.StatusCreated, msgCreated, dashboardPath, FromUseCaseResponse(result))
}
