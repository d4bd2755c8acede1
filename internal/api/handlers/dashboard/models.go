package dashboard

import (
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	profileModels "github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
	loadDashboard "github.com/m04kA/SMC-BarbershopService/internal/usecase/load_dashboard"
)

const (
	msgAppointmentsFailed = "Erro ao carregar agendamentos. Tente novamente."
	msgNoAppointments     = "Você ainda não tem agendamentos"
	msgFirstAppointment   = "Fazer Primeiro Agendamento"

	appointmentPath = "/appointment"
)

// DashboardView личный кабинет клиента
type DashboardView struct {
	Profile      *profileModels.ProfileResponse          `json:"profile"`
	Appointments []appointmentModels.AppointmentResponse `json:"appointments"`
	Error        string                                  `json:"error,omitempty"`
	EmptyState   *EmptyState                             `json:"emptyState,omitempty"`
	NewBooking   string                                  `json:"newBooking"`
}

// EmptyState подсказка при пустом списке записей
type EmptyState struct {
	Message     string `json:"message"`
	ActionLabel string `json:"actionLabel"`
	ActionHref  string `json:"actionHref"`
}

// FromUseCaseResponse собирает модель страницы.
// Если записи не загрузились, профиль показывается вместе с ошибкой.
func FromUseCaseResponse(resp *loadDashboard.Response) *DashboardView {
	view := &DashboardView{
		Profile:      resp.Profile,
		Appointments: resp.Appointments,
		NewBooking:   appointmentPath,
	}
	if view.Appointments == nil {
		view.Appointments = []appointmentModels.AppointmentResponse{}
	}

	switch {
	case resp.AppointmentsFailed:
		view.Error = msgAppointmentsFailed
	case len(view.Appointments) == 0:
		view.EmptyState = &EmptyState{
			Message:     msgNoAppointments,
			ActionLabel: msgFirstAppointment,
			ActionHref:  appointmentPath,
		}
	}

	return view
}
