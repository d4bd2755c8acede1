package admin_overview

import (
	adminOverview "github.com/m04kA/SMC-BarbershopService/internal/usecase/admin_overview"
)

const (
	msgNoAppointments = "Nenhum agendamento encontrado"
	msgNoCustomers    = "Nenhum usuário encontrado"
)

// AdminView панель администратора
type AdminView struct {
	*adminOverview.Response
	AppointmentsEmpty string `json:"appointmentsEmpty,omitempty"`
	CustomersEmpty    string `json:"customersEmpty,omitempty"`
}

// FromUseCaseResponse собирает модель страницы с подписями для пустых списков
func FromUseCaseResponse(resp *adminOverview.Response) *AdminView {
	view := &AdminView{Response: resp}
	if len(resp.Appointments) == 0 {
		view.AppointmentsEmpty = msgNoAppointments
	}
	if len(resp.Customers) == 0 {
		view.CustomersEmpty = msgNoCustomers
	}
	return view
}
