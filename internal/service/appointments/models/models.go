package models

import (
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/format"
)

// Response модели

// AppointmentResponse запись в виде, готовом для отображения
type AppointmentResponse struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	ISODate     string            `json:"isoDate"`
	Time        string            `json:"time"`
	Status      string            `json:"status"`
	StatusLabel string            `json:"statusLabel"`
	Notes       *string           `json:"notes,omitempty"`
	Service     ServiceResponse   `json:"service"`
	Customer    *CustomerResponse `json:"customer,omitempty"`
	Actions     []ActionResponse  `json:"actions,omitempty"`
}

// ServiceResponse услуга внутри записи
type ServiceResponse struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
}

// CustomerResponse клиент внутри записи (только для администратора)
type CustomerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ActionResponse доступное администратору действие над записью
type ActionResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
}

// StatsResponse статистика для панели администратора
type StatsResponse struct {
	TotalAppointments     int `json:"totalAppointments"`
	ScheduledAppointments int `json:"scheduledAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
	TotalCustomers        int `json:"totalCustomers"`
}

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// FromDomainDetails конвертирует запись с услугой (и клиентом) в response.
// withActions добавляет действия администратора по текущему статусу.
func FromDomainDetails(d *domain.AppointmentDetails, withActions bool) AppointmentResponse {
	resp := AppointmentResponse{
		ID:          d.ID.String(),
		Date:        format.Date(d.Date),
		ISODate:     d.Date.Format(domain.DateFormat),
		Time:        d.Time.String(),
		Status:      string(d.Status),
		StatusLabel: d.Status.Label(),
		Notes:       d.Notes,
		Service: ServiceResponse{
			Name:     d.Service.Name,
			Duration: format.Duration(d.Service.Duration),
			Price:    format.BRL(d.Service.Price),
		},
	}

	if d.Customer != nil {
		name := d.Customer.Email
		if d.Customer.FullName != nil && *d.Customer.FullName != "" {
			name = *d.Customer.FullName
		}
		resp.Customer = &CustomerResponse{
			Name:  name,
			Email: d.Customer.Email,
			Phone: d.Customer.Phone,
		}
	}

	if withActions {
		for _, next := range d.Status.AllowedTransitions() {
			resp.Actions = append(resp.Actions, ActionResponse{
				Status: string(next),
				Label:  next.ActionLabel(),
			})
		}
	}

	return resp
}

// FromDomainDetailsList конвертирует список записей; пустой список остается пустым, а не nil
func FromDomainDetailsList(list []*domain.AppointmentDetails, withActions bool) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDomainDetails(d, withActions))
	}
	return out
}

// FromDomainStats конвертирует статистику
func FromDomainStats(s domain.AppointmentStats) StatsResponse {
	return StatsResponse{
		TotalAppointments:     s.Total,
		ScheduledAppointments: s.Scheduled,
		CompletedAppointments: s.Completed,
		TotalCustomers:        s.TotalCustomers,
	}
}
