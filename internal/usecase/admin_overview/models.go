package admin_overview

import (
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	profileModels "github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// Response данные панели администратора
type Response struct {
	Profile      *profileModels.ProfileResponse          `json:"profile"`
	Stats        appointmentModels.StatsResponse         `json:"stats"`
	Appointments []appointmentModels.AppointmentResponse `json:"appointments"`
	Customers    []profileModels.CustomerResponse        `json:"customers"`
}
