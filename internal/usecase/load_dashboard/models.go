package load_dashboard

import (
	appointmentModels "github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
	profileModels "github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// Response данные личного кабинета.
// AppointmentsFailed true, если записи не загрузились: профиль при этом показывается.
type Response struct {
	Profile            *profileModels.ProfileResponse
	Appointments       []appointmentModels.AppointmentResponse
	AppointmentsFailed bool
}
