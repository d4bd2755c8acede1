package create_appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	catalogModels "github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// AppointmentForm форма записи
type AppointmentForm struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"` // "2026-03-10"
	Time      string `json:"time" validate:"required"`                     // "10:00"
	Notes     string `json:"notes" validate:"maxrunes=500"`
}

// OptionsView страница записи: услуги, сетка слотов и допустимые даты
type OptionsView struct {
	Services []catalogModels.ServiceResponse `json:"services"`
	Slots    []string                        `json:"slots"`
	MinDate  string                          `json:"minDate"`
	MaxDate  string                          `json:"maxDate"`
	Form     AppointmentForm                 `json:"form"`
}

// AppointmentResponse созданная запись
type AppointmentResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"statusLabel"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует форму в модель use case (с парсингом даты и времени)
func (f *AppointmentForm) ToUseCaseRequest(caller domain.Caller) (*createAppointment.Request, error) {
	serviceID, err := uuid.Parse(f.ServiceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, f.Date)
	if err != nil {
		return nil, err
	}

	at, err := types.NewTimeStringFromString(f.Time)
	if err != nil {
		return nil, err
	}

	var notes *string
	if trimmed := strings.TrimSpace(f.Notes); trimmed != "" {
		notes = &trimmed
	}

	return &createAppointment.Request{
		Caller:    caller,
		ServiceID: serviceID,
		Date:      date,
		Time:      at,
		Notes:     notes,
	}, nil
}

// FromUseCaseOptions конвертирует данные формы записи
func FromUseCaseOptions(opts *createAppointment.Options) *OptionsView {
	slots := make([]string, len(opts.Slots))
	for i, s := range opts.Slots {
		slots[i] = s.String()
	}

	return &OptionsView{
		Services: catalogModels.FromDomainServices(opts.Services),
		Slots:    slots,
		MinDate:  opts.MinDate.Format(domain.DateFormat),
		MaxDate:  opts.MaxDate.Format(domain.DateFormat),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID.String(),
		ServiceID:   resp.ServiceID.String(),
		ServiceName: resp.ServiceName,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		Status:      string(resp.Status),
		StatusLabel: resp.Status.Label(),
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
