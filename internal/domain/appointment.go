package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked slot in the shop calendar
type Appointment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time // календарная дата, 00:00 UTC
	Time      types.TimeString
	Status    AppointmentStatus
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentDetails is an appointment joined with its service and, for admin
// listings, with the owning profile
type AppointmentDetails struct {
	Appointment

	Service  ServiceSummary
	Customer *CustomerSummary
}

// ServiceSummary holds the service columns shown next to an appointment
type ServiceSummary struct {
	Name     string
	Duration int
	Price    Money
}

// CustomerSummary holds the profile columns shown in the admin listing
type CustomerSummary struct {
	FullName *string
	Email    string
	Phone    *string
}

// IsScheduled returns true if the appointment occupies its slot
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// statusTransitions допустимые переходы статусов (только для администратора)
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusScheduled},
	StatusCompleted: {},
}

// IsValid reports whether s is a known status
func (s AppointmentStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// AllowedTransitions returns the statuses an admin may move an appointment to
func (s AppointmentStatus) AllowedTransitions() []AppointmentStatus {
	next := statusTransitions[s]
	out := make([]AppointmentStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from → to is a permitted transition
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Label returns the status caption shown to users
func (s AppointmentStatus) Label() string {
	switch s {
	case StatusScheduled:
		return "Agendado"
	case StatusCompleted:
		return "Concluído"
	case StatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// ActionLabel returns the admin button caption for moving into status s
func (s AppointmentStatus) ActionLabel() string {
	switch s {
	case StatusCompleted:
		return "Concluir"
	case StatusCancelled:
		return "Cancelar"
	case StatusScheduled:
		return "Reagendar"
	default:
		return string(s)
	}
}
