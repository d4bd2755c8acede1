package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Caller    domain.Caller    // Владелец записи
	ServiceID uuid.UUID        // ID услуги
	Date      time.Time        // Дата записи (00:00 UTC)
	Time      types.TimeString // Слот, например "10:00"
	Notes     *string          // Комментарий (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	Date        time.Time
	Time        types.TimeString
	Status      domain.AppointmentStatus
	Notes       *string
	CreatedAt   time.Time
}

// Options данные для формы записи
type Options struct {
	Services []*domain.Service
	Slots    []types.TimeString
	MinDate  time.Time
	MaxDate  time.Time
}
