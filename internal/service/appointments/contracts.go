package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AppointmentDetails, error)
	ListAll(ctx context.Context) ([]*domain.AppointmentDetails, error)
	ListStatuses(ctx context.Context) ([]domain.AppointmentStatus, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus, updatedAt time.Time) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	CountCustomers(ctx context.Context) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики
type Metrics interface {
	IncStatusTransition(from, to string)
	IncSlotConflict(stage string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
