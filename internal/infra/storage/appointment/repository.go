package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/pgerr"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

const table = "appointments"

// scheduledView представление scheduled_slots: занятые слоты всех клиентов,
// видимые и под ролью authenticated, где RLS скрывает чужие записи
const scheduledView = "scheduled_slots"

// slotConflictTarget цель ON CONFLICT, совпадает с частичным уникальным индексом
// appointments_scheduled_slot_uniq
const slotConflictTarget = "ON CONFLICT (appointment_date, appointment_time) WHERE status = 'scheduled' DO NOTHING"

var appointmentColumns = []string{
	"a.id",
	"a.user_id",
	"a.service_id",
	"a.appointment_date",
	"a.appointment_time",
	"a.status",
	"a.notes",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindScheduledAt возвращает ID активных (scheduled) записей на указанные дату и время.
// Используется как предварительная проверка перед созданием записи.
func (r *Repository) FindScheduledAt(ctx context.Context, date time.Time, at types.TimeString) ([]uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(scheduledView).
		Where(squirrel.Eq{
			"appointment_date": date.Format(domain.DateFormat),
			"appointment_time": at,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindScheduledAt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindScheduledAt - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: FindScheduledAt - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindScheduledAt - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// ListScheduledTimes возвращает занятые (scheduled) слоты на дату
func (r *Repository) ListScheduledTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("appointment_time").
		From(scheduledView).
		Where(squirrel.Eq{
			"appointment_date": date.Format(domain.DateFormat),
		}).
		OrderBy("appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduledTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduledTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var at types.TimeString
		if err := rows.Scan(&at); err != nil {
			return nil, fmt.Errorf("%w: ListScheduledTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListScheduledTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// CreateIfSlotFree создает запись, только если слот свободен.
// Вставка условная: при конфликте с частичным уникальным индексом строка не
// возвращается, и метод отдает ErrSlotTaken. Так две параллельные брони одного
// слота не могут обе пройти, даже если предварительная проверка прошла у обеих.
func (r *Repository) CreateIfSlotFree(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"service_id",
			"appointment_date",
			"appointment_time",
			"status",
			"notes",
		).
		Values(
			a.UserID,
			a.ServiceID,
			a.Date.Format(domain.DateFormat),
			a.Time,
			a.Status,
			a.Notes,
		).
		Suffix(slotConflictTarget + " RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateIfSlotFree - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, classify("CreateIfSlotFree - execute insert", err)
	}

	return a, nil
}

// GetByID получает запись по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до ее завершения.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From(table + " a").
		Where(squirrel.Eq{"a.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	err = executor.QueryRowContext(ctx, query, args...).Scan(appointmentDest(&a)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	a.Date = domain.DateOf(a.Date)
	return &a, nil
}

// ListByUser возвращает записи пользователя вместе с услугой,
// отсортированные по дате и времени (ближайшие первыми)
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, appointmentColumns...), "s.name", "s.duration", "s.price")
	query, args, err := psqlbuilder.Select(columns...).
		From(table + " a").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("a.appointment_date ASC", "a.appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		var d domain.AppointmentDetails
		dest := append(appointmentDest(&d.Appointment), &d.Service.Name, &d.Service.Duration, &d.Service.Price)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan appointment: %v", ErrScanRow, err)
		}
		d.Date = domain.DateOf(d.Date)
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListAll возвращает все записи с услугой и клиентом (для администратора),
// новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.AppointmentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, appointmentColumns...),
		"s.name", "s.duration", "s.price",
		"p.full_name", "p.email", "p.phone",
	)
	query, args, err := psqlbuilder.Select(columns...).
		From(table + " a").
		Join("services s ON s.id = a.service_id").
		Join("profiles p ON p.id = a.user_id").
		OrderBy("a.appointment_date DESC", "a.appointment_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AppointmentDetails, 0)
	for rows.Next() {
		var d domain.AppointmentDetails
		var customer domain.CustomerSummary
		dest := append(appointmentDest(&d.Appointment),
			&d.Service.Name, &d.Service.Duration, &d.Service.Price,
			&customer.FullName, &customer.Email, &customer.Phone,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan appointment: %v", ErrScanRow, err)
		}
		d.Date = domain.DateOf(d.Date)
		d.Customer = &customer
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ListStatuses возвращает статусы всех записей (для подсчета статистики)
func (r *Repository) ListStatuses(ctx context.Context) ([]domain.AppointmentStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStatuses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStatuses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	statuses := make([]domain.AppointmentStatus, 0)
	for rows.Next() {
		var s domain.AppointmentStatus
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%w: ListStatuses - scan status: %v", ErrScanRow, err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStatuses - rows error: %v", ErrScanRow, err)
	}

	return statuses, nil
}

// UpdateStatus обновляет статус записи.
// Возврат в scheduled при уже занятом слоте дает ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus, updatedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classify("UpdateStatus - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func appointmentDest(a *domain.Appointment) []interface{} {
	return []interface{}{
		&a.ID,
		&a.UserID,
		&a.ServiceID,
		&a.Date,
		&a.Time,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
}

// classify переводит ошибки Postgres в ошибки репозитория
func classify(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return ErrSlotTaken
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrInvalidReference, op, err)
	case pgerr.IsInsufficientPrivilege(err):
		return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}
}
