package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/pgerr"
	"github.com/m04kA/SMC-BarbershopService/pkg/psqlbuilder"
)

const table = "profiles"

var profileColumns = []string{
	"id",
	"email",
	"full_name",
	"phone",
	"is_admin",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по идентификатору пользователя
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(profileDest(&p)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	return &p, nil
}

// Exists проверяет наличие профиля
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var found uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

// CreateIfMissing создает профиль, если его еще нет.
// Возвращает true, если профиль был создан этим вызовом.
// Повторный вызов (или гонка с триггером handle_new_user) ничего не меняет.
func (r *Repository) CreateIfMissing(ctx context.Context, p *domain.Profile) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "email", "full_name", "phone").
		Values(p.ID, p.Email, p.FullName, p.Phone).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfMissing - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return false, ErrEmailTaken
		}
		return false, fmt.Errorf("%w: CreateIfMissing - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfMissing - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// UpdateContact обновляет имя и телефон. Пустые значения сохраняются как NULL.
func (r *Repository) UpdateContact(ctx context.Context, id uuid.UUID, update domain.ContactUpdate, updatedAt time.Time) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("full_name", update.FullName).
		Set("phone", update.Phone).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateContact - build update query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(profileDest(&p)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateContact - execute update: %v", ErrExecQuery, err)
	}

	return &p, nil
}

// ListCustomers возвращает профили без прав администратора, новые первыми
func (r *Repository) ListCustomers(ctx context.Context) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From(table).
		Where(squirrel.Eq{"is_admin": false}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(profileDest(&p)...); err != nil {
			return nil, fmt.Errorf("%w: ListCustomers - scan profile: %v", ErrScanRow, err)
		}
		profiles = append(profiles, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCustomers - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}

// CountCustomers считает профили без прав администратора.
// Выбираются только id, подсчет выполняется на стороне сервиса.
func (r *Repository) CountCustomers(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"is_admin": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCustomers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountCustomers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountCustomers - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

func profileDest(p *domain.Profile) []interface{} {
	return []interface{}{
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Phone,
		&p.IsAdmin,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
