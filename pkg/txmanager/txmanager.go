package txmanager

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrImpersonate возвращается, если не удалось выставить роль и claims
	ErrImpersonate = errors.New("txmanager: failed to impersonate caller")
)

// authenticatedRole роль Postgres, под которой работают политики RLS
const authenticatedRole = "authenticated"

// Beginner источник транзакций (*dbmetrics.DB)
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Option настраивает TransactionManager
type Option func(*TransactionManager)

// WithImpersonation включает SET LOCAL ROLE и request.jwt.claims
// для транзакций, в контексте которых есть subject (см. WithSubject)
func WithImpersonation() Option {
	return func(m *TransactionManager) {
		m.impersonate = true
	}
}

// TransactionManager выполняет функции в транзакции, передавая ее через контекст
type TransactionManager struct {
	db          Beginner
	impersonate bool
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db Beginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do выполняет fn в транзакции READ COMMITTED.
// Если транзакция уже есть в контексте, fn выполняется в ней.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if m.impersonate {
		if subject, ok := SubjectFromContext(ctx); ok {
			if err = impersonate(ctx, tx, subject); err != nil {
				return err
			}
		}
	}

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}
	return nil
}

func impersonate(ctx context.Context, tx dbmetrics.TxExecutor, subject uuid.UUID) error {
	claims, err := json.Marshal(map[string]string{
		"sub":  subject.String(),
		"role": authenticatedRole,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal claims: %v", ErrImpersonate, err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT set_config('request.jwt.claims', $1, true)", string(claims)); err != nil {
		return fmt.Errorf("%w: set claims: %v", ErrImpersonate, err)
	}
	if _, err := tx.ExecContext(ctx, "SET LOCAL ROLE "+authenticatedRole); err != nil {
		return fmt.Errorf("%w: set role: %v", ErrImpersonate, err)
	}
	return nil
}

type subjectKey struct{}

// WithSubject кладет идентификатор вызывающего пользователя в контекст
func WithSubject(ctx context.Context, subject uuid.UUID) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext достает идентификатор вызывающего пользователя
func SubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	subject, ok := ctx.Value(subjectKey{}).(uuid.UUID)
	return subject, ok
}
