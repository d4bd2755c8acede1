package txmanager

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
)

func newMock(t *testing.T) (*dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return dbmetrics.Wrap(db, nil), mock
}

func TestDo_Commit(t *testing.T) {
	db, mock := newMock(t)
	mgr := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM x").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		require.True(t, dbmetrics.IsInTransaction(ctx))
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, "DELETE FROM x")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollbackOnError(t *testing.T) {
	db, mock := newMock(t)
	mgr := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	db, mock := newMock(t)
	mgr := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.Do(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginError(t *testing.T) {
	db, mock := newMock(t)
	mgr := NewTransactionManager(db)

	mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

	err := mgr.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestDo_Impersonation(t *testing.T) {
	db, mock := newMock(t)
	mgr := NewTransactionManager(db, WithImpersonation())
	subject := uuid.MustParse("6f1c2b1e-9a0e-4c39-8d0e-0d7b3f1c2a11")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT set_config('request.jwt.claims', $1, true)")).
		WithArgs(`{"role":"authenticated","sub":"6f1c2b1e-9a0e-4c39-8d0e-0d7b3f1c2a11"}`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL ROLE authenticated")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := mgr.Do(WithSubject(context.Background(), subject), func(ctx context.Context) error { return nil })

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_ImpersonationWithoutSubject(t *testing.T) {
	db, mock := newMock(t)
	mgr := NewTransactionManager(db, WithImpersonation())

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.DoReadOnly(context.Background(), func(ctx context.Context) error { return nil })

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
