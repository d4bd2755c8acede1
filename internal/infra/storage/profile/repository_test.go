package profile

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

var (
	userID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	now    = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, email, full_name, phone, is_admin, created_at, updated_at FROM profiles WHERE id = $1",
	)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(userID.String(), "ana@example.com", "Ana", nil, true, now, now))

	p, err := repo.GetByID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "Ana", *p.FullName)
	assert.Nil(t, p.Phone)
	assert.True(t, p.IsAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM profiles").WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := repo.GetByID(context.Background(), userID)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestExists(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM profiles WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM profiles WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	exists, err := repo.Exists(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateIfMissing(t *testing.T) {
	insert := regexp.QuoteMeta(
		"INSERT INTO profiles (id,email,full_name,phone) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO NOTHING",
	)
	p := &domain.Profile{ID: userID, Email: "ana@example.com", FullName: ptr.Ptr("Ana"), Phone: ptr.Ptr("11999999999")}

	t.Run("created", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(insert).
			WithArgs(userID, "ana@example.com", "Ana", "11999999999").
			WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.CreateIfMissing(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("already created by trigger", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.CreateIfMissing(context.Background(), p)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("email used by another profile", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(insert).WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.CreateIfMissing(context.Background(), p)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUpdateContact(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE profiles SET full_name = $1, phone = $2, updated_at = $3 WHERE id = $4 RETURNING id, email",
	)).
		WithArgs("Ana Souza", nil, now, userID).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(userID.String(), "ana@example.com", "Ana Souza", nil, false, now, now))

	p, err := repo.UpdateContact(context.Background(), userID, domain.ContactUpdate{FullName: ptr.Ptr("Ana Souza")}, now)

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", *p.FullName)
	assert.Nil(t, p.Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateContact_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("UPDATE profiles").WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := repo.UpdateContact(context.Background(), userID, domain.ContactUpdate{}, now)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListCustomers(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE is_admin = $1 ORDER BY created_at DESC")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(uuid.NewString(), "b@example.com", nil, nil, false, now, now).
			AddRow(uuid.NewString(), "a@example.com", "A", "1199", false, now.Add(-time.Hour), now))

	list, err := repo.ListCustomers(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b@example.com", list[0].Email)
}

func TestCountCustomers(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM profiles WHERE is_admin = $1")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow(uuid.NewString()).AddRow(uuid.NewString()).AddRow(uuid.NewString()))

	count, err := repo.CountCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
