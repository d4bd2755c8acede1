package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
)

var serviceID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestListActive(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, duration, price, active, created_at FROM services WHERE active = $1 ORDER BY name",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(serviceID.String(), "Barba Completa", "Aparação e modelagem de barba", int64(20), "15.00", true, now).
			AddRow(uuid.NewString(), "Corte Tradicional", nil, int64(30), "25.00", true, now))

	services, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, serviceID, services[0].ID)
	assert.Equal(t, "Aparação e modelagem de barba", *services[0].Description)
	assert.Nil(t, services[1].Description)
	assert.Equal(t, 30, services[1].Duration)
	assert.True(t, decimal.NewFromInt(25).Equal(services[1].Price))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs(serviceID).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(serviceID.String(), "Sobrancelha", nil, int64(15), "10.00", false, time.Now()))

	s, err := repo.GetByID(context.Background(), serviceID)

	require.NoError(t, err)
	assert.Equal(t, "Sobrancelha", s.Name)
	assert.False(t, s.Active)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM services").WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.GetByID(context.Background(), serviceID)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
