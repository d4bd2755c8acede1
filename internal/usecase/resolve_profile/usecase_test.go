package resolve_profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/testfixtures"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
)

type metricsStub struct {
	results []string
}

func (m *metricsStub) IncProfileFetch(result string) { m.results = append(m.results, result) }

func newUseCase(profiles *testfixtures.Profiles, m *metricsStub) (*UseCase, *[]time.Duration) {
	uc := NewUseCase(profiles, &testfixtures.TxManager{}, DefaultPolicy(), m, logger.Nop())
	var pauses []time.Duration
	uc.sleep = func(ctx context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		return nil
	}
	return uc, &pauses
}

func TestExecute_SucceedsOnThirdAttempt(t *testing.T) {
	profiles := testfixtures.NewProfiles(testfixtures.Customer())
	profiles.Failures = 2
	m := &metricsStub{}
	uc, pauses := newUseCase(profiles, m)

	p, err := uc.Execute(context.Background(), testfixtures.CallerFor(testfixtures.Customer()))
	require.NoError(t, err)
	assert.Equal(t, testfixtures.CustomerID, p.ID)

	assert.Equal(t, 3, profiles.Gets)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, *pauses)
	assert.Equal(t, []string{"retry", "retry", "ok"}, m.results)
}

func TestExecute_GivesUpAfterThreeAttempts(t *testing.T) {
	profiles := testfixtures.NewProfiles(testfixtures.Customer())
	profiles.Failures = 3
	m := &metricsStub{}
	uc, pauses := newUseCase(profiles, m)

	_, err := uc.Execute(context.Background(), testfixtures.CallerFor(testfixtures.Customer()))
	assert.ErrorIs(t, err, ErrProfileUnavailable)

	assert.Equal(t, 3, profiles.Gets)
	// паузы только между попытками
	assert.Len(t, *pauses, 2)
	assert.Equal(t, []string{"retry", "retry", "failed"}, m.results)
}

func TestExecute_FirstAttemptNoPause(t *testing.T) {
	profiles := testfixtures.NewProfiles(testfixtures.Customer())
	uc, pauses := newUseCase(profiles, &metricsStub{})

	_, err := uc.Execute(context.Background(), testfixtures.CallerFor(testfixtures.Customer()))
	require.NoError(t, err)
	assert.Empty(t, *pauses)
	assert.Equal(t, 1, profiles.Gets)
}

func TestExecute_StoreErrorsAreRetried(t *testing.T) {
	profiles := testfixtures.NewProfiles(testfixtures.Customer())
	profiles.Err = errors.New("connection refused")
	uc, _ := newUseCase(profiles, &metricsStub{})

	_, err := uc.Execute(context.Background(), testfixtures.CallerFor(testfixtures.Customer()))
	assert.ErrorIs(t, err, ErrProfileUnavailable)
	assert.Equal(t, 3, profiles.Gets)
}

func TestExecute_Anonymous(t *testing.T) {
	uc, _ := newUseCase(testfixtures.NewProfiles(), &metricsStub{})

	_, err := uc.Execute(context.Background(), domain.Caller{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}
