package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/testfixtures"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
)

func TestExecute(t *testing.T) {
	profiles := testfixtures.NewProfiles(testfixtures.Customer())
	appts := testfixtures.NewAppointments(profiles, testfixtures.Haircut())
	day, _ := domain.ParseDate("2026-03-10")

	appts.Seed(&domain.Appointment{UserID: testfixtures.CustomerID, ServiceID: testfixtures.HaircutID, Date: day, Time: "09:30", Status: domain.StatusScheduled})
	appts.Seed(&domain.Appointment{UserID: testfixtures.CustomerID, ServiceID: testfixtures.HaircutID, Date: day, Time: "10:00", Status: domain.StatusCancelled})

	uc := NewUseCase(appts, domain.NewBookingWindow(time.UTC, 2), logger.Nop()).
		WithTimeProvider(testfixtures.NewClock(time.Time{}))

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 19)

	assert.Equal(t, Slot{Time: "09:00", Available: true}, resp.Slots[0])
	assert.Equal(t, Slot{Time: "09:30", Available: false}, resp.Slots[1])
	// отмененная запись слот не занимает
	assert.Equal(t, Slot{Time: "10:00", Available: true}, resp.Slots[2])
}

func TestExecute_OutsideWindow(t *testing.T) {
	uc := NewUseCase(testfixtures.NewAppointments(nil), domain.NewBookingWindow(time.UTC, 2), logger.Nop()).
		WithTimeProvider(testfixtures.NewClock(time.Time{}))

	past, _ := domain.ParseDate("2026-02-01")
	_, err := uc.Execute(context.Background(), &Request{Date: past})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
