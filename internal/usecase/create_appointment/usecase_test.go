package create_appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/testfixtures"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type metricsStub struct {
	conflicts []string
	created   int
}

func (m *metricsStub) IncSlotConflict(stage string) { m.conflicts = append(m.conflicts, stage) }
func (m *metricsStub) IncAppointmentCreated()       { m.created++ }

type env struct {
	uc           *UseCase
	appointments *testfixtures.Appointments
	metrics      *metricsStub
}

func newEnv(services ...*domain.Service) *env {
	if len(services) == 0 {
		services = []*domain.Service{testfixtures.Haircut(), testfixtures.Beard()}
	}
	profiles := testfixtures.NewProfiles(testfixtures.Customer())
	appts := testfixtures.NewAppointments(profiles, services...)
	m := &metricsStub{}

	loc, _ := time.LoadLocation("America/Sao_Paulo")
	uc := NewUseCase(appts, testfixtures.NewCatalog(services...), &testfixtures.TxManager{},
		domain.NewBookingWindow(loc, 2), 500, m, logger.Nop()).
		WithTimeProvider(testfixtures.NewClock(time.Time{}))

	return &env{uc: uc, appointments: appts, metrics: m}
}

func date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func request(day, at string) *Request {
	return &Request{
		Caller:    testfixtures.CallerFor(testfixtures.Customer()),
		ServiceID: testfixtures.HaircutID,
		Date:      date(day),
		Time:      types.TimeString(at),
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv()
	req := request("2026-03-10", "10:00")
	req.Notes = ptr.Ptr("  Degradê baixo  ")

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.Equal(t, "Corte Masculino", resp.ServiceName)
	assert.Equal(t, "Degradê baixo", *resp.Notes)
	assert.Equal(t, 1, e.metrics.created)

	stored := e.appointments.All()
	require.Len(t, stored, 1)
	assert.Equal(t, testfixtures.CustomerID, stored[0].UserID)
}

func TestExecute_SlotConflict(t *testing.T) {
	e := newEnv()
	_, err := e.uc.Execute(context.Background(), request("2026-03-10", "10:00"))
	require.NoError(t, err)

	// другой сервис, тот же слот: конфликт не зависит от услуги
	req := request("2026-03-10", "10:00")
	req.ServiceID = testfixtures.BeardID
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, []string{"precheck"}, e.metrics.conflicts)
	assert.Len(t, e.appointments.All(), 1)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	e := newEnv()
	e.appointments.Seed(&domain.Appointment{
		UserID:    testfixtures.CustomerID,
		ServiceID: testfixtures.HaircutID,
		Date:      date("2026-03-10"),
		Time:      "10:00",
		Status:    domain.StatusCancelled,
	})

	_, err := e.uc.Execute(context.Background(), request("2026-03-10", "10:00"))
	assert.NoError(t, err)
}

func TestExecute_LostRaceAfterPrecheck(t *testing.T) {
	e := newEnv()
	e.appointments.BeforeInsert = func() {
		e.appointments.BeforeInsert = nil
		e.appointments.Seed(&domain.Appointment{
			UserID:    uuid.New(),
			ServiceID: testfixtures.BeardID,
			Date:      date("2026-03-10"),
			Time:      "10:00",
			Status:    domain.StatusScheduled,
		})
	}

	_, err := e.uc.Execute(context.Background(), request("2026-03-10", "10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, []string{"insert"}, e.metrics.conflicts)
	assert.Len(t, e.appointments.All(), 1)
	assert.Equal(t, 0, e.metrics.created)
}

func TestExecute_Validation(t *testing.T) {
	inactive := &domain.Service{ID: uuid.New(), Name: "Antiga", Duration: 30, Active: false}
	e := newEnv(testfixtures.Haircut(), inactive)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "anonymous", mutate: func(r *Request) { r.Caller = domain.Caller{} }, wantErr: ErrUnauthenticated},
		{name: "yesterday", mutate: func(r *Request) { r.Date = date("2026-03-01") }, wantErr: ErrInvalidDate},
		{name: "today is allowed", mutate: func(r *Request) { r.Date = date("2026-03-02") }},
		{name: "last day of window", mutate: func(r *Request) { r.Date = date("2026-05-02") }},
		{name: "after window", mutate: func(r *Request) { r.Date = date("2026-05-03") }, wantErr: ErrInvalidDate},
		{name: "off grid", mutate: func(r *Request) { r.Time = "10:15" }, wantErr: ErrInvalidTimeSlot},
		{name: "after closing", mutate: func(r *Request) { r.Time = "18:30" }, wantErr: ErrInvalidTimeSlot},
		{name: "bad time", mutate: func(r *Request) { r.Time = "ten" }, wantErr: ErrInvalidTimeSlot},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = uuid.New() }, wantErr: ErrServiceNotFound},
		{name: "inactive service", mutate: func(r *Request) { r.ServiceID = inactive.ID }, wantErr: ErrServiceNotFound},
		{name: "long notes", mutate: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", 501)) }, wantErr: ErrNotesTooLong},
		{name: "notes at limit", mutate: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("é", 500)) }},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("2026-03-10", "09:00")
			// разные слоты, чтобы успешные кейсы не конфликтовали между собой
			slot, _ := types.TimeString("09:00").AddMinutes(30 * (i % 19))
			req.Time = slot
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	e := newEnv()

	opts, err := e.uc.Options(context.Background())
	require.NoError(t, err)

	assert.Len(t, opts.Services, 2)
	assert.Equal(t, "Barba", opts.Services[0].Name)
	assert.Len(t, opts.Slots, 19)
	assert.Equal(t, date("2026-03-02"), opts.MinDate)
	assert.Equal(t, date("2026-05-02"), opts.MaxDate)
}
