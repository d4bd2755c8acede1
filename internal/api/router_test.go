package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminOverviewHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/admin_overview"
	createAppointmentHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_appointment"
	dashboardHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/dashboard"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_available_slots"
	homeHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/home"
	loginHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/logout"
	profileHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/profile"
	registerHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/register"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_appointment_status"
	updateProfileHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_profile"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	"github.com/m04kA/SMC-BarbershopService/internal/service/auth"
	"github.com/m04kA/SMC-BarbershopService/internal/service/catalog"
	catalogModels "github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles"
	"github.com/m04kA/SMC-BarbershopService/internal/testfixtures"
	adminOverviewUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/admin_overview"
	createAppointmentUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	loadDashboardUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/load_dashboard"
	registerUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/register"
	resolveProfileUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/resolve_profile"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/metrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

const (
	customerPassword = "segredo123"
	adminPassword    = "admin12345"
)

var corteTradicionalID = uuid.MustParse("55555555-5555-4555-8555-555555555555")

func corteTradicional() *domain.Service {
	return &domain.Service{
		ID:          corteTradicionalID,
		Name:        "Corte Tradicional",
		Description: ptr.Ptr("Corte clássico com tesoura e máquina"),
		Duration:    30,
		Price:       decimal.RequireFromString("25.00"),
		Active:      true,
	}
}

type testApp struct {
	router       http.Handler
	identity     *testfixtures.Identity
	sessions     *testfixtures.Sessions
	appointments *testfixtures.Appointments
	profiles     *testfixtures.Profiles
}

func newTestApp(t *testing.T, rl *middleware.RateLimiter) *testApp {
	t.Helper()

	log := logger.Nop()
	clock := testfixtures.NewClock(time.Time{})
	tx := &testfixtures.TxManager{}
	var m *metrics.Metrics

	profileStore := testfixtures.NewProfiles(testfixtures.Customer(), testfixtures.Admin())
	catalogStore := testfixtures.NewCatalog(corteTradicional())
	appointmentStore := testfixtures.NewAppointments(profileStore, corteTradicional())

	idp := testfixtures.NewIdentity()
	idp.AddUser(testfixtures.CustomerID, testfixtures.Customer().Email, customerPassword)
	idp.AddUser(testfixtures.AdminID, testfixtures.Admin().Email, adminPassword)
	sessionStore := testfixtures.NewSessions(clock)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	window := domain.NewBookingWindow(loc, 2)
	v := validation.New()
	cookie := middleware.SessionCookie{Name: "barbearia_session"}

	authSvc := auth.NewService(idp, nil, sessionStore, 24*time.Hour, log).WithClock(clock.Now)
	appointmentSvc := appointments.NewService(appointmentStore, profileStore, tx, m, log).WithClock(clock.Now)
	profileSvc := profiles.NewService(profileStore, tx, log)
	catalogSvc := catalog.NewService(catalogStore, catalogModels.ShopInfo{Name: "BarbeariaTop"}, log)

	resolver := resolveProfileUC.NewUseCase(profileStore, tx, resolveProfileUC.Policy{Attempts: 3}, m, log)
	createAppointment := createAppointmentUC.NewUseCase(appointmentStore, catalogStore, tx, window, 500, m, log).
		WithTimeProvider(clock)
	availableSlots := getAvailableSlotsUC.NewUseCase(appointmentStore, window, log).WithTimeProvider(clock)
	register := registerUC.NewUseCase(idp, profileStore, authSvc, v, tx, 0, log)

	h := Handlers{
		Home:                    homeHandler.NewHandler(catalogSvc, log),
		Login:                   loginHandler.NewHandler(authSvc, v, cookie, log),
		Logout:                  logoutHandler.NewHandler(authSvc, cookie, log),
		Register:                registerHandler.NewHandler(register, cookie, log),
		Dashboard:               dashboardHandler.NewHandler(loadDashboardUC.NewUseCase(resolver, appointmentSvc, log), log),
		CreateAppointment:       createAppointmentHandler.NewHandler(createAppointment, v, log),
		AvailableSlots:          getAvailableSlotsHandler.NewHandler(availableSlots, log),
		Profile:                 profileHandler.NewHandler(profileSvc, log),
		UpdateProfile:           updateProfileHandler.NewHandler(profileSvc, v, log),
		AdminOverview:           adminOverviewHandler.NewHandler(adminOverviewUC.NewUseCase(resolver, appointmentSvc, profileSvc, log), log),
		UpdateAppointmentStatus: updateAppointmentStatusHandler.NewHandler(appointmentSvc, v, log),
	}

	router := NewRouter(h, middleware.Session(authSvc, cookie, log), Options{RateLimiter: rl}, log)

	return &testApp{
		router:       router,
		identity:     idp,
		sessions:     sessionStore,
		appointments: appointmentStore,
		profiles:     profileStore,
	}
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "198.51.100.7:40000"
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/login", map[string]string{"email": email, "password": password}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		if c.Name == "barbearia_session" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type messageBody struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

type errorBody struct {
	Error string                 `json:"error"`
	Form  map[string]interface{} `json:"form"`
}

func TestRouter_BookingEndToEnd(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.login(t, testfixtures.Customer().Email, customerPassword)

	// Пустой личный кабинет
	rec := app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	empty := decode[dashboardHandler.DashboardView](t, rec)
	assert.Empty(t, empty.Appointments)
	require.NotNil(t, empty.EmptyState)
	assert.Equal(t, "Você ainda não tem agendamentos", empty.EmptyState.Message)
	assert.Equal(t, "Fazer Primeiro Agendamento", empty.EmptyState.ActionLabel)
	assert.Equal(t, "/appointment", empty.EmptyState.ActionHref)

	// Запись на 10:00
	form := map[string]string{
		"serviceId": corteTradicionalID.String(),
		"date":      "2026-03-10",
		"time":      "10:00",
	}
	rec = app.do(t, http.MethodPost, "/appointment", form, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[messageBody](t, rec)
	assert.Equal(t, "Agendamento realizado!", created.Message)
	assert.Equal(t, "/dashboard", created.Redirect)

	// В кабинете ровно одна запись
	rec = app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[dashboardHandler.DashboardView](t, rec)
	assert.Nil(t, view.EmptyState)
	require.Len(t, view.Appointments, 1)
	got := view.Appointments[0]
	assert.Equal(t, "scheduled", got.Status)
	assert.Equal(t, "Agendado", got.StatusLabel)
	assert.Equal(t, "10/03/2026", got.Date)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, "Corte Tradicional", got.Service.Name)
	assert.Equal(t, "R$ 25,00", got.Service.Price)
	assert.Equal(t, "30 min", got.Service.Duration)

	// Повторная запись на тот же слот
	rec = app.do(t, http.MethodPost, "/appointment", form, cookie)
	require.Equal(t, http.StatusConflict, rec.Code)
	conflict := decode[errorBody](t, rec)
	assert.Equal(t, "Este horário já está ocupado. Escolha outro horário.", conflict.Error)
	assert.Equal(t, "10:00", conflict.Form["time"], "the submitted form is echoed back")
	assert.Len(t, app.appointments.All(), 1)

	// Слот виден как занятый
	rec = app.do(t, http.MethodGet, "/appointment/slots?date=2026-03-10", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	slots := decode[getAvailableSlotsHandler.AvailableSlotsResponse](t, rec)
	require.Len(t, slots.Slots, 19)
	for _, s := range slots.Slots {
		assert.Equal(t, s.Time != "10:00", s.Available, s.Time)
	}
}

func TestRouter_AppointmentOptions(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.login(t, testfixtures.Customer().Email, customerPassword)

	rec := app.do(t, http.MethodGet, "/appointment", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	opts := decode[createAppointmentHandler.OptionsView](t, rec)
	require.Len(t, opts.Services, 1)
	assert.Equal(t, "R$ 25,00", opts.Services[0].Price)
	assert.Len(t, opts.Slots, 19)
	assert.Equal(t, "09:00", opts.Slots[0])
	assert.Equal(t, "18:00", opts.Slots[18])
	assert.Equal(t, "2026-03-02", opts.MinDate)
	assert.Equal(t, "2026-05-02", opts.MaxDate)
}

func TestRouter_AppointmentValidation(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.login(t, testfixtures.Customer().Email, customerPassword)

	tests := []struct {
		name    string
		form    map[string]string
		status  int
		message string
	}{
		{
			name:    "missing time",
			form:    map[string]string{"serviceId": corteTradicionalID.String(), "date": "2026-03-10"},
			status:  http.StatusBadRequest,
			message: validation.MsgRequired,
		},
		{
			name:    "off grid",
			form:    map[string]string{"serviceId": corteTradicionalID.String(), "date": "2026-03-10", "time": "18:30"},
			status:  http.StatusBadRequest,
			message: "Horário inválido. Escolha um horário da lista.",
		},
		{
			name:    "past date",
			form:    map[string]string{"serviceId": corteTradicionalID.String(), "date": "2026-03-01", "time": "10:00"},
			status:  http.StatusBadRequest,
			message: "Escolha uma data dentro do período disponível para agendamento",
		},
		{
			name:    "unknown service",
			form:    map[string]string{"serviceId": uuid.NewString(), "date": "2026-03-10", "time": "10:00"},
			status:  http.StatusNotFound,
			message: "Serviço não encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/appointment", tt.form, cookie)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, tt.message, decode[errorBody](t, rec).Error)
		})
	}
	assert.Empty(t, app.appointments.All())
}

func TestRouter_Redirects(t *testing.T) {
	app := newTestApp(t, nil)

	t.Run("anonymous dashboard goes to login", func(t *testing.T) {
		rec := app.do(t, http.MethodGet, "/dashboard", nil, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("anonymous booking goes to login", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/appointment", map[string]string{}, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("admin dashboard goes to admin", func(t *testing.T) {
		cookie := app.login(t, testfixtures.Admin().Email, adminPassword)
		rec := app.do(t, http.MethodGet, "/dashboard", nil, cookie)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get("Location"))
	})

	t.Run("customer admin goes to dashboard", func(t *testing.T) {
		cookie := app.login(t, testfixtures.Customer().Email, customerPassword)
		rec := app.do(t, http.MethodGet, "/admin", nil, cookie)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("signed in login page goes to dashboard", func(t *testing.T) {
		cookie := app.login(t, testfixtures.Customer().Email, customerPassword)
		rec := app.do(t, http.MethodGet, "/login", nil, cookie)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})
}

func TestRouter_AdminStatusLifecycle(t *testing.T) {
	app := newTestApp(t, nil)
	day, err := domain.ParseDate("2026-03-10")
	require.NoError(t, err)
	seeded := app.appointments.Seed(&domain.Appointment{
		UserID:    testfixtures.CustomerID,
		ServiceID: corteTradicionalID,
		Date:      day,
		Time:      "14:30",
		Status:    domain.StatusScheduled,
	})

	admin := app.login(t, testfixtures.Admin().Email, adminPassword)
	statusPath := "/admin/appointments/" + seeded.ID.String() + "/status"

	// Клиент не может менять статус
	customer := app.login(t, testfixtures.Customer().Email, customerPassword)
	rec := app.do(t, http.MethodPost, statusPath, map[string]string{"status": "cancelled"}, customer)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Отмена и повторное открытие
	rec = app.do(t, http.MethodPost, statusPath, map[string]string{"status": "cancelled"}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = app.do(t, http.MethodPost, statusPath, map[string]string{"status": "scheduled"}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	all := app.appointments.All()
	require.Len(t, all, 1)
	assert.Equal(t, domain.StatusScheduled, all[0].Status)
	assert.Equal(t, day, all[0].Date)
	assert.Equal(t, "14:30", all[0].Time.String())
	assert.Equal(t, corteTradicionalID, all[0].ServiceID)

	// Завершенная запись больше не предлагает действий
	rec = app.do(t, http.MethodPost, statusPath, map[string]string{"status": "completed"}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.do(t, http.MethodPost, statusPath, map[string]string{"status": "scheduled"}, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.do(t, http.MethodGet, "/admin", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	panel := decode[adminOverviewHandler.AdminView](t, rec)
	require.Len(t, panel.Appointments, 1)
	assert.Equal(t, "completed", panel.Appointments[0].Status)
	assert.Empty(t, panel.Appointments[0].Actions)
	assert.Equal(t, 1, panel.Stats.TotalAppointments)
	assert.Equal(t, 1, panel.Stats.CompletedAppointments)
	assert.Equal(t, 1, panel.Stats.TotalCustomers)
	require.Len(t, panel.Customers, 1)
	assert.Empty(t, panel.CustomersEmpty)

	// Неизвестный статус
	rec = app.do(t, http.MethodPost, statusPath, map[string]string{"status": "archived"}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RegisterValidatesLocally(t *testing.T) {
	app := newTestApp(t, nil)

	base := map[string]string{
		"fullName":        "Pedro Alves",
		"email":           "pedro@example.com",
		"phone":           "(11) 91234-5678",
		"password":        "abcdef",
		"confirmPassword": "abcdeg",
	}

	rec := app.do(t, http.MethodPost, "/register", base, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, validation.MsgPasswordMismatch, body.Error)
	assert.Equal(t, "pedro@example.com", body.Form["email"])
	assert.NotContains(t, body.Form, "password")

	base["password"], base["confirmPassword"] = "abc", "abc"
	rec = app.do(t, http.MethodPost, "/register", base, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validation.MsgPasswordTooShort, decode[errorBody](t, rec).Error)

	assert.Zero(t, app.identity.SignUps, "no sign up call before the form is valid")
}

func TestRouter_RegisterAndSignIn(t *testing.T) {
	app := newTestApp(t, nil)
	app.identity.AutoConfirm = true

	rec := app.do(t, http.MethodPost, "/register", map[string]string{
		"fullName":        "Pedro Alves",
		"email":           "pedro@example.com",
		"phone":           "(11) 91234-5678",
		"password":        "abcdef",
		"confirmPassword": "abcdef",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	msg := decode[messageBody](t, rec)
	assert.Equal(t, "Conta criada com sucesso!", msg.Message)
	assert.Equal(t, "/dashboard", msg.Redirect)
	require.NotEmpty(t, rec.Result().Cookies())

	rec = app.do(t, http.MethodGet, "/dashboard", nil, rec.Result().Cookies()[0])
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[dashboardHandler.DashboardView](t, rec)
	assert.Equal(t, "Pedro Alves", view.Profile.FullName)
}

func TestRouter_LoginFailureAndLogout(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodPost, "/login", map[string]string{
		"email":    testfixtures.Customer().Email,
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "Invalid login credentials", body.Error)
	assert.Equal(t, testfixtures.Customer().Email, body.Form["email"])

	cookie := app.login(t, testfixtures.Customer().Email, customerPassword)
	require.Equal(t, 1, app.sessions.Len())

	rec = app.do(t, http.MethodPost, "/logout", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Zero(t, app.sessions.Len())

	rec = app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRouter_LoginUnconfirmedEmail(t *testing.T) {
	app := newTestApp(t, nil)
	app.identity.SignInErr = identity.NewError(400, "email_not_confirmed", "Email not confirmed")

	rec := app.do(t, http.MethodPost, "/login", map[string]string{
		"email":    testfixtures.Customer().Email,
		"password": customerPassword,
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	body := decode[errorBody](t, rec)
	assert.Equal(t, "Email not confirmed", body.Error)
	assert.Equal(t, testfixtures.Customer().Email, body.Form["email"])
	assert.Empty(t, rec.Result().Cookies())
}

func TestRouter_ProfileUpdate(t *testing.T) {
	app := newTestApp(t, nil)
	cookie := app.login(t, testfixtures.Customer().Email, customerPassword)

	rec := app.do(t, http.MethodPost, "/profile", map[string]string{"fullName": "João P. Silva", "phone": ""}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Perfil atualizado com sucesso!", decode[messageBody](t, rec).Message)

	rec = app.do(t, http.MethodGet, "/profile", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[profileHandler.ProfileView](t, rec)
	assert.Equal(t, "João P. Silva", view.Profile.FullName)
	assert.Empty(t, view.Profile.Phone)
	assert.Equal(t, testfixtures.Customer().Email, view.Profile.Email)
}

func TestRouter_Home(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[homeHandler.HomeView](t, rec)
	assert.False(t, view.SignedIn)
	assert.Equal(t, "/register", view.Next)
	require.Len(t, view.Services, 1)
	assert.Equal(t, "Corte Tradicional", view.Services[0].Name)
	assert.Equal(t, "R$ 25,00", view.Services[0].Price)
}

func TestRouter_RateLimitsLogin(t *testing.T) {
	app := newTestApp(t, middleware.NewRateLimiter(1, 2))
	creds := map[string]string{"email": testfixtures.Customer().Email, "password": "wrong"}

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/login", creds, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/login", creds, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, app.do(t, http.MethodPost, "/login", creds, nil).Code)

	// страницы без формы не ограничиваются
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodGet, "/", nil, nil).Code)
}

func TestRouter_NotFound(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Página não encontrada", decode[errorBody](t, rec).Error)
}
