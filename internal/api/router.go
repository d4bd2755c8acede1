// Package api assembles the view handlers into the HTTP router.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
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
	"github.com/m04kA/SMC-BarbershopService/pkg/metrics"
)

const msgNotFound = "Página não encontrada"

// Handlers обработчики всех страниц
type Handlers struct {
	Home                    *homeHandler.Handler
	Login                   *loginHandler.Handler
	Logout                  *logoutHandler.Handler
	Register                *registerHandler.Handler
	Dashboard               *dashboardHandler.Handler
	CreateAppointment       *createAppointmentHandler.Handler
	AvailableSlots          *getAvailableSlotsHandler.Handler
	Profile                 *profileHandler.Handler
	UpdateProfile           *updateProfileHandler.Handler
	AdminOverview           *adminOverviewHandler.Handler
	UpdateAppointmentStatus *updateAppointmentStatusHandler.Handler
}

// Options необязательные части роутера
type Options struct {
	// Metrics nil отключает HTTP метрики и /metrics
	Metrics     *metrics.Metrics
	MetricsPath string
	// RateLimiter nil отключает ограничение частоты входа и регистрации
	RateLimiter *middleware.RateLimiter
}

// NewRouter настраивает маршруты.
// session определяет пользователя запроса до вызова любого обработчика страницы.
func NewRouter(h Handlers, session mux.MiddlewareFunc, opts Options, logger middleware.Logger) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgNotFound)
	})

	// Metrics middleware и endpoint (публичный, без сессии)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	app := r.PathPrefix("").Subrouter()
	app.Use(session)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	app.HandleFunc("/", h.Home.Handle).Methods(http.MethodGet)
	app.HandleFunc("/login", h.Login.Page).Methods(http.MethodGet)
	app.HandleFunc("/register", h.Register.Page).Methods(http.MethodGet)
	app.HandleFunc("/logout", h.Logout.Handle).Methods(http.MethodPost)

	// Вход и регистрация ограничены по частоте запросов с одного IP
	limited := app.PathPrefix("").Subrouter()
	if opts.RateLimiter != nil {
		limited.Use(middleware.RateLimit(opts.RateLimiter, logger))
	}
	limited.HandleFunc("/login", h.Login.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/register", h.Register.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (анонимный пользователь отправляется на /login)
	// ============================================================

	protected := app.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireCaller)

	protected.HandleFunc("/dashboard", h.Dashboard.Handle).Methods(http.MethodGet)

	// --- Запись ---
	protected.HandleFunc("/appointment", h.CreateAppointment.Options).Methods(http.MethodGet)
	protected.HandleFunc("/appointment", h.CreateAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointment/slots", h.AvailableSlots.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	protected.HandleFunc("/profile", h.Profile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/profile", h.UpdateProfile.Handle).Methods(http.MethodPost)

	// --- Администратор (права проверяются в use case и сервисе) ---
	protected.HandleFunc("/admin", h.AdminOverview.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/appointments/{appointmentId}/status",
		h.UpdateAppointmentStatus.Handle).Methods(http.MethodPost)

	return r
}
