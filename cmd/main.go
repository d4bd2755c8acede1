package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarbershopService/internal/api"
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
	"github.com/m04kA/SMC-BarbershopService/internal/config"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/session"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/catalog"
	profileRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/identity"
	appointmentsService "github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	authService "github.com/m04kA/SMC-BarbershopService/internal/service/auth"
	catalogService "github.com/m04kA/SMC-BarbershopService/internal/service/catalog"
	catalogModels "github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
	profilesService "github.com/m04kA/SMC-BarbershopService/internal/service/profiles"
	adminOverviewUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/admin_overview"
	createAppointmentUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	loadDashboardUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/load_dashboard"
	registerUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/register"
	resolveProfileUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/resolve_profile"
	"github.com/m04kA/SMC-BarbershopService/internal/validation"
	"github.com/m04kA/SMC-BarbershopService/migrations"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/metrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/migrator"
	"github.com/m04kA/SMC-BarbershopService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BarbershopService...")

	// Фоновые задачи (статистика пула, очистка rate limiter) живут до остановки сервера
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции до открытия пула
	if cfg.Database.AutoMigrate {
		if err := migrate(cfg.Database.URL(), log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обертка с метриками; без метрик запросы идут напрямую
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	var txOpts []txmanager.Option
	if cfg.Database.ImpersonateCaller {
		txOpts = append(txOpts, txmanager.WithImpersonation())
		log.Info("Transactions run as role authenticated with caller claims")
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB, txOpts...)

	// Хранилище сессий
	redisClient, err := session.Connect(ctx, session.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	sessionStore := session.NewStore(redisClient)
	log.Info("Session store connected (addr=%s)", cfg.Redis.Addr)

	// Identity сервис
	identityClient := identity.NewClient(
		cfg.Identity.URL,
		cfg.Identity.AnonKey,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	var verifier authService.TokenVerifier
	if cfg.Identity.JWTSecret != "" {
		verifier = identity.NewTokenVerifier(cfg.Identity.JWTSecret)
	} else {
		log.Warn("identity.jwt_secret is empty: bearer tokens are verified by the identity service")
	}
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	window := domain.NewBookingWindow(loc, cfg.Booking.WindowMonths)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	profileRepository := profileRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	validator := validation.New()

	authSvc := authService.NewService(
		identityClient,
		verifier,
		sessionStore,
		cfg.Session.TTL,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		profileRepository,
		txMgr,
		metricsCollector,
		log,
	)
	profilesSvc := profilesService.NewService(profileRepository, txMgr, log)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		catalogModels.ShopInfo{
			Name:        cfg.Shop.Name,
			Description: cfg.Shop.Description,
			Address:     cfg.Shop.Address,
			Phone:       cfg.Shop.Phone,
			Hours:       cfg.Shop.Hours,
		},
		log,
	)

	// Инициализируем use cases
	resolveProfileUseCase := resolveProfileUC.NewUseCase(
		profileRepository,
		txMgr,
		resolveProfileUC.Policy{
			Attempts: cfg.Identity.ProfileRetryAttempts,
			Pause:    cfg.Identity.ProfileRetryPause,
		},
		metricsCollector,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		txMgr,
		window,
		cfg.Booking.MaxNotesLength,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, window, log)
	loadDashboardUseCase := loadDashboardUC.NewUseCase(resolveProfileUseCase, appointmentsSvc, log)
	adminOverviewUseCase := adminOverviewUC.NewUseCase(resolveProfileUseCase, appointmentsSvc, profilesSvc, log)
	registerUseCase := registerUC.NewUseCase(
		identityClient,
		profileRepository,
		authSvc,
		validator,
		txMgr,
		cfg.Identity.ProfileProbeDelay,
		log,
	)

	// Инициализируем handlers
	cookie := middleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}

	h := api.Handlers{
		Home:                    homeHandler.NewHandler(catalogSvc, log),
		Login:                   loginHandler.NewHandler(authSvc, validator, cookie, log),
		Logout:                  logoutHandler.NewHandler(authSvc, cookie, log),
		Register:                registerHandler.NewHandler(registerUseCase, cookie, log),
		Dashboard:               dashboardHandler.NewHandler(loadDashboardUseCase, log),
		CreateAppointment:       createAppointmentHandler.NewHandler(createAppointmentUseCase, validator, log),
		AvailableSlots:          getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		Profile:                 profileHandler.NewHandler(profilesSvc, log),
		UpdateProfile:           updateProfileHandler.NewHandler(profilesSvc, validator, log),
		AdminOverview:           adminOverviewHandler.NewHandler(adminOverviewUseCase, log),
		UpdateAppointmentStatus: updateAppointmentStatusHandler.NewHandler(appointmentsSvc, validator, log),
	}

	opts := api.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		go opts.RateLimiter.Run(ctx)
		log.Info("Rate limit enabled for /login and /register (%.0f rpm, burst %d)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := api.NewRouter(h, middleware.Session(authSvc, cookie, log), opts, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи и сбор метрик connection pool
	cancel()
	close(stopMetricsCh)

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// migrate применяет встроенные миграции
func migrate(dsn string, log *logger.Logger) error {
	mg, err := migrator.New(migrations.FS, dsn, log)
	if err != nil {
		return err
	}
	defer mg.Close()

	return mg.Up()
}
