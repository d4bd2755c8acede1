package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

var (
	// ErrReadConfig возвращается, если не удалось прочитать файл конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrEnvOverride возвращается при ошибке применения переменных окружения
	ErrEnvOverride = errors.New("config: failed to apply environment overrides")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Identity  IdentityConfig  `toml:"identity"`
	Session   SessionConfig   `toml:"session"`
	Booking   BookingConfig   `toml:"booking"`
	Shop      ShopConfig      `toml:"shop"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"SERVER_HTTP_PORT, overwrite"`
	ReadTimeout     int `toml:"read_timeout" env:"SERVER_READ_TIMEOUT, overwrite"`
	WriteTimeout    int `toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT, overwrite"`
	IdleTimeout     int `toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT, overwrite"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT, overwrite"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DATABASE_HOST, overwrite"`
	Port            int    `toml:"port" env:"DATABASE_PORT, overwrite"`
	User            string `toml:"user" env:"DATABASE_USER, overwrite"`
	Password        string `toml:"password" env:"DATABASE_PASSWORD, overwrite"`
	DBName          string `toml:"dbname" env:"DATABASE_NAME, overwrite"`
	SSLMode         string `toml:"sslmode" env:"DATABASE_SSLMODE, overwrite"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS, overwrite"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS, overwrite"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME, overwrite"`

	// ImpersonateCaller выполняет транзакции под ролью authenticated
	// с claims вызывающего пользователя, чтобы RLS применялась и к сервису
	ImpersonateCaller bool `toml:"impersonate_caller" env:"DATABASE_IMPERSONATE_CALLER, overwrite"`
	AutoMigrate       bool `toml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE, overwrite"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в формате postgres:// (для golang-migrate)
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// RedisConfig настройки хранилища сессий
type RedisConfig struct {
	Addr     string `toml:"addr" env:"REDIS_ADDR, overwrite"`
	Password string `toml:"password" env:"REDIS_PASSWORD, overwrite"`
	DB       int    `toml:"db" env:"REDIS_DB, overwrite"`
}

// IdentityConfig настройки identity сервиса (GoTrue)
type IdentityConfig struct {
	URL       string `toml:"url" env:"IDENTITY_URL, overwrite"`
	AnonKey   string `toml:"anon_key" env:"IDENTITY_ANON_KEY, overwrite"`
	JWTSecret string `toml:"jwt_secret" env:"IDENTITY_JWT_SECRET, overwrite"`
	Timeout   int    `toml:"timeout" env:"IDENTITY_TIMEOUT, overwrite"`

	ProfileRetryAttempts int           `toml:"profile_retry_attempts" env:"IDENTITY_PROFILE_RETRY_ATTEMPTS, overwrite"`
	ProfileRetryPause    time.Duration `toml:"profile_retry_pause" env:"IDENTITY_PROFILE_RETRY_PAUSE, overwrite"`
	ProfileProbeDelay    time.Duration `toml:"profile_probe_delay" env:"IDENTITY_PROFILE_PROBE_DELAY, overwrite"`
}

// SessionConfig настройки cookie сессии
type SessionConfig struct {
	CookieName string        `toml:"cookie_name" env:"SESSION_COOKIE_NAME, overwrite"`
	TTL        time.Duration `toml:"ttl" env:"SESSION_TTL, overwrite"`
	Secure     bool          `toml:"secure" env:"SESSION_SECURE, overwrite"`
}

// BookingConfig правила записи
type BookingConfig struct {
	Timezone       string `toml:"timezone" env:"BOOKING_TIMEZONE, overwrite"`
	WindowMonths   int    `toml:"window_months" env:"BOOKING_WINDOW_MONTHS, overwrite"`
	MaxNotesLength int    `toml:"max_notes_length" env:"BOOKING_MAX_NOTES_LENGTH, overwrite"`
}

// Location возвращает часовой пояс, в котором считается "сегодня"
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// ShopConfig информация о барбершопе для главной страницы
type ShopConfig struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Address     string   `toml:"address"`
	Phone       string   `toml:"phone"`
	Hours       []string `toml:"hours"`
}

// RateLimitConfig ограничение частоты запросов на вход и регистрацию
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled" env:"RATE_LIMIT_ENABLED, overwrite"`
	RequestsPerMinute float64 `toml:"requests_per_minute" env:"RATE_LIMIT_RPM, overwrite"`
	Burst             int     `toml:"burst" env:"RATE_LIMIT_BURST, overwrite"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" env:"LOGS_LEVEL, overwrite"`
	File  string `toml:"file" env:"LOGS_FILE, overwrite"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED, overwrite"`
	Path        string `toml:"path" env:"METRICS_PATH, overwrite"`
	ServiceName string `toml:"service_name" env:"METRICS_SERVICE_NAME, overwrite"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "postgres",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Identity: IdentityConfig{
			URL:                  "http://localhost:9999",
			Timeout:              10,
			ProfileRetryAttempts: 3,
			ProfileRetryPause:    time.Second,
		},
		Session: SessionConfig{
			CookieName: "barbearia_session",
			TTL:        24 * time.Hour,
		},
		Booking: BookingConfig{
			Timezone:       "America/Sao_Paulo",
			WindowMonths:   2,
			MaxNotesLength: 500,
		},
		Shop: ShopConfig{
			Name: "BarbeariaTop",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 10,
			Burst:             5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barbershop-service",
		},
	}
}

// Load читает конфигурацию из TOML файла, затем применяет .env и переменные окружения.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	return load(path, envconfig.OsLookuper())
}

func load(path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Identity.URL == "":
		return fmt.Errorf("%w: identity.url is required", ErrInvalidConfig)
	case c.Identity.ProfileRetryAttempts < 1:
		return fmt.Errorf("%w: identity.profile_retry_attempts must be >= 1", ErrInvalidConfig)
	case c.Identity.ProfileRetryPause < 0 || c.Identity.ProfileProbeDelay < 0:
		return fmt.Errorf("%w: identity delays must not be negative", ErrInvalidConfig)
	case c.Session.CookieName == "":
		return fmt.Errorf("%w: session.cookie_name is required", ErrInvalidConfig)
	case c.Session.TTL <= 0:
		return fmt.Errorf("%w: session.ttl must be positive", ErrInvalidConfig)
	case c.Booking.WindowMonths < 0:
		return fmt.Errorf("%w: booking.window_months must not be negative", ErrInvalidConfig)
	case c.Booking.MaxNotesLength <= 0:
		return fmt.Errorf("%w: booking.max_notes_length must be positive", ErrInvalidConfig)
	case c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0):
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}

	return nil
}
