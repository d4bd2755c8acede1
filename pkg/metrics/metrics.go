package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	// Бизнес-метрики
	AppointmentsCreatedTotal prometheus.Counter
	SlotConflictsTotal       *prometheus.CounterVec
	StatusTransitionsTotal   *prometheus.CounterVec
	ProfileFetchRetriesTotal *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в указанном реестре (используется в тестах)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency by operation.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation", "status"},
		),
		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: constLabels,
		}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}),
		AppointmentsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Appointments successfully booked.",
			ConstLabels: constLabels,
		}),
		SlotConflictsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "slot_conflicts_total",
				Help:        "Booking attempts rejected because the slot was taken.",
				ConstLabels: constLabels,
			},
			// stage: precheck | insert | reopen
			[]string{"stage"},
		),
		StatusTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "appointment_status_transitions_total",
				Help:        "Appointment status changes performed by admins.",
				ConstLabels: constLabels,
			},
			[]string{"from", "to"},
		),
		ProfileFetchRetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "profile_fetch_attempts_total",
				Help:        "Profile fetch attempts after sign-in, by result.",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}
}

// IncSlotConflict не падает на nil-получателе, чтобы метрики можно было отключить
func (m *Metrics) IncSlotConflict(stage string) {
	if m == nil {
		return
	}
	m.SlotConflictsTotal.WithLabelValues(stage).Inc()
}

// IncAppointmentCreated увеличивает счетчик созданных записей
func (m *Metrics) IncAppointmentCreated() {
	if m == nil {
		return
	}
	m.AppointmentsCreatedTotal.Inc()
}

// IncStatusTransition фиксирует смену статуса
func (m *Metrics) IncStatusTransition(from, to string) {
	if m == nil {
		return
	}
	m.StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

// IncProfileFetch фиксирует попытку загрузки профиля (ok | retry | failed)
func (m *Metrics) IncProfileFetch(result string) {
	if m == nil {
		return
	}
	m.ProfileFetchRetriesTotal.WithLabelValues(result).Inc()
}
