package observability

import (
	"context"
	"io"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// Metrics holds the service's counters. A nil *Metrics is valid and records
// nothing, so callers never need to check whether metrics are enabled.
type Metrics struct {
	apiRequests *CounterVec
	apiLatency  *HistogramVec
	apiInflight *Gauge

	predictions        *CounterVec
	bookings           *CounterVec
	cacheInvalidations *Counter
	dbStats            *GaugeVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("cp_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"cp_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight:        NewGauge("cp_api_inflight_requests", "In-flight API requests."),
		predictions:        NewCounterVec("cp_predictions_total", "Career predictions by outcome.", []string{"outcome"}),
		bookings:           NewCounterVec("cp_bookings_total", "Booking attempts by outcome.", []string{"outcome"}),
		cacheInvalidations: NewCounter("cp_cache_invalidations_total", "Explicit reference cache invalidations."),
		dbStats:            NewGaugeVec("cp_db_pool", "database/sql pool statistics.", []string{"stat"}),
	}
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, _ *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.predictions,
		m.bookings,
		m.cacheInvalidations,
		m.dbStats,
	}
	for _, wr := range writers {
		if err := wr.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	m.apiRequests.Inc(method, route, status)
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncPrediction(outcome string) {
	if m == nil {
		return
	}
	m.predictions.Inc(outcome)
}

func (m *Metrics) IncBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.Inc(outcome)
}

func (m *Metrics) IncCacheInvalidation() {
	if m == nil {
		return
	}
	m.cacheInvalidations.Inc()
}

// StartDBCollector samples pool statistics every interval until ctx ends.
func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB, interval time.Duration) {
	if m == nil || db == nil {
		return
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					if log != nil {
						log.Warn("metrics: db stats unavailable", "error", err)
					}
					continue
				}
				stats := sqlDB.Stats()
				m.dbStats.Set(float64(stats.OpenConnections), "open_connections")
				m.dbStats.Set(float64(stats.InUse), "in_use")
				m.dbStats.Set(float64(stats.Idle), "idle")
				m.dbStats.Set(float64(stats.WaitCount), "wait_count")
				m.dbStats.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
			}
		}
	}()
}
