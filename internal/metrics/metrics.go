// Package metrics exposes the renewal results as Prometheus metrics.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qdm12/noip-renewer/internal/models"
)

type Metrics struct {
	registry         *prometheus.Registry
	remainingDays    *prometheus.GaugeVec
	renewals         *prometheus.CounterVec
	lastRunSuccess   prometheus.Gauge
	lastRunTimestamp prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		remainingDays: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "noip_host_remaining_days",
				Help: "Days left before the host expires, as last seen on the portal",
			},
			[]string{"host"},
		),
		renewals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "noip_host_renewals_total",
				Help: "Number of times the host was renewed",
			},
			[]string{"host"},
		),
		lastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "noip_last_run_success",
			Help: "1 if the last renewal run succeeded, 0 otherwise",
		}),
		lastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "noip_last_run_timestamp_seconds",
			Help: "Unix time at which the last renewal run finished",
		}),
	}
	m.registry.MustRegister(m.remainingDays, m.renewals,
		m.lastRunSuccess, m.lastRunTimestamp)
	return m
}

// Record updates the metrics with the result of a renewal run.
// Hosts processed before a failure are still recorded.
func (m *Metrics) Record(report models.Report, runErr error, finishedAt time.Time) {
	for _, host := range report.Hosts {
		labels := prometheus.Labels{"host": host.Name}
		if host.Renewed {
			m.renewals.With(labels).Inc()
		}
		m.remainingDays.With(labels).Set(float64(host.RemainingDays))
	}

	success := 0.0
	if runErr == nil {
		success = 1
	}
	m.lastRunSuccess.Set(success)
	m.lastRunTimestamp.Set(float64(finishedAt.Unix()))
}

// WriteTextfile writes all the metrics to path in the
// format of the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) (err error) {
	err = prometheus.WriteToTextfile(path, m.registry)
	if err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
