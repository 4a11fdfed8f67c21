package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	entriesMaterialized  prometheus.Counter
	rolloverDuration     prometheus.Histogram
	readyToAssign        prometheus.Gauge
	transactionsRecorded *prometheus.CounterVec
	importedRows         prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		entriesMaterialized: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_entries_materialized_total",
				Help: "Total number of budget entries materialized",
			},
		),
		rolloverDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_rollover_duration_milliseconds",
				Help:    "Carry-forward computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		readyToAssign: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_ready_to_assign",
				Help: "Most recently computed ready-to-assign amount",
			},
		),
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		importedRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_import_rows_total",
				Help: "Total number of CSV rows imported",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordEntryMaterialized() {
	m.entriesMaterialized.Inc()
}

func (m *PrometheusMetrics) ObserveRolloverDuration(durationMs float64) {
	m.rolloverDuration.Observe(durationMs)
}

func (m *PrometheusMetrics) SetReadyToAssign(amount float64) {
	m.readyToAssign.Set(amount)
}

func (m *PrometheusMetrics) RecordTransaction(transactionType string) {
	m.transactionsRecorded.WithLabelValues(transactionType).Inc()
}

func (m *PrometheusMetrics) RecordImportedRows(count int) {
	m.importedRows.Add(float64(count))
}
