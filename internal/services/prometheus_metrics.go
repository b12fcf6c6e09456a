package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsTotal    *prometheus.CounterVec
	transactionDuration  prometheus.Histogram
	transferAmount       prometheus.Histogram
	dailyLimitRejections prometheus.Counter
	versionConflicts     *prometheus.CounterVec
	accountsOpened       *prometheus.CounterVec
	loansTotal           *prometheus.CounterVec
	emiPaymentsTotal     *prometheus.CounterVec
	auditBufferDepth     prometheus.Gauge
	auditEventsDropped   prometheus.Counter
	circuitBreakerState  *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Total number of ledger transactions by operation and status",
			},
			[]string{"operation", "status"},
		),
		transactionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_duration_milliseconds",
				Help:    "Transaction processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transfer_amount",
				Help:    "Transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		dailyLimitRejections: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_daily_limit_rejections_total",
				Help: "Total number of transfers rejected by the daily limit",
			},
		),
		versionConflicts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_version_conflicts_total",
				Help: "Total number of optimistic concurrency conflicts by entity",
			},
			[]string{"entity"},
		),
		accountsOpened: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_accounts_opened_total",
				Help: "Total number of accounts opened by type",
			},
			[]string{"account_type"},
		),
		loansTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_loans_total",
				Help: "Total number of loan lifecycle events",
			},
			[]string{"event"},
		),
		emiPaymentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_emi_payments_total",
				Help: "Total number of EMI payment attempts by status",
			},
			[]string{"status"},
		),
		auditBufferDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_audit_buffer_depth",
				Help: "Current number of audit events waiting to be flushed",
			},
		),
		auditEventsDropped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_audit_events_dropped_total",
				Help: "Total number of audit events dropped due to buffer saturation",
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "transaction.completed":
		m.transactionsTotal.WithLabelValues(operation, "completed").Inc()
	case "transaction.failed":
		m.transactionsTotal.WithLabelValues(operation, "failed").Inc()
	case "transaction.daily_limit_rejected":
		m.dailyLimitRejections.Inc()
		m.transactionsTotal.WithLabelValues(operation, "failed").Inc()
	case "version.conflict":
		m.versionConflicts.WithLabelValues(tags["entity"]).Inc()
	case "account.opened":
		m.accountsOpened.WithLabelValues(tags["account_type"]).Inc()
	case "loan.applied", "loan.approved", "loan.rejected", "loan.disbursed", "loan.closed":
		m.loansTotal.WithLabelValues(name[len("loan."):]).Inc()
	case "emi.payment":
		if status != "" {
			m.emiPaymentsTotal.WithLabelValues(status).Inc()
		}
	case "audit.dropped":
		m.auditEventsDropped.Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "circuit_breaker.closed":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(0)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.processing":
		m.transactionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer_amount":
		m.transferAmount.Observe(value)
	case "audit.buffer_depth":
		m.auditBufferDepth.Set(value)
	}
}
