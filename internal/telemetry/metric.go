package telemetry

import (
	"mannamsalon/config"
	"mannamsalon/internal/core"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ProviderSet = wire.NewSet(NewTrace, NewMetric)

// Metric struct；未啟用時所有欄位為 nil，呼叫端需先判斷
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	HttpErrorsTotal     *prometheus.CounterVec
	ClockEventsTotal    *prometheus.CounterVec
	PayrollRunsTotal    *prometheus.CounterVec
	PayrollNetAmount    *prometheus.HistogramVec
	ContractSignedTotal prometheus.Counter
	AuthCleanupTotal    *prometheus.CounterVec
	RateLimitTotal      prometheus.Counter
	RPCCallsTotal       *prometheus.CounterVec
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	name := func(n core.MetricName) string {
		return config.App.Name + "_" + string(n)
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: name(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		HttpErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_http_errors_total",
				Help: "Requests finished with an application error",
			},
			labelNames(core.MetricLabelReason),
		),
		ClockEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: name(core.MetricClockEventsTotal),
				Help: "Clock-in / clock-out attempts",
			},
			labelNames(core.MetricLabelEvent, core.MetricLabelStatus),
		),
		PayrollRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: name(core.MetricPayrollRunsTotal),
				Help: "Payroll calculations executed",
			},
			labelNames(core.MetricLabelStatus),
		),
		PayrollNetAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name(core.MetricPayrollNetAmount),
				Help:    "Net salary per employee per calculation (KRW)",
				Buckets: prometheus.ExponentialBuckets(100000, 2, 8),
			},
			labelNames(core.MetricLabelStore),
		),
		ContractSignedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: name(core.MetricContractSignedTotal),
				Help: "Contracts signed by employees",
			},
		),
		AuthCleanupTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: name(core.MetricAuthCleanupTotal),
				Help: "Identity accounts removed by cleanup or the users delete trigger",
			},
			labelNames(core.MetricLabelReason, core.MetricLabelStatus),
		),
		RateLimitTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: name(core.MetricRateLimitTotal),
				Help: "Requests rejected by the rate limiter",
			},
		),
		RPCCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: name(core.MetricRPCCallsTotal),
				Help: "RPC envelope calls by action",
			},
			labelNames(core.MetricLabelAction, core.MetricLabelStatus),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
