package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PacksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
		[]string{LabelPackType},
	)

	NotablePulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotablePulls,
			Help: HelpTextNotablePulls,
		},
		[]string{LabelPackType},
	)

	RubiesSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRubiesSpent,
			Help: HelpTextRubiesSpent,
		},
	)

	RubiesTraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRubiesTraded,
			Help: HelpTextRubiesTraded,
		},
	)

	ListingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCreated,
			Help: HelpTextListingsCreated,
		},
	)

	PurchasesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesCompleted,
			Help: HelpTextPurchasesCompleted,
		},
	)
)
