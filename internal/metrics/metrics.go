package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	// Business metrics
	PenaltiesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "penalties_created_total",
		Help: "Total number of penalties created",
	}, []string{"reason"})

	SurchargesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "surcharges_created_total",
		Help: "Total number of surcharges created",
	})

	CarWashAdjustmentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "car_wash_adjustments_created_total",
		Help: "Total number of car wash penalties and surcharges created",
	}, []string{"kind"})

	ServicePriceUpdates =promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "service_price_updates_total",
		Help: "Total number of staff service price updates",
	}, []string{"service"})

	ReportsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reports_built_total",
		Help: "Total number of reports built",
	}, []string{"report"})

	CarsTransferred = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cars_transferred_total",
		Help: "Total number of cars transferred to car washes",
	}, []string{"car_class"})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_failed_total",
		Help: "Total number of staff notifications that could not be delivered",
	})
)
