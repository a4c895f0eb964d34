package usecase

import (
	"time"

	"github.com/fekuna/omnipos-inventory-service/internal/apperr"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_ledger_operations_total",
			Help: "Total number of ledger operations by outcome",
		},
		[]string{"operation", "result"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_ledger_operation_duration_seconds",
			Help:    "Duration of ledger operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	codeCollisionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_ledger_code_collisions_total",
			Help: "Instance codes that collided at commit and were re-resolved",
		},
	)
)

func init() {
	prometheus.MustRegister(operationsTotal)
	prometheus.MustRegister(operationDuration)
	prometheus.MustRegister(codeCollisionsTotal)
}

// observe records one finished operation. Use as: defer observe("adjust", time.Now(), &err)
func observe(operation string, start time.Time, err *error) {
	result := "ok"
	if *err != nil {
		result = string(apperr.KindOf(*err))
	}
	operationsTotal.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
