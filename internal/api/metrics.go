package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// consultationsTotal counts consultations by outcome
	consultationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "abogado_consultations_total",
		Help: "Total legal consultations by outcome",
	}, []string{"outcome"})

	// consultationDuration tracks time spent waiting on the model
	consultationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "abogado_consultation_duration_seconds",
		Help:    "Time to produce a full answer, in seconds",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10), // 0.25s to ~2m
	})
)

func observeConsultation(outcome string, elapsed time.Duration) {
	consultationsTotal.WithLabelValues(outcome).Inc()
	if outcome != outcomeInvalid {
		consultationDuration.Observe(elapsed.Seconds())
	}
}

func metricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
