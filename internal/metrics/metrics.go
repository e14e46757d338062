package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_orders_created_total",
		Help: "The total number of committed orders",
	})
	TicketsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_tickets_booked_total",
		Help: "The total number of tickets sold",
	})
	BookingRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airport_booking_rejections_total",
		Help: "Rejected booking requests by error kind",
	}, []string{"kind"})
	BookingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "airport_booking_duration_seconds",
		Help:    "Time taken to validate and commit a booking",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	})
)
