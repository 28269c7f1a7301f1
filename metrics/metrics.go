package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reservation outcomes as seen at the API boundary.
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var ReservationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "resort_reservations_total",
		Help: "Reservation attempts by outcome.",
	},
	[]string{"outcome"},
)

var AvailabilityChecksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "resort_availability_checks_total",
		Help: "Availability queries served.",
	},
)
