package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentsRecorded counts successfully applied investment payments.
	PaymentsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Number of investment payments applied to the ledger",
		},
	)

	// PaymentsRejected counts payment attempts rejected before mutation.
	PaymentsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_rejected_total",
			Help: "Number of rejected payment attempts",
		},
		[]string{"reason"},
	)

	// InvestmentsCreated counts new investments.
	InvestmentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "investments_created_total",
			Help: "Number of investments created",
		},
	)

	// SignIns counts sign-in attempts by outcome.
	SignIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sign_ins_total",
			Help: "Number of sign-in attempts",
		},
		[]string{"status"},
	)
)
