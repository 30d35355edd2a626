package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		paymentsTotal,
		paymentsRevenueTotal,
		settlementLegsFailed,
	)
}

var (
	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_payments_total",
			Help: "Persisted payment records by mode (full/installment).",
		},
		[]string{"mode"},
	)

	paymentsRevenueTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_payments_revenue_total",
			Help: "Total monetary value of persisted payment records.",
		},
	)

	settlementLegsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_settlement_legs_failed_total",
			Help: "Duo settlement legs that failed to persist after the first leg succeeded.",
		},
	)
)

func IncPayment(mode string, amount int64) {
	paymentsTotal.WithLabelValues(norm(mode)).Inc()
	paymentsRevenueTotal.Add(float64(amount))
}

func IncFailedSettlementLeg() {
	settlementLegsFailed.Inc()
}
