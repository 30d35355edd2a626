package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		salesTotal,
		salesRevenueTotal,
		saleUnitsTotal,
	)
}

var (
	salesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_sales_total",
			Help: "Completed point-of-sale transactions by payment method.",
		},
		[]string{"method"},
	)

	salesRevenueTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_sales_revenue_total",
			Help: "Total monetary value of completed sales.",
		},
	)

	saleUnitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_sale_units_total",
			Help: "Product units sold across all sales.",
		},
	)
)

func IncSale(method string, total int64, units int) {
	salesTotal.WithLabelValues(norm(method)).Inc()
	salesRevenueTotal.Add(float64(total))
	saleUnitsTotal.Add(float64(units))
}
