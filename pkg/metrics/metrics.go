package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOps counts whole-document loads and saves by outcome.
	StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "garden_store_operations_total",
		Help: "Garden document loads and saves.",
	}, []string{"op", "result"})

	PlantsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "garden_plants_added_total",
		Help: "Plants added to the garden.",
	})

	// CareLogged counts appended care events by type. Unknown plant ids are
	// counted under result="unknown_plant".
	CareLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "garden_care_events_total",
		Help: "Care log requests.",
	}, []string{"type", "result"})

	Plants = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "garden_plants",
		Help: "Plants in the most recently loaded garden.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "garden_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})
)

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
