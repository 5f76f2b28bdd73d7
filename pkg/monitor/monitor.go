package monitor

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	KindNutrientLog  = "nutrient_log"
	KindReservoirLog = "reservoir_log"

	ResultInserted = "inserted"
	ResultMerged   = "merged"
	ResultFailed   = "failed"
)

var (
	// upsertsTotal counts accumulation upserts by entity kind and outcome
	upsertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "growlog_upserts_total",
		Help: "Accumulation upserts by kind and result",
	}, []string{"kind", "result"})

	// degradedTotal counts display computations that fell back to null
	degradedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "growlog_degraded_computations_total",
		Help: "Derived computations that degraded to an empty result",
	}, []string{"computation"})
)

func Upsert(kind, result string) { upsertsTotal.WithLabelValues(kind, result).Inc() }

func Degraded(computation string) { degradedTotal.WithLabelValues(computation).Inc() }

// Handler serves the default registry for the /metrics route.
func Handler() echo.HandlerFunc { return echo.WrapHandler(promhttp.Handler()) }
