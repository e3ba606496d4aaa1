package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

// Metrics counts conversation turns and order outcomes.
type Metrics struct {
	turns           *prometheus.CounterVec
	ordersPlaced    prometheus.Counter
	ordersCancelled prometheus.Counter
	ordersDeleted   prometheus.Counter
}

// NewMetrics creates and registers the engine metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "baketalks_turns_total",
				Help: "Total conversation turns handled, by resulting stage",
			},
			[]string{"stage"},
		),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baketalks_orders_placed_total",
			Help: "Orders confirmed and persisted",
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baketalks_orders_abandoned_total",
			Help: "Orders abandoned at the confirmation stage",
		}),
		ordersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "baketalks_orders_deleted_total",
			Help: "Persisted orders removed via the cancellation flow",
		}),
	}
	reg.MustRegister(m.turns, m.ordersPlaced, m.ordersCancelled, m.ordersDeleted)
	return m
}

func (m *Metrics) observe(stage domain.Stage, effect domain.SideEffect) {
	m.turns.WithLabelValues(string(stage)).Inc()
	switch effect.Kind {
	case domain.EffectPersistOrder:
		m.ordersPlaced.Inc()
	case domain.EffectCancelOrder:
		if effect.Deleted {
			m.ordersDeleted.Inc()
		} else {
			m.ordersCancelled.Inc()
		}
	}
}
