package accounting

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics is an in-process Prometheus registry tracking the simulation's
// running economic state. It is never served over HTTP — gathering it to
// text for the diagnostic log is the only consumer, honoring the
// no-network-operation non-goal while still giving the registry real work.
type Metrics struct {
	registry      *prometheus.Registry
	profit        prometheus.Gauge
	operatingCost prometheus.Gauge
	delayed       prometheus.Counter
	lost          prometheus.Counter
	deadAgents    prometheus.Counter
}

// NewMetrics constructs and registers a fresh metric set.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		profit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hivemind_profit", Help: "Running estimated profit.",
		}),
		operatingCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hivemind_operating_cost_total", Help: "Accrued operating cost.",
		}),
		delayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivemind_delayed_deliveries_total", Help: "Deliveries completed after their deadline.",
		}),
		lost: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivemind_lost_packages_total", Help: "Packages never delivered.",
		}),
		deadAgents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hivemind_dead_agents_total", Help: "Couriers retired by battery exhaustion.",
		}),
	}
	reg.MustRegister(m.profit, m.operatingCost, m.delayed, m.lost, m.deadAgents)
	return m
}

// SetOperatingCost records the dispatcher's current operatingCostTotal.
func (m *Metrics) SetOperatingCost(total int) {
	m.operatingCost.Set(float64(total))
}

// IncDeadAgent records one courier retiring by battery exhaustion.
func (m *Metrics) IncDeadAgent() {
	m.deadAgents.Inc()
}

// IncDelivery counts a delivery in the delayed-deliveries counter when it
// was late; an on-time delivery changes no metric.
func (m *Metrics) IncDelivery(late bool) {
	if late {
		m.delayed.Inc()
	}
}

// Observe records the final report's profit and lost-package count.
func (m *Metrics) Observe(r Report) {
	m.profit.Set(float64(r.Profit))
	m.lost.Add(float64(r.Lost))
}

// Gather renders every registered metric family as Prometheus text
// exposition format, for appending to a diagnostic log at shutdown.
func (m *Metrics) Gather() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
