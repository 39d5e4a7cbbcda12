package accounting

import (
	"fmt"
	"os"

	"github.com/hivemind-sim/hivemind/parcel"
)

// Penalty constants from the profit identity.
const (
	lateDeliveryPenalty = 50
	lostPackagePenalty  = 200
	deadAgentPenalty    = 500
)

// Report is the fixed six-field economic summary.
type Report struct {
	Delivered     int
	Delayed       int
	Lost          int
	OperatingCost int
	DeadAgents    int
	Profit        int
}

// Build computes the final report from every package the simulation ever
// spawned, plus the accrued operating cost and dead-agent count. It
// implements the profit identity verbatim:
//
//	profit = Σ(delivered ? reward : 0) − 50·delayed − 200·lost
//	         − operatingCostTotal − 500·deadAgents
func Build(packages []*parcel.Parcel, operatingCostTotal, deadAgents int) Report {
	r := Report{OperatingCost: operatingCostTotal, DeadAgents: deadAgents}
	profit := 0
	for _, p := range packages {
		if !p.Delivered() {
			r.Lost++
			profit -= lostPackagePenalty
			continue
		}
		r.Delivered++
		profit += p.Reward()
		if p.DeliveredAt() > p.Deadline() {
			r.Delayed++
			profit -= lateDeliveryPenalty
		}
	}
	profit -= operatingCostTotal
	profit -= deadAgentPenalty * deadAgents
	r.Profit = profit
	return r
}

// String renders the fixed six-line report text, in field order.
func (r Report) String() string {
	return fmt.Sprintf(
		"Delivered: %d\nDelayed: %d\nLost: %d\nOperating cost: %d\nDead agents: %d\nProfit: %d\n",
		r.Delivered, r.Delayed, r.Lost, r.OperatingCost, r.DeadAgents, r.Profit)
}

// WriteFile writes the report text to path.
func (r Report) WriteFile(path string) error {
	return os.WriteFile(path, []byte(r.String()), 0o644)
}
