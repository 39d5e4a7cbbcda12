package accounting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

func TestBuildComputesProfitIdentity(t *testing.T) {
	onTime := parcel.New(1, grid.Point{X: 1, Y: 1}, 500, 100)
	onTime.MarkDelivered(50)

	late := parcel.New(2, grid.Point{X: 2, Y: 2}, 300, 10)
	late.MarkDelivered(20)

	lost := parcel.New(3, grid.Point{X: 3, Y: 3}, 400, 5)

	r := Build([]*parcel.Parcel{onTime, late, lost}, 75, 2)

	require.Equal(t, 2, r.Delivered)
	require.Equal(t, 1, r.Delayed)
	require.Equal(t, 1, r.Lost)
	require.Equal(t, 75, r.OperatingCost)
	require.Equal(t, 2, r.DeadAgents)

	wantProfit := 500 + 300 - lateDeliveryPenalty - lostPackagePenalty - 75 - 2*deadAgentPenalty
	require.Equal(t, wantProfit, r.Profit)
}

func TestBuildAllLostIsAllNegative(t *testing.T) {
	p := parcel.New(1, grid.Point{X: 0, Y: 0}, 500, 100)
	r := Build([]*parcel.Parcel{p}, 0, 0)
	require.Equal(t, 0, r.Delivered)
	require.Equal(t, 1, r.Lost)
	require.Equal(t, -lostPackagePenalty, r.Profit)
}

func TestReportStringMatchesFixedFormat(t *testing.T) {
	r := Report{Delivered: 1, Delayed: 2, Lost: 3, OperatingCost: 4, DeadAgents: 5, Profit: 6}
	want := "Delivered: 1\nDelayed: 2\nLost: 3\nOperating cost: 4\nDead agents: 5\nProfit: 6\n"
	require.Equal(t, want, r.String())
}
