package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/mapprovider"
	"github.com/hivemind-sim/hivemind/parcel"
)

func smallMap(t *testing.T) (*grid.Grid, grid.Point, grid.Point) {
	t.Helper()
	cells := [][]grid.Cell{
		{grid.Base, grid.Open, grid.Open, grid.Open},
		{grid.Open, grid.Open, grid.Client, grid.Open},
		{grid.Open, grid.Open, grid.Open, grid.Open},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	return g, grid.Point{X: 0, Y: 0}, grid.Point{X: 1, Y: 2}
}

func TestSingleDroneSinglePackageAssignment(t *testing.T) {
	g, base, client := smallMap(t)
	cfg := config.Config{Drones: 1, TotalPackages: 1, SpawnFrequency: 1, MaxTicks: 20}
	res := mapprovider.Result{Grid: g, BasePos: base, Clients: []grid.Point{client}}

	e := New(cfg, res, 1, zap.NewNop())
	require.Len(t, e.Couriers(), 1)
	require.Equal(t, courier.Drone, e.Couriers()[0].Kind())

	// Spawn and dispatch only: a full Step would also move the drone, and at
	// speed 3 it reaches the client 3 cells away and delivers in that tick.
	e.spawnPackagesIfNeeded()
	e.adaptiveSpawn()
	e.runAssignment()

	require.Empty(t, e.Waiting())
	require.Len(t, e.Couriers()[0].Packages(), 1)
}

func TestBatteryDeathAfterForcedAssignment(t *testing.T) {
	cells := [][]grid.Cell{
		{grid.Base, grid.Client},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)
	cfg := config.Config{Drones: 1, TotalPackages: 1, SpawnFrequency: 1, MaxTicks: 20}
	res := mapprovider.Result{Grid: g, BasePos: grid.Point{X: 0, Y: 0}, Clients: []grid.Point{{X: 0, Y: 1}}}

	e := New(cfg, res, 1, zap.NewNop())
	drone := e.Couriers()[0]
	// Drain the drone's battery to exactly its per-tick consumption.
	for drone.Battery() > drone.Consumption() {
		drone.ApplyMove(drone.Position())
	}
	require.Equal(t, drone.Consumption(), drone.Battery())

	e.Step()

	require.True(t, drone.Dead())
	require.Equal(t, 1, e.DeadAgents())
}

func TestAdaptiveSpawnRespectsCooldownAndPriority(t *testing.T) {
	g, base, client := smallMap(t)
	cfg := config.Config{Drones: 1, Robots: 3, Scooters: 0, TotalPackages: 0}
	res := mapprovider.Result{Grid: g, BasePos: base, Clients: []grid.Point{client}}

	e := New(cfg, res, 1, zap.NewNop())
	require.Len(t, e.couriers, 1) // initial spawn: one drone (priority order)

	e.waiting = make([]*parcel.Parcel, waitingSpawnThreshold)
	for i := range e.waiting {
		e.waiting[i] = parcel.New(parcel.ID(i), client, 500, 1000)
	}
	e.currentTick = spawnCooldownTicks

	e.adaptiveSpawn()
	require.Len(t, e.couriers, 2)
	require.Equal(t, courier.Robot, e.couriers[1].Kind())

	// Cooldown has not elapsed again: a second call must not spawn a third.
	e.adaptiveSpawn()
	require.Len(t, e.couriers, 2)
}

func TestSpawnFrequencyNonPositiveNeverSpawnsPackages(t *testing.T) {
	g, base, client := smallMap(t)
	cfg := config.Config{Drones: 1, TotalPackages: 10, SpawnFrequency: 0, MaxTicks: 5}
	res := mapprovider.Result{Grid: g, BasePos: base, Clients: []grid.Point{client}}

	e := New(cfg, res, 1, zap.NewNop())
	for !e.Done() {
		e.Step()
	}
	require.Zero(t, e.SpawnedPackages())
	require.Empty(t, e.Packages())
}

func TestZeroCouriersStepCompletesWithoutDelivery(t *testing.T) {
	g, base, client := smallMap(t)
	cfg := config.Config{TotalPackages: 1, SpawnFrequency: 1, MaxTicks: 3}
	res := mapprovider.Result{Grid: g, BasePos: base, Clients: []grid.Point{client}}

	e := New(cfg, res, 1, zap.NewNop())
	require.Empty(t, e.Couriers())

	e.Step()

	require.Len(t, e.Waiting(), 1)
	require.Zero(t, e.DeadAgents())
}

func TestDoneOnTickLimit(t *testing.T) {
	g, base, client := smallMap(t)
	// SpawnFrequency <= 0 means spawnedPackages never reaches TotalPackages,
	// so Done() can only be driven by the tick limit here.
	cfg := config.Config{TotalPackages: 1, SpawnFrequency: 0, MaxTicks: 2}
	res := mapprovider.Result{Grid: g, BasePos: base, Clients: []grid.Point{client}}

	e := New(cfg, res, 1, zap.NewNop())
	require.False(t, e.Done())
	e.Step()
	require.False(t, e.Done())
	e.Step()
	require.True(t, e.Done())
}

func TestReportProfitIdentityAfterRun(t *testing.T) {
	g, base, client := smallMap(t)
	cfg := config.Config{Drones: 1, TotalPackages: 1, SpawnFrequency: 1, MaxTicks: 20}
	res := mapprovider.Result{Grid: g, BasePos: base, Clients: []grid.Point{client}}

	e := New(cfg, res, 1, zap.NewNop())
	for !e.Done() {
		e.Step()
	}

	r := e.Report()
	wantProfit := 0
	for _, p := range e.Packages() {
		if p.Delivered() {
			wantProfit += p.Reward()
			if p.DeliveredAt() > p.Deadline() {
				wantProfit -= 50
			}
		} else {
			wantProfit -= 200
		}
	}
	wantProfit -= e.OperatingCostTotal()
	wantProfit -= 500 * e.DeadAgents()
	require.Equal(t, wantProfit, r.Profit)
}
