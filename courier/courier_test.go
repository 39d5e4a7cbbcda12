package courier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

func TestKindTable(t *testing.T) {
	cases := []struct {
		kind                                     Kind
		speed, maxBat, consume, cost, cap         int
		canFly                                    bool
	}{
		{Drone, 3, 100, 10, 15, 1, true},
		{Robot, 1, 300, 2, 1, 4, false},
		{Scooter, 2, 200, 5, 4, 2, false},
	}
	for _, tc := range cases {
		c := New(1, tc.kind, grid.Point{})
		assert.Equal(t, tc.speed, c.Speed())
		assert.Equal(t, tc.maxBat, c.MaxBattery())
		assert.Equal(t, tc.consume, c.Consumption())
		assert.Equal(t, tc.cost, c.Cost())
		assert.Equal(t, tc.cap, c.Capacity())
		assert.Equal(t, tc.canFly, c.CanFly())
		assert.Equal(t, tc.maxBat, c.Battery(), "spawns fully charged")
	}
}

func TestAssignPackageRespectsCapacity(t *testing.T) {
	c := New(1, Drone, grid.Point{})
	p1 := parcel.New(1, grid.Point{1, 1}, 300, 10)
	p2 := parcel.New(2, grid.Point{2, 2}, 300, 10)

	require.True(t, c.AssignPackage(p1))
	assert.False(t, c.HasFreeCapacity())
	assert.False(t, c.AssignPackage(p2), "drone capacity is 1")
	assert.Len(t, c.Packages(), 1)
}

func TestRemovePackage(t *testing.T) {
	c := New(1, Robot, grid.Point{})
	p1 := parcel.New(1, grid.Point{1, 1}, 300, 10)
	p2 := parcel.New(2, grid.Point{2, 2}, 300, 10)
	require.True(t, c.AssignPackage(p1))
	require.True(t, c.AssignPackage(p2))

	c.RemovePackage(p1)
	assert.Len(t, c.Packages(), 1)
	assert.Equal(t, p2, c.Packages()[0])

	c.RemovePackage(p1) // no-op, already removed
	assert.Len(t, c.Packages(), 1)
}

func TestApplyMoveConsumesBatteryClampedAtZero(t *testing.T) {
	c := New(1, Drone, grid.Point{0, 0})
	c.battery = 5
	c.ApplyMove(grid.Point{1, 0})
	assert.Equal(t, grid.Point{1, 0}, c.Position())
	assert.Equal(t, 0, c.Battery(), "consumption exceeds remaining battery, clamp at 0")
}

func TestRechargeClampsAtMax(t *testing.T) {
	c := New(1, Scooter, grid.Point{})
	c.battery = 0
	c.Recharge(10_000)
	assert.Equal(t, c.MaxBattery(), c.Battery())
}

func TestKillIsIdempotentAndZeroesSpeedAndBattery(t *testing.T) {
	c := New(1, Robot, grid.Point{})
	c.Kill()
	assert.True(t, c.Dead())
	assert.Equal(t, 0, c.Speed())
	assert.Equal(t, 0, c.Battery())

	c.Recharge(100) // dead couriers still accept field writes but stay dead
	c.Kill()         // idempotent
	assert.True(t, c.Dead())
}

func TestUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(1, Kind(99), grid.Point{})
	})
}
