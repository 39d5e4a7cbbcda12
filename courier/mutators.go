package courier

import (
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

// AssignPackage appends p to the carried list if capacity allows.
// Returns false without mutating state when the courier is already at
// capacity.
func (c *Courier) AssignPackage(p *parcel.Parcel) bool {
	if !c.HasFreeCapacity() {
		return false
	}
	c.carried = append(c.carried, p)
	return true
}

// RemovePackage removes the first carried parcel matching p by identity.
// It is a no-op if p is not carried.
func (c *Courier) RemovePackage(p *parcel.Parcel) {
	for i, cp := range c.carried {
		if cp == p {
			c.carried = append(c.carried[:i], c.carried[i+1:]...)
			return
		}
	}
}

// ApplyMove sets the courier's position to newPos and decrements battery by
// Consumption(), clamped at 0. The caller is responsible for ensuring newPos
// is reachable within Speed() moves of the previous position; ApplyMove
// does not itself plan or validate the path.
func (c *Courier) ApplyMove(newPos grid.Point) {
	c.pos = newPos
	c.battery -= c.consume
	if c.battery < 0 {
		c.battery = 0
	}
}

// Recharge adds amount to battery, clamped at MaxBattery().
func (c *Courier) Recharge(amount int) {
	c.battery += amount
	if c.battery > c.maxBat {
		c.battery = c.maxBat
	}
}

// Kill retires the courier: dead becomes true, speed and battery drop to
// zero. Idempotent.
func (c *Courier) Kill() {
	if c.dead {
		return
	}
	c.dead = true
	c.speed = 0
	c.battery = 0
}
