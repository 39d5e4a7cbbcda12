package dispatcher

import (
	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/assignment"
	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
)

// Step performs one tick in the exact fixed order: spawn packages,
// adaptively spawn a courier, run the assignment solver, move and act every
// live courier, then advance the clock.
func (e *Engine) Step() {
	e.spawnPackagesIfNeeded()
	e.adaptiveSpawn()
	e.runAssignment()
	e.moveAndAct()
	e.currentTick++
}

func (e *Engine) runAssignment() {
	out := assignment.Assign(assignment.Params{
		Grid:            e.grid,
		BasePos:         e.basePos,
		Waiting:         e.waiting,
		Couriers:        e.couriers,
		CurrentTick:     e.currentTick,
		SpawnedPackages: e.spawnedPackages,
		TotalPackages:   e.cfg.TotalPackages,
		Logger:          e.logger,
	})
	e.waiting = out.Waiting
	if out.Terminated && !e.terminated {
		e.terminated = true
		e.terminationReason = "forced assignment conceded: a waiting parcel is unreachable by any courier"
		e.logger.Warn("dispatcher: simulation terminated", zap.String("reason", e.terminationReason))
	}
}

// moveAndAct runs the per-tick move-and-act phase for every courier in
// insertion order: accrue operating cost, advance toward the carried
// package's destination or back to base, recharge on S/B cells, and kill on
// off-support battery exhaustion.
func (e *Engine) moveAndAct() {
	for _, c := range e.couriers {
		if c.Dead() {
			continue
		}
		e.operatingCostTotal += c.Cost()

		switch {
		case len(c.Packages()) > 0:
			pkg := c.Packages()[0]
			target := pkg.Destination()
			e.advanceToward(c, target)
			if c.Position() == target {
				pkg.MarkDelivered(e.currentTick)
				c.RemovePackage(pkg)
				e.metrics.IncDelivery(pkg.DeliveredAt() > pkg.Deadline())
			}
		case c.Position() != e.basePos:
			e.advanceToward(c, e.basePos)
		default:
			c.Recharge(c.MaxBattery() / 4)
		}

		if cell := e.grid.At(c.Position()); cell == grid.Station || cell == grid.Base {
			c.Recharge(c.MaxBattery() / 4)
		}

		if c.Battery() == 0 {
			cell := e.grid.At(c.Position())
			if cell != grid.Station && cell != grid.Base {
				c.Kill()
				e.deadAgents++
				e.metrics.IncDeadAgent()
				e.logger.Info("dispatcher: courier died", zap.Int("id", int(c.ID())))
			}
		}
	}
	e.metrics.SetOperatingCost(e.operatingCostTotal)
}

// advanceToward applies a single move toward target: the cell at index
// min(len(path), speed)-1 of the shortest path, with a single
// consumption-tick battery debit.
func (e *Engine) advanceToward(c *courier.Courier, target grid.Point) {
	path := e.grid.FindPath(c.Position(), target, c.CanFly())
	if len(path) == 0 {
		return
	}
	idx := c.Speed()
	if idx > len(path) {
		idx = len(path)
	}
	if idx <= 0 {
		return
	}
	c.ApplyMove(path[idx-1])
}

// Done reports whether the simulation has reached a terminal state: the
// tick limit, full delivery of every spawned package once the whole
// workload has spawned, or a forced-assignment concession.
func (e *Engine) Done() bool {
	if e.terminated {
		return true
	}
	if e.currentTick >= e.cfg.MaxTicks {
		return true
	}
	return e.spawnedPackages == e.cfg.TotalPackages && e.allDelivered()
}

func (e *Engine) allDelivered() bool {
	for _, p := range e.packages {
		if !p.Delivered() {
			return false
		}
	}
	return true
}
