package dispatcher

import (
	"github.com/hivemind-sim/hivemind/accounting"
	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

// Config returns the effective configuration (post map-provider resize).
func (e *Engine) Config() config.Config { return e.cfg }

// Grid returns the engine's grid. Callers must treat it as read-only.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// BasePos returns the base cell.
func (e *Engine) BasePos() grid.Point { return e.basePos }

// Couriers returns the full courier roster, live and dead, in spawn order.
func (e *Engine) Couriers() []*courier.Courier { return e.couriers }

// Packages returns every package ever spawned, in spawn order.
func (e *Engine) Packages() []*parcel.Parcel { return e.packages }

// Waiting returns the current waiting pool.
func (e *Engine) Waiting() []*parcel.Parcel { return e.waiting }

// CurrentTick returns the simulation clock.
func (e *Engine) CurrentTick() int { return e.currentTick }

// SpawnedPackages returns the count of packages spawned so far.
func (e *Engine) SpawnedPackages() int { return e.spawnedPackages }

// OperatingCostTotal returns the accrued operating cost.
func (e *Engine) OperatingCostTotal() int { return e.operatingCostTotal }

// DeadAgents returns the count of couriers retired by battery exhaustion.
func (e *Engine) DeadAgents() int { return e.deadAgents }

// Terminated reports whether a forced-assignment concession ended the
// simulation early, as opposed to reaching the tick limit or full delivery.
func (e *Engine) Terminated() bool { return e.terminated }

// TerminationReason describes why Terminated is true; empty otherwise.
func (e *Engine) TerminationReason() string { return e.terminationReason }

// Metrics returns the engine's in-process metrics registry.
func (e *Engine) Metrics() *accounting.Metrics { return e.metrics }

// Report builds the final accounting summary from current state.
func (e *Engine) Report() accounting.Report {
	return accounting.Build(e.packages, e.operatingCostTotal, e.deadAgents)
}
