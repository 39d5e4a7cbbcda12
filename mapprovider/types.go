package mapprovider

import (
	"math/rand"

	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/grid"
)

// Result is everything a Provider produces for one simulation run.
type Result struct {
	Grid     *grid.Grid
	BasePos  grid.Point
	Clients  []grid.Point
	Stations []grid.Point
}

// Provider populates (grid, base, clients, stations) given cfg and the
// engine's single RNG stream.
type Provider interface {
	Generate(cfg config.Config, rng *rand.Rand) (Result, error)
}

// allReachable reports whether every client and station is reachable from
// base via 4-connected non-wall moves.
func allReachable(g *grid.Grid, base grid.Point, clients, stations []grid.Point) bool {
	for _, c := range clients {
		if g.Distance(base, c, false) == grid.Unreachable {
			return false
		}
	}
	for _, s := range stations {
		if g.Distance(base, s, false) == grid.Unreachable {
			return false
		}
	}
	return true
}
