package dispatcher

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/accounting"
	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/mapprovider"
	"github.com/hivemind-sim/hivemind/parcel"
)

// Adaptive spawner constants.
const (
	waitingSpawnThreshold = 4
	spawnCooldownTicks    = 5
)

// Engine owns every piece of live simulation state: the grid, the full
// courier roster, every package ever spawned, the waiting pool, and the
// accounting accumulators. The waiting pool and courier carry lists are
// mutated only here.
type Engine struct {
	cfg config.Config

	grid     *grid.Grid
	basePos  grid.Point
	clients  []grid.Point
	stations []grid.Point

	couriers []*courier.Courier
	packages []*parcel.Parcel
	waiting  []*parcel.Parcel

	currentTick        int
	spawnedPackages    int
	operatingCostTotal int
	deadAgents         int

	terminated        bool
	terminationReason string

	nextCourierID                              courier.ID
	activeDrones, activeRobots, activeScooters int
	lastSpawnTick                              int

	rng     *rand.Rand
	logger  *zap.Logger
	metrics *accounting.Metrics
}

// New constructs an Engine from a validated map result and config, spawning
// exactly one initial courier at the base. seed==0 uses the default
// deterministic stream.
func New(cfg config.Config, mapResult mapprovider.Result, seed int64, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	// The map provider is authoritative on actual dimensions/counts: a
	// file-loaded map may have resized the config.
	cfg.Rows = mapResult.Grid.Rows()
	cfg.Cols = mapResult.Grid.Cols()
	cfg.ClientsCount = len(mapResult.Clients)
	cfg.MaxStations = len(mapResult.Stations)

	e := &Engine{
		cfg:      cfg,
		grid:     mapResult.Grid,
		basePos:  mapResult.BasePos,
		clients:  mapResult.Clients,
		stations: mapResult.Stations,
		rng:      rngFromSeed(seed),
		logger:   logger,
		metrics:  accounting.NewMetrics(),
	}

	if kind, ok := e.nextSpawnableKind(); ok {
		e.spawnCourier(kind)
	}
	return e
}

// Reseed replaces the engine's RNG stream. Test-only.
func (e *Engine) Reseed(seed int64) {
	e.rng = rngFromSeed(seed)
}
