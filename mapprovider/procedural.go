package mapprovider

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/grid"
)

// maxAttempts bounds procedural regeneration.
const maxAttempts = 1000

// defaultWallProb is the wall density used when WallProb is left at zero.
const defaultWallProb = 0.08

// ProceduralProvider writes a base at the grid centre, scatters clients and
// stations on uniformly random free cells, then marks remaining free cells
// as walls with probability WallProb, retrying the whole layout up to
// maxAttempts times until every client and station is reachable from base.
type ProceduralProvider struct {
	WallProb float64
	Logger   *zap.Logger
}

// NewProceduralProvider constructs a ProceduralProvider with the default
// wall density. logger may be nil (a no-op logger is substituted).
func NewProceduralProvider(logger *zap.Logger) *ProceduralProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProceduralProvider{WallProb: defaultWallProb, Logger: logger}
}

func (p *ProceduralProvider) Generate(cfg config.Config, rng *rand.Rand) (Result, error) {
	wallProb := p.WallProb
	if wallProb == 0 {
		wallProb = defaultWallProb
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, ok := p.attempt(cfg, rng, wallProb)
		if ok {
			return res, nil
		}
		logger.Debug("mapprovider: procedural layout failed validation, retrying",
			zap.Int("attempt", attempt))
	}
	return Result{}, fmt.Errorf("mapprovider: %w: %d attempts", ErrMapGenExhausted, maxAttempts)
}

func (p *ProceduralProvider) attempt(cfg config.Config, rng *rand.Rand, wallProb float64) (Result, bool) {
	cells := make([][]grid.Cell, cfg.Rows)
	for x := range cells {
		cells[x] = make([]grid.Cell, cfg.Cols)
		for y := range cells[x] {
			cells[x][y] = grid.Open
		}
	}

	base := grid.Point{X: cfg.Rows / 2, Y: cfg.Cols / 2}
	cells[base.X][base.Y] = grid.Base

	clients := make([]grid.Point, 0, cfg.ClientsCount)
	for i := 0; i < cfg.ClientsCount; i++ {
		pt, ok := randomFreeCell(cells, rng)
		if !ok {
			return Result{}, false
		}
		cells[pt.X][pt.Y] = grid.Client
		clients = append(clients, pt)
	}

	stations := make([]grid.Point, 0, cfg.MaxStations)
	for i := 0; i < cfg.MaxStations; i++ {
		pt, ok := randomFreeCell(cells, rng)
		if !ok {
			return Result{}, false
		}
		cells[pt.X][pt.Y] = grid.Station
		stations = append(stations, pt)
	}

	for x := range cells {
		for y := range cells[x] {
			if cells[x][y] == grid.Open && rng.Float64() < wallProb {
				cells[x][y] = grid.Wall
			}
		}
	}

	g, err := grid.New(cells)
	if err != nil {
		return Result{}, false
	}
	if !allReachable(g, base, clients, stations) {
		return Result{}, false
	}
	return Result{Grid: g, BasePos: base, Clients: clients, Stations: stations}, true
}

// randomFreeCell draws uniform random coordinates until it lands on an Open
// cell, bounding the search so a nearly-full grid fails the attempt instead
// of looping forever.
func randomFreeCell(cells [][]grid.Cell, rng *rand.Rand) (grid.Point, bool) {
	rows := len(cells)
	cols := len(cells[0])
	limit := rows*cols*4 + 16
	for i := 0; i < limit; i++ {
		x := rng.Intn(rows)
		y := rng.Intn(cols)
		if cells[x][y] == grid.Open {
			return grid.Point{X: x, Y: y}, true
		}
	}
	return grid.Point{}, false
}
