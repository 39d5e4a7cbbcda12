package mapprovider

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/grid"
)

// FileProvider loads a rectangular (or right-padded) ASCII grid from Path.
// CRLF endings are tolerated. A single failed reachability validation is
// fatal; there is no retry.
type FileProvider struct {
	Path   string
	Logger *zap.Logger
}

// NewFileProvider constructs a FileProvider for path. logger may be nil (a
// no-op logger is substituted).
func NewFileProvider(path string, logger *zap.Logger) *FileProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileProvider{Path: path, Logger: logger}
}

func (p *FileProvider) Generate(_ config.Config, _ *rand.Rand) (Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrMapOpenFailure, p.Path)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Result{}, fmt.Errorf("%w: empty map file %s", ErrMapInvalid, p.Path)
	}

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}

	cells := make([][]grid.Cell, len(lines))
	for i, l := range lines {
		row := make([]grid.Cell, maxLen)
		for j := 0; j < maxLen; j++ {
			if j < len(l) {
				row[j] = grid.Cell(l[j])
			} else {
				row[j] = grid.Open
			}
		}
		cells[i] = row
	}

	var (
		base              grid.Point
		foundBase         bool
		clients, stations []grid.Point
	)
	for x := range cells {
		for y := range cells[x] {
			switch cells[x][y] {
			case grid.Base:
				base, foundBase = grid.Point{X: x, Y: y}, true
			case grid.Client:
				clients = append(clients, grid.Point{X: x, Y: y})
			case grid.Station:
				stations = append(stations, grid.Point{X: x, Y: y})
			}
		}
	}

	if !foundBase {
		base = grid.Point{X: len(cells) / 2, Y: maxLen / 2}
		cells[base.X][base.Y] = grid.Base
		logger.Warn("mapprovider: file map has no base, placing at center",
			zap.Int("x", base.X), zap.Int("y", base.Y))
	}

	g, err := grid.New(cells)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrMapInvalid, err)
	}
	if !allReachable(g, base, clients, stations) {
		return Result{}, fmt.Errorf("%w: a client or station is unreachable from base", ErrMapInvalid)
	}

	logger.Info("mapprovider: loaded map file",
		zap.String("path", p.Path), zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()),
		zap.Int("clients", len(clients)), zap.Int("stations", len(stations)))

	return Result{Grid: g, BasePos: base, Clients: clients, Stations: stations}, nil
}
