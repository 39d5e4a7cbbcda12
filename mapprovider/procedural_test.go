package mapprovider

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/grid"
)

func TestProceduralProviderProducesReachableMap(t *testing.T) {
	cfg := config.Config{Rows: 12, Cols: 12, ClientsCount: 5, MaxStations: 2}
	p := NewProceduralProvider(zap.NewNop())
	rng := rand.New(rand.NewSource(1))

	res, err := p.Generate(cfg, rng)
	require.NoError(t, err)
	require.Equal(t, grid.Base, res.Grid.At(res.BasePos))
	require.Len(t, res.Clients, 5)
	require.Len(t, res.Stations, 2)
	for _, c := range res.Clients {
		require.NotEqual(t, grid.Unreachable, res.Grid.Distance(res.BasePos, c, false))
	}
	for _, s := range res.Stations {
		require.NotEqual(t, grid.Unreachable, res.Grid.Distance(res.BasePos, s, false))
	}
}

func TestProceduralProviderIsDeterministicForFixedSeed(t *testing.T) {
	cfg := config.Config{Rows: 10, Cols: 10, ClientsCount: 3, MaxStations: 1}
	p := NewProceduralProvider(zap.NewNop())

	resA, err := p.Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	resB, err := p.Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, resA.BasePos, resB.BasePos)
	require.Equal(t, resA.Clients, resB.Clients)
	require.Equal(t, resA.Stations, resB.Stations)
}

func TestProceduralProviderExhaustsOnImpossibleDensity(t *testing.T) {
	cfg := config.Config{Rows: 3, Cols: 3, ClientsCount: 50, MaxStations: 50}
	p := NewProceduralProvider(zap.NewNop())
	rng := rand.New(rand.NewSource(1))

	_, err := p.Generate(cfg, rng)
	require.ErrorIs(t, err, ErrMapGenExhausted)
}
