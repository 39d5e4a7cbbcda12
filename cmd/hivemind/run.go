package main

import (
	"fmt"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/config"
	"github.com/hivemind-sim/hivemind/dispatcher"
	"github.com/hivemind-sim/hivemind/mapprovider"
	"github.com/hivemind-sim/hivemind/render"
)

// runSimulation wires config -> map provider -> engine -> render loop ->
// report, in that fixed order.
func runSimulation(f *flags) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("hivemind: logger init: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Default()
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
		if err != nil {
			return err
		}
	}
	if f.mapPath != "" {
		cfg.MapFile = f.mapPath
	}

	provider := selectProvider(cfg, logger)

	seedRng := rand.New(rand.NewSource(seedOrDefault(f.seed)))
	result, err := provider.Generate(cfg, seedRng)
	if err != nil {
		return fmt.Errorf("hivemind: map generation: %w", err)
	}

	engine := dispatcher.New(cfg, result, f.seed, logger)

	var renderer *render.Renderer
	if !f.quiet {
		renderer = render.New(os.Stdout, cfg.DisplayDelayMs)
	}

	for !engine.Done() {
		engine.Step()
		if renderer != nil {
			renderer.Render(engine.Grid(), engine.Couriers(), buildStats(engine))
		}
	}

	if reason := engine.TerminationReason(); reason != "" {
		logger.Warn("hivemind: simulation ended early", zap.String("reason", reason))
	}

	report := engine.Report()
	fmt.Print(report.String())
	if err := report.WriteFile(f.reportPath); err != nil {
		return fmt.Errorf("hivemind: writing report: %w", err)
	}

	engine.Metrics().Observe(report)
	if text, err := engine.Metrics().Gather(); err == nil {
		logger.Info("hivemind: metrics snapshot", zap.String("metrics", text))
	}

	return nil
}

// selectProvider picks the file-backed provider when a map path is
// configured, otherwise the procedural generator.
func selectProvider(cfg config.Config, logger *zap.Logger) mapprovider.Provider {
	if cfg.MapFile != "" {
		return mapprovider.NewFileProvider(cfg.MapFile, logger)
	}
	return mapprovider.NewProceduralProvider(logger)
}

// seedOrDefault mirrors dispatcher.rngFromSeed's own default so the map
// provider and the engine draw from seeds that agree when the user leaves
// -seed unset.
func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}

func buildStats(e *dispatcher.Engine) render.Stats {
	carrying := 0
	active := 0
	for _, c := range e.Couriers() {
		if c.Dead() {
			continue
		}
		active++
		carrying += len(c.Packages())
	}
	delivered := 0
	for _, p := range e.Packages() {
		if p.Delivered() {
			delivered++
		}
	}
	return render.Stats{
		Tick:         e.CurrentTick(),
		MaxTicks:     e.Config().MaxTicks,
		Delivered:    delivered,
		Waiting:      len(e.Waiting()),
		Active:       active,
		Carrying:     carrying,
		Profit:       e.Report().Profit,
		TotalSpawned: len(e.Couriers()),
	}
}
