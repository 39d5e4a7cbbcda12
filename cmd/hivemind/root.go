package main

import (
	"github.com/spf13/cobra"
)

// flags holds every command-line override. An empty configPath means "use
// the built-in default"; an empty mapPath leaves the config's MAP_FILE in
// effect, and the procedural generator runs only when that is empty too.
type flags struct {
	configPath string
	mapPath    string
	seed       int64
	reportPath string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "hivemind",
		Short: "Run the HiveMind delivery-fleet simulation",
		Long: "hivemind runs a discrete-time delivery-fleet simulation to completion,\n" +
			"dispatching couriers against spawning packages, and writes a final\n" +
			"profit-and-loss report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(f)
		},
	}

	flagSet := cmd.Flags()
	flagSet.StringVar(&f.configPath, "config", "", "path to a config file (defaults built in if omitted)")
	flagSet.StringVar(&f.mapPath, "map", "", "path to an ASCII map file, overriding MAP_FILE (procedural generation if neither is set)")
	flagSet.Int64Var(&f.seed, "seed", 0, "deterministic RNG seed (0 selects the default stream)")
	flagSet.StringVar(&f.reportPath, "report", "simulation.txt", "path to write the final report")
	flagSet.BoolVar(&f.quiet, "quiet", false, "suppress the per-tick rendered frame")

	return cmd
}
