package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads path and returns Default() with every recognised key
// overridden. Unknown keys and malformed value tokens are ignored, matching
// the original loader's leniency; only a failure to open the file is fatal.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w: %s", ErrOpenFailure, path)
	}
	defer f.Close()

	cfg := Default()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		key, values := fields[0], fields[1:]
		applyKey(&cfg, key, values)
	}
	return cfg, nil
}

func applyKey(cfg *Config, key string, values []string) {
	switch key {
	case "MAP_SIZE:":
		if len(values) < 2 {
			return
		}
		if v, ok := atoi(values[0]); ok {
			cfg.Rows = v
		}
		if v, ok := atoi(values[1]); ok {
			cfg.Cols = v
		}
	case "MAX_TICKS:":
		setInt(&cfg.MaxTicks, values)
	case "MAX_STATIONS:":
		setInt(&cfg.MaxStations, values)
	case "CLIENTS_COUNT:":
		setInt(&cfg.ClientsCount, values)
	case "DRONES:":
		setInt(&cfg.Drones, values)
	case "ROBOTS:":
		setInt(&cfg.Robots, values)
	case "SCOOTERS:":
		setInt(&cfg.Scooters, values)
	case "TOTAL_PACKAGES:":
		setInt(&cfg.TotalPackages, values)
	case "SPAWN_FREQUENCY:":
		setInt(&cfg.SpawnFrequency, values)
	case "DISPLAY_DELAY_MS:":
		setInt(&cfg.DisplayDelayMs, values)
	case "MAP_FILE:":
		if len(values) >= 1 {
			cfg.MapFile = values[0]
		}
	}
}

func setInt(dst *int, values []string) {
	if len(values) < 1 {
		return
	}
	if v, ok := atoi(values[0]); ok {
		*dst = v
	}
}

func atoi(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
