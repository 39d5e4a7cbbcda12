package config

// Config holds every tunable the simulation reads at start-up.
// Field defaults are sane values a missing key can safely fall back to.
type Config struct {
	Rows           int
	Cols           int
	MaxTicks       int
	MaxStations    int
	ClientsCount   int
	Drones         int
	Robots         int
	Scooters       int
	TotalPackages  int
	SpawnFrequency int
	DisplayDelayMs int
	MapFile        string
}

// Default returns the configuration used when no file overrides a field.
func Default() Config {
	return Config{
		Rows:           20,
		Cols:           20,
		MaxTicks:       1000,
		MaxStations:    3,
		ClientsCount:   10,
		Drones:         3,
		Robots:         2,
		Scooters:       1,
		TotalPackages:  50,
		SpawnFrequency: 10,
		DisplayDelayMs: 100,
	}
}
