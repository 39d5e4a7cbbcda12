package dispatcher

import (
	"go.uber.org/zap"

	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/parcel"
)

// spawnPackagesIfNeeded spawns a new package at a uniform-random client,
// reward in [200,800], deadline offset in [10,20] ticks from now, once per
// SpawnFrequency ticks while the total workload hasn't yet spawned.
func (e *Engine) spawnPackagesIfNeeded() {
	if e.cfg.SpawnFrequency <= 0 {
		return
	}
	if e.currentTick%e.cfg.SpawnFrequency != 0 {
		return
	}
	if e.spawnedPackages >= e.cfg.TotalPackages {
		return
	}
	e.spawnPackage()
}

func (e *Engine) spawnPackage() {
	if len(e.clients) == 0 {
		return
	}
	dest := e.clients[e.rng.Intn(len(e.clients))]
	reward := 200 + e.rng.Intn(601)     // [200, 800]
	deadlineOffset := 10 + e.rng.Intn(11) // [10, 20]
	deadline := e.currentTick + deadlineOffset

	id := parcel.ID(e.spawnedPackages)
	p := parcel.New(id, dest, reward, deadline)
	e.packages = append(e.packages, p)
	e.waiting = append(e.waiting, p)
	e.spawnedPackages++

	e.logger.Debug("dispatcher: package spawned",
		zap.Int("id", int(id)), zap.Int("reward", reward), zap.Int("deadline", deadline))
}

// adaptiveSpawn spawns one more courier, once the waiting pool clears the
// threshold and the cooldown has elapsed, of the next available type in
// priority order Drone -> Robot -> Scooter, subject to per-type caps.
func (e *Engine) adaptiveSpawn() {
	if len(e.waiting) < waitingSpawnThreshold {
		return
	}
	if e.currentTick-e.lastSpawnTick < spawnCooldownTicks {
		return
	}
	totalActive := e.activeDrones + e.activeRobots + e.activeScooters
	totalCap := e.cfg.Drones + e.cfg.Robots + e.cfg.Scooters
	if totalActive >= totalCap {
		return
	}
	kind, ok := e.nextSpawnableKind()
	if !ok {
		return
	}
	e.spawnCourier(kind)
	e.lastSpawnTick = e.currentTick
}

// nextSpawnableKind picks the next kind to spawn in priority order
// Drone -> Robot -> Scooter, subject to each type's configured cap.
func (e *Engine) nextSpawnableKind() (courier.Kind, bool) {
	switch {
	case e.activeDrones < e.cfg.Drones:
		return courier.Drone, true
	case e.activeRobots < e.cfg.Robots:
		return courier.Robot, true
	case e.activeScooters < e.cfg.Scooters:
		return courier.Scooter, true
	default:
		return 0, false
	}
}

func (e *Engine) spawnCourier(kind courier.Kind) {
	id := e.nextCourierID
	e.nextCourierID++

	c := courier.New(id, kind, e.basePos)
	e.couriers = append(e.couriers, c)

	switch kind {
	case courier.Drone:
		e.activeDrones++
	case courier.Robot:
		e.activeRobots++
	case courier.Scooter:
		e.activeScooters++
	}

	e.logger.Info("dispatcher: courier spawned",
		zap.Int("id", int(id)), zap.String("kind", kind.String()))
}
