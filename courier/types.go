package courier

import (
	"github.com/hivemind-sim/hivemind/grid"
	"github.com/hivemind-sim/hivemind/parcel"
)

// ID is a stable courier handle, unique for the lifetime of the simulation.
type ID int

// Kind classifies a courier's capability tuple.
type Kind int

// Recognised courier kinds, in spawn-priority order (Drone, then Robot,
// then Scooter).
const (
	Drone Kind = iota
	Robot
	Scooter
)

// Valid reports whether k is one of the three recognised kinds.
func (k Kind) Valid() bool {
	_, ok := specs[k]
	return ok
}

// String names the kind for logging and rendering.
func (k Kind) String() string {
	switch k {
	case Drone:
		return "Drone"
	case Robot:
		return "Robot"
	case Scooter:
		return "Scooter"
	default:
		return "Unknown"
	}
}

// spec holds the fixed per-kind parameter tuple.
type spec struct {
	speed       int
	maxBattery  int
	consumption int
	cost        int
	capacity    int
	canFly      bool
}

var specs = map[Kind]spec{
	Drone:   {speed: 3, maxBattery: 100, consumption: 10, cost: 15, capacity: 1, canFly: true},
	Robot:   {speed: 1, maxBattery: 300, consumption: 2, cost: 1, capacity: 4, canFly: false},
	Scooter: {speed: 2, maxBattery: 200, consumption: 5, cost: 4, capacity: 2, canFly: false},
}

// Courier is a mobile agent that carries parcels between the base and
// client cells. The dispatcher owns the only live references; no Courier
// method performs I/O or planning.
type Courier struct {
	id   ID
	kind Kind

	pos      grid.Point
	speed    int
	maxBat   int
	battery  int
	consume  int
	cost     int
	capacity int
	carried  []*parcel.Parcel
	dead     bool
}

// New creates a courier of the given kind at pos, fully charged, idle.
// Panics if kind is not one of {Drone, Robot, Scooter}: callers (the
// dispatcher and its spawner) only ever construct from that closed set, so
// an unknown kind here is a programmer error, not bad input (ErrUnknownKind
// documents the condition for callers that validate kind earlier).
func New(id ID, kind Kind, pos grid.Point) *Courier {
	s, ok := specs[kind]
	if !ok {
		panic(ErrUnknownKind)
	}
	return &Courier{
		id:       id,
		kind:     kind,
		pos:      pos,
		speed:    s.speed,
		maxBat:   s.maxBattery,
		battery:  s.maxBattery,
		consume:  s.consumption,
		cost:     s.cost,
		capacity: s.capacity,
	}
}

// ID returns the courier's stable handle.
func (c *Courier) ID() ID { return c.id }

// Kind returns the courier's kind.
func (c *Courier) Kind() Kind { return c.kind }

// CanFly reports whether this kind ignores walls for distance/path queries.
func (c *Courier) CanFly() bool { return specs[c.kind].canFly }

// Position returns the courier's current cell.
func (c *Courier) Position() grid.Point { return c.pos }

// Speed returns cells traversable per tick. A dead courier always reports 0.
func (c *Courier) Speed() int { return c.speed }

// Battery returns the current charge, 0 <= Battery() <= MaxBattery().
func (c *Courier) Battery() int { return c.battery }

// MaxBattery returns the kind's battery capacity.
func (c *Courier) MaxBattery() int { return c.maxBat }

// Consumption returns battery spent per move tick.
func (c *Courier) Consumption() int { return c.consume }

// Cost returns the operating cost accrued per tick while alive.
func (c *Courier) Cost() int { return c.cost }

// Capacity returns the maximum number of parcels this courier can carry.
func (c *Courier) Capacity() int { return c.capacity }

// Dead reports whether the courier has been retired.
func (c *Courier) Dead() bool { return c.dead }

// HasFreeCapacity reports whether another parcel can be assigned.
func (c *Courier) HasFreeCapacity() bool { return len(c.carried) < c.capacity }

// FreeCapacity returns the number of additional parcels this courier can
// carry right now.
func (c *Courier) FreeCapacity() int { return c.capacity - len(c.carried) }

// Packages returns the parcels currently carried, in assignment order.
// The returned slice aliases internal state and must not be mutated by the
// caller; the dispatcher is the only writer.
func (c *Courier) Packages() []*parcel.Parcel { return c.carried }
