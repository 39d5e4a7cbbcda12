package parcel

import "github.com/hivemind-sim/hivemind/grid"

// ID is a stable parcel handle, unique for the lifetime of the simulation.
type ID int

// notDelivered is the sentinel DeliveredAt value before delivery.
const notDelivered = -1

// Parcel is immutable after construction except for the one-shot delivery
// transition applied by MarkDelivered.
type Parcel struct {
	id          ID
	dest        grid.Point
	reward      int
	deadline    int
	delivered   bool
	deliveredAt int
}

// New constructs a waiting Parcel with the given identity, destination,
// reward and absolute-tick deadline.
func New(id ID, dest grid.Point, reward, deadline int) *Parcel {
	return &Parcel{id: id, dest: dest, reward: reward, deadline: deadline, deliveredAt: notDelivered}
}

// ID returns the parcel's stable handle.
func (p *Parcel) ID() ID { return p.id }

// Destination returns the delivery target cell.
func (p *Parcel) Destination() grid.Point { return p.dest }

// Reward returns the payout for on-time or late delivery.
func (p *Parcel) Reward() int { return p.reward }

// Deadline returns the absolute tick by which delivery should complete.
func (p *Parcel) Deadline() int { return p.deadline }

// Delivered reports whether MarkDelivered has been called.
func (p *Parcel) Delivered() bool { return p.delivered }

// DeliveredAt returns the tick of delivery, or -1 if not yet delivered.
func (p *Parcel) DeliveredAt() int { return p.deliveredAt }

// MarkDelivered flips Delivered from false to true and records tick.
// Calling it again is a no-op: delivery is a one-shot transition.
func (p *Parcel) MarkDelivered(tick int) {
	if p.delivered {
		return
	}
	p.delivered = true
	p.deliveredAt = tick
}
