package parcel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hivemind-sim/hivemind/grid"
)

func TestNewParcelIsWaiting(t *testing.T) {
	p := New(1, grid.Point{2, 3}, 500, 40)
	assert.False(t, p.Delivered())
	assert.Equal(t, -1, p.DeliveredAt())
	assert.Equal(t, grid.Point{2, 3}, p.Destination())
	assert.Equal(t, 500, p.Reward())
	assert.Equal(t, 40, p.Deadline())
}

func TestMarkDeliveredIsOneShot(t *testing.T) {
	p := New(1, grid.Point{}, 500, 40)
	p.MarkDelivered(12)
	assert.True(t, p.Delivered())
	assert.Equal(t, 12, p.DeliveredAt())

	p.MarkDelivered(99) // further ticks must not change deliveredAt
	assert.Equal(t, 12, p.DeliveredAt())
}
