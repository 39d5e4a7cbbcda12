package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hivemind-sim/hivemind/courier"
	"github.com/hivemind-sim/hivemind/grid"
)

// Renderer draws frames to out, pausing displayDelay between frames to
// give each tick a deliberate, readable pace.
type Renderer struct {
	out          io.Writer
	displayDelay time.Duration
}

// New constructs a Renderer writing to out. displayDelayMs of 0 or less
// disables the inter-frame pause.
func New(out io.Writer, displayDelayMs int) *Renderer {
	delay := time.Duration(0)
	if displayDelayMs > 0 {
		delay = time.Duration(displayDelayMs) * time.Millisecond
	}
	return &Renderer{out: out, displayDelay: delay}
}

// Render draws the grid overlaid with live couriers, followed by the stats
// line, then sleeps displayDelay.
func (r *Renderer) Render(g *grid.Grid, couriers []*courier.Courier, stats Stats) {
	fmt.Fprint(r.out, ansiClear)

	overlay := make(map[grid.Point]*courier.Courier, len(couriers))
	for _, c := range couriers {
		if c.Dead() {
			continue
		}
		overlay[c.Position()] = c
	}

	var b strings.Builder
	for x := 0; x < g.Rows(); x++ {
		for y := 0; y < g.Cols(); y++ {
			p := grid.Point{X: x, Y: y}
			if c, ok := overlay[p]; ok {
				b.WriteString(courierGlyph(c))
				continue
			}
			b.WriteString(cellGlyph(g.At(p)))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(r.out, b.String())

	fmt.Fprintf(r.out,
		"Tick: %d/%d   Delivered: %d   Waiting: %d   Active: %d (carrying=%d)   Profit (est): %d   Total agents spawned: %d\n",
		stats.Tick, stats.MaxTicks, stats.Delivered, stats.Waiting, stats.Active, stats.Carrying,
		stats.Profit, stats.TotalSpawned)

	if r.displayDelay > 0 {
		time.Sleep(r.displayDelay)
	}
}

func cellGlyph(c grid.Cell) string {
	switch c {
	case grid.Client:
		return colorGreen + "D" + colorReset
	case grid.Base:
		return colorCyan + "B" + colorReset
	case grid.Station:
		return colorYellow + "S" + colorReset
	case grid.Wall:
		return "#"
	default:
		return "."
	}
}

func courierGlyph(c *courier.Courier) string {
	switch c.Kind() {
	case courier.Drone:
		return colorBlue + "^" + colorReset
	case courier.Robot:
		return colorBrightGreen + "R" + colorReset
	case courier.Scooter:
		return colorMagenta + "s" + colorReset
	default:
		return "?"
	}
}
