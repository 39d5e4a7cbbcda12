// Package render draws one frame of simulation state to a terminal using
// raw ANSI escape sequences: a clear-and-home sequence, the grid with
// coloured cell and courier glyphs, and a single stats line. It is a pure
// observer of engine state — it never mutates a Grid or Courier.
package render
