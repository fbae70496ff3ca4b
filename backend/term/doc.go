// Package term draws imui frames into a terminal through tcell.
//
// Layout coordinates are mapped onto the cell grid by a configurable cell
// size, so a scene written in pixels renders at a sensible scale. Frames are
// drawn into a double-buffered grid and only changed cells are sent to the
// screen on Show.
package term
