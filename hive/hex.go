package hive

import "fmt"

// HexCoord is an axial coordinate (q, r) on a flat-topped hex grid.
// The implied third cube coordinate is s = -q-r; it is never stored.
type HexCoord struct {
	Q, R int
}

// Add returns the componentwise sum of the two coordinates.
func (c HexCoord) Add(o HexCoord) HexCoord {
	return HexCoord{c.Q + o.Q, c.R + o.R}
}

// Sub returns the componentwise difference of the two coordinates.
func (c HexCoord) Sub(o HexCoord) HexCoord {
	return HexCoord{c.Q - o.Q, c.R - o.R}
}

// Equal reports whether the two coordinates refer to the same cell.
func (c HexCoord) Equal(o HexCoord) bool {
	return c == o
}

func (c HexCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Q, c.R)
}

// directions is the fixed, observable ordering of the six neighbor
// deltas. The slide oracle (slide.go) indexes directly into this
// table by the index a delta resolves to via directionIndex, so the
// order here must never change without updating that oracle.
var directions = [6]HexCoord{
	{1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {0, -1}, {1, -1},
}

// noDirection is the sentinel returned by directionIndex when delta
// does not match any of the six neighbor directions.
const noDirection = -1

// directionIndex returns the index in [0, 5] of delta within the
// fixed direction table, or noDirection if delta is not a unit step
// in any of the six directions.
func directionIndex(delta HexCoord) int {
	for i, d := range directions {
		if d == delta {
			return i
		}
	}
	return noDirection
}

// Neighbours returns the six positions adjacent to c, in the fixed
// direction order.
func (c HexCoord) Neighbours() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range directions {
		out[i] = c.Add(d)
	}
	return out
}
