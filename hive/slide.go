package hive

// canSlide reports whether a piece may slide from "from" to "to" on
// the given trial board (a board from which the moving piece has
// already been removed). "to" must be a direct neighbor of "from".
//
// The slide is legal iff not both of the two "side" neighbors of
// "from" -- the ones reached via directions (d+5)%6 and (d+1)%6,
// where d is the direction index of to-from -- are occupied. This
// encodes that a flat hex tile cannot squeeze between two adjacent
// occupied tiles.
func canSlide(trial Board, from, to HexCoord) bool {
	d := directionIndex(to.Sub(from))
	if d == noDirection {
		return false
	}
	left := from.Add(directions[(d+5)%6])
	right := from.Add(directions[(d+1)%6])
	return !(trial.occupied(left) && trial.occupied(right))
}

// slidingNeighbors returns the direct neighbors of "from" that are
// unoccupied on the trial board and satisfy canSlide, in the fixed
// direction order.
func slidingNeighbors(trial Board, from HexCoord) []HexCoord {
	var out []HexCoord
	for _, n := range from.Neighbours() {
		if trial.occupied(n) {
			continue
		}
		if canSlide(trial, from, n) {
			out = append(out, n)
		}
	}
	return out
}
