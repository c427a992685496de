package hive

import "github.com/llaakson/hive/internal/diagnostics"

// wouldBreakHive decides whether removing piece (entirely, from
// wherever it sits in its cell's stack) would disconnect the set of
// occupied cells -- the One-Hive invariant.
//
// If the piece has one or more pieces stacked below it, removing it
// does not change the set of occupied cells at all (the cell stays
// occupied by whatever is underneath), so the hive cannot break; this
// is why the check is only meaningful -- and only ever invoked -- on
// top-of-stack pieces.
func (g *Game) wouldBreakHive(id PieceID) bool {
	p := g.pieces[id]
	if !p.Placed {
		return false
	}
	if s := g.board[p.Coord]; len(s) > 1 {
		// Piece is not alone in its stack: the cell stays occupied
		// regardless of this piece's removal.
		return false
	}

	trial := g.board.clone()
	trial.remove(p.Coord, id)

	if trial.occupiedCount() <= 1 {
		return false
	}
	start := trial.anyOccupied()
	reachable := trial.floodFillSize(start)
	diagnostics.TraceArticulation(start.String(), reachable, trial.occupiedCount())
	return reachable != trial.occupiedCount()
}
