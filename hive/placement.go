package hive

import "sort"

// placementCells returns the sorted, deduplicated set of empty cells
// on which player may place a piece.
func (g *Game) placementCells(player Player) []HexCoord {
	if g.board.occupiedCount() == 0 {
		return []HexCoord{{0, 0}}
	}

	hasOwnPieceInPlay := false
	for _, p := range g.pieces {
		if p.Owner == player && p.Placed {
			hasOwnPieceInPlay = true
			break
		}
	}

	candidates := make(map[HexCoord]bool)
	for pos := range g.board {
		for _, n := range pos.Neighbours() {
			if g.board.occupied(n) {
				continue
			}

			if !hasOwnPieceInPlay {
				// Second-ever placement of the game: every cell
				// adjacent to the sole existing hive is legal, even
				// if it touches the opponent.
				candidates[n] = true
				continue
			}

			touchesOwn, touchesOpponent := false, false
			for _, nn := range n.Neighbours() {
				id, ok := g.board.topPiece(nn)
				if !ok {
					continue
				}
				if g.pieces[id].Owner == player {
					touchesOwn = true
				} else {
					touchesOpponent = true
				}
			}
			if touchesOwn && !touchesOpponent {
				candidates[n] = true
			}
		}
	}

	out := make([]HexCoord, 0, len(candidates))
	for pos := range candidates {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}

// appendPlacementMoves appends, in piece-id then destination order,
// every legal Place move for the current player.
func (g *Game) appendPlacementMoves(moves []Move) []Move {
	player := g.currentPlayer
	mustPlaceQueen := !g.queenPlaced[player] && g.movesPlayed[player] == 3

	cells := g.placementCells(player)
	if len(cells) == 0 {
		return moves
	}

	for _, p := range g.pieces {
		if p.Owner != player || p.Placed {
			continue
		}
		if mustPlaceQueen && p.Type != QueenBee {
			continue
		}
		for _, to := range cells {
			moves = append(moves, placeMove(p.ID, to))
		}
	}
	return moves
}
