package hive

// trialBoardWithout returns a clone of g.board with piece id removed
// from its current cell, for movement enumerators to probe without
// the moving piece blocking itself.
func (g *Game) trialBoardWithout(id PieceID) Board {
	p := g.pieces[id]
	trial := g.board.clone()
	trial.remove(p.Coord, id)
	return trial
}

// appendMovementMoves appends, in piece-id order, every legal
// MoveStep for the current player's already-placed, top-of-stack,
// removable pieces. No movement moves are generated until the
// player's Queen is placed.
func (g *Game) appendMovementMoves(moves []Move) []Move {
	player := g.currentPlayer
	if !g.queenPlaced[player] {
		return moves
	}

	for _, p := range g.pieces {
		if p.Owner != player || !p.Placed {
			continue
		}
		if !g.isTopPiece(p.ID) {
			continue
		}
		if g.wouldBreakHive(p.ID) {
			continue
		}
		switch p.Type {
		case QueenBee:
			moves = g.appendQueenMoves(p, moves)
		case Beetle:
			moves = g.appendBeetleMoves(p, moves)
		case Grasshopper:
			moves = g.appendGrasshopperMoves(p, moves)
		case Spider:
			moves = g.appendSpiderMoves(p, moves)
		case SoldierAnt:
			moves = g.appendAntMoves(p, moves)
		}
	}
	return moves
}

// appendQueenMoves: one step to any adjacent empty cell reachable via
// a legal slide.
func (g *Game) appendQueenMoves(p Piece, moves []Move) []Move {
	trial := g.trialBoardWithout(p.ID)
	for _, to := range p.Coord.Neighbours() {
		if g.board.occupied(to) {
			continue
		}
		if !canSlide(trial, p.Coord, to) {
			continue
		}
		moves = append(moves, stepMove(p.ID, p.Coord, []HexCoord{to}))
	}
	return moves
}

// appendBeetleMoves: one step to any of the six adjacent cells. A
// slide check applies only when the destination is empty; climbing
// onto an occupied cell never requires one.
func (g *Game) appendBeetleMoves(p Piece, moves []Move) []Move {
	trial := g.trialBoardWithout(p.ID)
	for _, to := range p.Coord.Neighbours() {
		if g.board.occupied(to) {
			moves = append(moves, stepMove(p.ID, p.Coord, []HexCoord{to}))
			continue
		}
		if canSlide(trial, p.Coord, to) {
			moves = append(moves, stepMove(p.ID, p.Coord, []HexCoord{to}))
		}
	}
	return moves
}

// appendGrasshopperMoves: for each direction, advance one cell at a
// time until the first empty cell, requiring at least one occupied
// cell traversed.
func (g *Game) appendGrasshopperMoves(p Piece, moves []Move) []Move {
	for _, dir := range directions {
		cur := p.Coord.Add(dir)
		jumped := false
		for g.board.occupied(cur) {
			jumped = true
			cur = cur.Add(dir)
		}
		if jumped {
			moves = append(moves, stepMove(p.ID, p.Coord, []HexCoord{cur}))
		}
	}
	return moves
}

// appendSpiderMoves: exactly three slide steps via depth-3 DFS over
// slidingNeighbors of the trial board, never revisiting the origin or
// a cell already on the current path. Distinct paths to the same cell
// yield distinct moves.
func (g *Game) appendSpiderMoves(p Piece, moves []Move) []Move {
	trial := g.trialBoardWithout(p.ID)
	visited := map[HexCoord]bool{p.Coord: true}
	path := make([]HexCoord, 0, 3)

	var dfs func(cur HexCoord, remaining int)
	dfs = func(cur HexCoord, remaining int) {
		if remaining == 0 {
			if len(path) == 3 {
				cp := make([]HexCoord, 3)
				copy(cp, path)
				moves = append(moves, stepMove(p.ID, p.Coord, cp))
			}
			return
		}
		for _, n := range slidingNeighbors(trial, cur) {
			if visited[n] {
				continue
			}
			visited[n] = true
			path = append(path, n)
			dfs(n, remaining-1)
			path = path[:len(path)-1]
			delete(visited, n)
		}
	}
	dfs(p.Coord, 3)
	return moves
}

// appendAntMoves: BFS over slidingNeighbors of the trial board from
// the origin, restricted to the hive perimeter (empty cells adjacent
// to at least one occupied cell of the trial board); every reachable
// cell yields a move whose Path is the unique shortest route from the
// first step out of the origin.
func (g *Game) appendAntMoves(p Piece, moves []Move) []Move {
	trial := g.trialBoardWithout(p.ID)

	onPerimeter := func(pos HexCoord) bool {
		for _, n := range pos.Neighbours() {
			if trial.occupied(n) {
				return true
			}
		}
		return false
	}

	visited := map[HexCoord]bool{p.Coord: true}
	parent := map[HexCoord]HexCoord{}
	var frontier []HexCoord

	for _, n := range slidingNeighbors(trial, p.Coord) {
		if !visited[n] && onPerimeter(n) {
			visited[n] = true
			parent[n] = p.Coord
			frontier = append(frontier, n)
		}
	}

	buildPath := func(dest HexCoord) []HexCoord {
		var rev []HexCoord
		cur := dest
		for cur != p.Coord {
			rev = append(rev, cur)
			prev, ok := parent[cur]
			if !ok {
				break
			}
			cur = prev
		}
		out := make([]HexCoord, len(rev))
		for i, pos := range rev {
			out[len(rev)-1-i] = pos
		}
		return out
	}

	for len(frontier) > 0 {
		var next []HexCoord
		for _, cur := range frontier {
			moves = append(moves, stepMove(p.ID, p.Coord, buildPath(cur)))
			for _, n := range slidingNeighbors(trial, cur) {
				if !visited[n] && onPerimeter(n) {
					visited[n] = true
					parent[n] = cur
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return moves
}
