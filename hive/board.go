package hive

// stack is the ordered sequence of piece ids occupying one cell. The
// bottom of the stack is element 0; the top (visible, movable) piece
// is the last element. An empty stack is never stored in a board
// mapping -- see Board invariants.
type stack []PieceID

func (s stack) top() (PieceID, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Board maps occupied cells to the stack of piece ids there. A cell is
// present in the mapping if and only if it is occupied: empty stacks
// are never stored.
type Board map[HexCoord]stack

func newBoard() Board {
	return make(Board)
}

// clone returns a deep-enough copy of b: a new top-level map whose
// stack slices are independently owned, so mutating the clone never
// affects b.
func (b Board) clone() Board {
	out := make(Board, len(b))
	for pos, s := range b {
		cp := make(stack, len(s))
		copy(cp, s)
		out[pos] = cp
	}
	return out
}

// occupied reports whether pos holds at least one piece.
func (b Board) occupied(pos HexCoord) bool {
	s, ok := b[pos]
	return ok && len(s) > 0
}

// topPiece returns the piece id on top of the stack at pos, if any.
func (b Board) topPiece(pos HexCoord) (PieceID, bool) {
	return b[pos].top()
}

// push places id on top of the stack at pos, creating the stack entry
// if needed.
func (b Board) push(pos HexCoord, id PieceID) {
	b[pos] = append(b[pos], id)
}

// remove deletes id from wherever it sits in the stack at pos (not
// necessarily the top), removing the stack entry entirely if it
// becomes empty. Used by the connectivity oracle and by movement
// enumerators to build a trial state.
func (b Board) remove(pos HexCoord, id PieceID) {
	s, ok := b[pos]
	if !ok {
		return
	}
	for i, pieceID := range s {
		if pieceID == id {
			s = append(s[:i], s[i+1:]...)
			break
		}
	}
	if len(s) == 0 {
		delete(b, pos)
	} else {
		b[pos] = s
	}
}

// pop removes and returns the top piece id at pos, deleting the stack
// entry if it becomes empty. Returns ok=false if pos is unoccupied.
func (b Board) pop(pos HexCoord) (id PieceID, ok bool) {
	s, present := b[pos]
	if !present || len(s) == 0 {
		return 0, false
	}
	id = s[len(s)-1]
	s = s[:len(s)-1]
	if len(s) == 0 {
		delete(b, pos)
	} else {
		b[pos] = s
	}
	return id, true
}

// occupiedCount returns the number of occupied cells.
func (b Board) occupiedCount() int {
	return len(b)
}

// anyOccupied returns an arbitrary occupied cell, used as a BFS seed.
// The board must be non-empty.
func (b Board) anyOccupied() HexCoord {
	for pos := range b {
		return pos
	}
	panic("hive: anyOccupied called on empty board")
}

// floodFillSize returns the number of cells reachable from start via
// six-direction adjacency over occupied cells, start included.
func (b Board) floodFillSize(start HexCoord) int {
	visited := map[HexCoord]bool{start: true}
	frontier := []HexCoord{start}
	for len(frontier) > 0 {
		var next []HexCoord
		for _, pos := range frontier {
			for _, n := range pos.Neighbours() {
				if visited[n] || !b.occupied(n) {
					continue
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		frontier = next
	}
	return len(visited)
}
