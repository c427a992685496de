package hive

import (
	"sort"

	"k8s.io/klog/v2"
)

// Result is the outcome of a finished game, or Pending while play
// continues.
type Result uint8

const (
	Pending Result = iota
	Player0Wins
	Player1Wins
	Draw
)

// Game is one game of Hive in progress. It holds no threads, does no
// I/O, and is not safe for concurrent mutation.
type Game struct {
	pieces  []Piece
	queenID [2]PieceID

	board Board

	queenPlaced [2]bool
	movesPlayed [2]uint

	currentPlayer Player
	turnNumber    uint
	result        Result
	gameOver      bool

	legalMovesCache []Move
	legalMovesDirty bool
}

// NewGame initializes a new game: piece ids 0..21 assigned in the
// deterministic order described in piece.go, current player 0, empty
// board.
func NewGame() *Game {
	pieces, queenID := buildPieceCatalog()
	g := &Game{
		pieces:          pieces,
		queenID:         queenID,
		board:           newBoard(),
		currentPlayer:   Player0,
		legalMovesDirty: true,
	}
	klog.V(2).Infof("hive: new game, %d pieces", len(pieces))
	return g
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() Player { return g.currentPlayer }

// Pieces returns an immutable view over all 22 pieces.
func (g *Game) Pieces() []Piece {
	out := make([]Piece, len(g.pieces))
	copy(out, g.pieces)
	return out
}

// Piece returns the piece with the given id. id is a programmer
// error if out of range: the caller gets the zero Piece and a
// non-nil error rather than a silent, possibly-corrupting fallback.
func (g *Game) Piece(id PieceID) (Piece, error) {
	if err := validPieceID(id, len(g.pieces)); err != nil {
		return Piece{}, err
	}
	return g.pieces[id], nil
}

// isTopPiece reports whether id is placed and sits on top of its stack.
// id must be in range.
func (g *Game) isTopPiece(id PieceID) bool {
	p := g.pieces[id]
	if !p.Placed {
		return false
	}
	top, ok := g.board.topPiece(p.Coord)
	return ok && top == id
}

// IsTopPiece reports whether id is placed and sits on top of its
// stack. id out of range is a programmer error; it returns false.
func (g *Game) IsTopPiece(id PieceID) bool {
	if err := validPieceID(id, len(g.pieces)); err != nil {
		klog.Warningf("hive: IsTopPiece: %v", err)
		return false
	}
	return g.isTopPiece(id)
}

// QueenPlaced reports whether player's Queen has been placed.
func (g *Game) QueenPlaced(player Player) bool { return g.queenPlaced[player] }

// MovesPlayed returns the count of successful non-Pass moves player
// has made.
func (g *Game) MovesPlayed(player Player) uint { return g.movesPlayed[player] }

// Stacks returns a defensive-copy view of the board mapping.
func (g *Game) Stacks() map[HexCoord][]PieceID {
	out := make(map[HexCoord][]PieceID, len(g.board))
	for pos, s := range g.board {
		cp := make([]PieceID, len(s))
		copy(cp, s)
		out[pos] = cp
	}
	return out
}

// UnplacedPieces returns the ids of player's unplaced pieces, sorted
// by (piece type display order, id).
func (g *Game) UnplacedPieces(player Player) []PieceID {
	var out []PieceID
	for _, p := range g.pieces {
		if p.Owner == player && !p.Placed {
			out = append(out, p.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := g.pieces[out[i]], g.pieces[out[j]]
		oi, oj := pi.Type.DisplayOrder(), pj.Type.DisplayOrder()
		if oi != oj {
			return oi < oj
		}
		return out[i] < out[j]
	})
	return out
}

// LegalMoves returns the cached legal-move list for the current
// player, lazily recomputed when dirty. Placements come first (piece
// id, then destination order), then movements (piece-id order). If
// both are empty and the game is not over, the single element is
// Pass. When the game is over, it returns nil.
func (g *Game) LegalMoves() []Move {
	if g.legalMovesDirty {
		g.legalMovesCache = g.computeLegalMoves()
		g.legalMovesDirty = false
	}
	return g.legalMovesCache
}

func (g *Game) computeLegalMoves() []Move {
	if g.gameOver {
		return nil
	}
	var moves []Move
	moves = g.appendPlacementMoves(moves)
	moves = g.appendMovementMoves(moves)
	if len(moves) == 0 {
		moves = append(moves, passMove)
	}
	return moves
}

// MoveIsLegal reports whether m is sameMove-equal to some element of
// LegalMoves().
func (g *Game) MoveIsLegal(m Move) bool {
	for _, candidate := range g.LegalMoves() {
		if sameMove(candidate, m) {
			return true
		}
	}
	return false
}

// ApplyMove applies m if it is sameMove-equal to some current legal
// move, mutating board state, flipping the active player, recomputing
// the game result, and invalidating the legal-move cache. It returns
// false and makes no state change if m is illegal, the game is
// already over, or (defensively) the piece being moved is not found
// on top of its recorded source stack.
func (g *Game) ApplyMove(m Move) bool {
	if g.gameOver {
		return false
	}

	var selected *Move
	for i, candidate := range g.LegalMoves() {
		if sameMove(candidate, m) {
			selected = &g.legalMovesCache[i]
			break
		}
	}
	if selected == nil {
		return false
	}
	applied := *selected
	player := g.currentPlayer

	switch applied.Kind {
	case MovePlace:
		p := &g.pieces[applied.ID]
		p.Placed = true
		p.Coord = applied.To
		g.board.push(p.Coord, p.ID)
		if p.Type == QueenBee {
			g.queenPlaced[player] = true
		}

	case MoveStep:
		p := &g.pieces[applied.ID]
		top, ok := g.board.topPiece(p.Coord)
		if !ok || top != p.ID {
			klog.Errorf("hive: corrupt top-of-stack applying %+v", applied)
			return false
		}
		if _, ok := g.board.pop(p.Coord); !ok {
			return false
		}
		p.Coord = applied.To
		g.board.push(p.Coord, p.ID)

	case MovePass:
		// No state change.
	}

	if applied.Kind != MovePass {
		g.movesPlayed[player]++
	}
	g.turnNumber++
	g.updateResult()
	g.currentPlayer = player.Opponent()
	g.legalMovesDirty = true

	klog.V(2).Infof("hive: turn %d: %s applied %+v", g.turnNumber, player, applied)
	return true
}

// queenSurrounded reports whether player's queen is placed and all
// six of its neighbor cells are occupied.
func (g *Game) queenSurrounded(player Player) bool {
	if !g.queenPlaced[player] {
		return false
	}
	q := g.pieces[g.queenID[player]]
	if !q.Placed {
		return false
	}
	for _, n := range q.Coord.Neighbours() {
		if !g.board.occupied(n) {
			return false
		}
	}
	return true
}

// updateResult runs end-of-game detection: if both queens are
// surrounded in the same step the result is Draw; if only one is, the
// opponent wins.
func (g *Game) updateResult() {
	s0, s1 := g.queenSurrounded(Player0), g.queenSurrounded(Player1)
	switch {
	case s0 && s1:
		g.result, g.gameOver = Draw, true
	case s0:
		g.result, g.gameOver = Player1Wins, true
	case s1:
		g.result, g.gameOver = Player0Wins, true
	}
	if g.gameOver {
		g.legalMovesDirty = true
	}
}

// IsGameOver reports whether the game has reached a terminal result.
func (g *Game) IsGameOver() bool { return g.gameOver }

// IsDraw reports whether the finished game ended in a draw.
func (g *Game) IsDraw() bool { return g.result == Draw }

// Winner returns the winning player and true, or (0, false) if the
// game is not yet decided or ended in a draw.
func (g *Game) Winner() (Player, bool) {
	switch g.result {
	case Player0Wins:
		return Player0, true
	case Player1Wins:
		return Player1, true
	default:
		return 0, false
	}
}
