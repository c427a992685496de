package hive

// ScenarioPiece places one piece directly on the board for a
// hand-built test scenario, bypassing the normal placement rules.
type ScenarioPiece struct {
	Pos    HexCoord
	Player Player
	Type   PieceType
}

// NewGameFromScenario builds a game with the given pieces placed
// directly, in listing order (so entries sharing a Pos stack
// bottom-to-top in the order given). This is a construction aid for
// tests, not a normal play transition: unlike ApplyMove it does not
// validate turn order, placement adjacency, or the One-Hive
// invariant -- callers are responsible for building a sensible
// position. A player's Queen is marked placed if present in the
// layout, and that player's move count is advanced by one per piece
// placed, so "queen by move four" and movement preconditions behave
// as if the pieces had been placed through ordinary play.
func NewGameFromScenario(layout []ScenarioPiece) *Game {
	g := NewGame()
	used := make(map[PieceID]bool, len(layout))
	for _, entry := range layout {
		id := findUnplacedForScenario(g, used, entry.Player, entry.Type)
		p := &g.pieces[id]
		p.Placed = true
		p.Coord = entry.Pos
		g.board.push(entry.Pos, id)
		if entry.Type == QueenBee {
			g.queenPlaced[entry.Player] = true
		}
		g.movesPlayed[entry.Player]++
	}
	g.legalMovesDirty = true
	return g
}

func findUnplacedForScenario(g *Game, used map[PieceID]bool, owner Player, t PieceType) PieceID {
	for _, p := range g.pieces {
		if used[p.ID] || p.Owner != owner || p.Type != t {
			continue
		}
		used[p.ID] = true
		return p.ID
	}
	panic("hive: scenario layout exhausts the reserve of that piece type/player")
}
