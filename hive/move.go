package hive

// MoveKind distinguishes the three shapes a Move can take.
type MoveKind uint8

const (
	MovePlace MoveKind = iota
	MoveStep
	MovePass
)

// Move is a placement, a movement, or a pass. Which fields are
// meaningful is determined entirely by Kind:
//
//   - MovePlace: ID is an unplaced piece owned by the current player,
//     To is the empty cell it lands on. From and Path are unused.
//   - MoveStep: ID is placed and on top of its stack, From is its
//     current cell, Path is the sequence of intermediate cells with To
//     always its last element (one element for Queen/Beetle/
//     Grasshopper, exactly three for Spider, the BFS shortest path for
//     Ant).
//   - MovePass: no other field is used. Only ever generated when no
//     Place or MoveStep move is legal.
//
// Callers building a Move by hand -- a UI, or a test -- need only set
// the fields Kind implies; sameMove compares exactly those.
type Move struct {
	Kind MoveKind
	ID   PieceID
	From HexCoord
	To   HexCoord
	Path []HexCoord
}

func placeMove(id PieceID, to HexCoord) Move {
	return Move{Kind: MovePlace, ID: id, To: to}
}

func stepMove(id PieceID, from HexCoord, path []HexCoord) Move {
	return Move{
		Kind: MoveStep, ID: id,
		From: from,
		To:   path[len(path)-1],
		Path: path,
	}
}

var passMove = Move{Kind: MovePass, ID: -1}

// sameMove reports whether a and b refer to the same logical move:
// same kind and, for Place and Step moves, the same piece id and the
// same value for whichever of From/To that kind uses; any two Pass
// moves are equal. Path is deliberately excluded, so a Spider move
// specified only by destination matches whichever path the engine
// generated to get there.
func sameMove(a, b Move) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case MovePlace:
		return a.ID == b.ID && a.To == b.To
	case MoveStep:
		return a.ID == b.ID && a.From == b.From && a.To == b.To
	default: // MovePass
		return true
	}
}
