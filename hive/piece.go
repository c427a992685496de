package hive

import "github.com/pkg/errors"

// PieceType is a closed tagged variant of the five Hive piece kinds.
type PieceType uint8

const (
	QueenBee PieceType = iota
	Beetle
	Spider
	Grasshopper
	SoldierAnt

	numPieceTypes = int(SoldierAnt) + 1
)

// pieceTypeOrder is the display-order rank (0..4) of each piece type,
// used solely to sort UnplacedPieces.
var pieceTypeOrder = [numPieceTypes]int{
	QueenBee: 0, Beetle: 1, Spider: 2, Grasshopper: 3, SoldierAnt: 4,
}

var pieceTypeLabels = [numPieceTypes]string{
	QueenBee: "Q", Beetle: "B", Spider: "S", Grasshopper: "G", SoldierAnt: "A",
}

var pieceTypeNames = [numPieceTypes]string{
	QueenBee: "Queen Bee", Beetle: "Beetle", Spider: "Spider",
	Grasshopper: "Grasshopper", SoldierAnt: "Soldier Ant",
}

// Label returns the single-character label of the piece type (Q, B, S, G, A).
func (t PieceType) Label() string {
	return pieceTypeLabels[t]
}

// String returns the long display name of the piece type.
func (t PieceType) String() string {
	return pieceTypeNames[t]
}

// DisplayOrder returns the sort rank used for the unplaced-pieces list.
func (t PieceType) DisplayOrder() int {
	return pieceTypeOrder[t]
}

// reserveCounts is how many of each piece type a player starts with,
// indexed by PieceType: 1 Queen, 2 Beetle, 2 Spider, 3 Grasshopper, 3 Ant.
var reserveCounts = [numPieceTypes]int{
	QueenBee: 1, Beetle: 2, Spider: 2, Grasshopper: 3, SoldierAnt: 3,
}

// TotalPiecesPerPlayer is the sum of reserveCounts, 11.
const TotalPiecesPerPlayer = 11

// Player identifies one of the two players: 0 (moves first) or 1.
type Player uint8

const (
	Player0 Player = 0
	Player1 Player = 1
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == Player0 {
		return "Player0"
	}
	return "Player1"
}

// PieceID is an engine-assigned stable identifier, dense from 0.
// Piece identity persists across moves; a movement changes only Coord.
type PieceID int

// Piece is one of the 22 pieces in a game: its identity, type, owner,
// and (if Placed) its location.
type Piece struct {
	ID     PieceID
	Type   PieceType
	Owner  Player
	Placed bool
	Coord  HexCoord // meaningful only when Placed
}

// buildPieceCatalog assigns piece ids 0..21 in the deterministic order
// spec'd by the engine: player 0's Queen, two Beetles, two Spiders,
// three Grasshoppers, three Ants, then player 1's in the same order.
// It also returns, per player, the id of that player's Queen.
func buildPieceCatalog() (pieces []Piece, queenID [2]PieceID) {
	order := []PieceType{
		QueenBee,
		Beetle, Beetle,
		Spider, Spider,
		Grasshopper, Grasshopper, Grasshopper,
		SoldierAnt, SoldierAnt, SoldierAnt,
	}
	pieces = make([]Piece, 0, 2*TotalPiecesPerPlayer)
	for owner := Player(0); owner < 2; owner++ {
		for _, t := range order {
			id := PieceID(len(pieces))
			pieces = append(pieces, Piece{ID: id, Type: t, Owner: owner})
			if t == QueenBee {
				queenID[owner] = id
			}
		}
	}
	return pieces, queenID
}

// validPieceID reports whether id refers to an existing piece.
func validPieceID(id PieceID, numPieces int) error {
	if id < 0 || int(id) >= numPieces {
		return errors.Errorf("hive: invalid piece id %d", id)
	}
	return nil
}
