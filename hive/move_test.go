package hive_test

import (
	"testing"

	. "github.com/llaakson/hive/hive"
	"github.com/llaakson/hive/internal/hivetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A caller may submit a move specifying only Kind, ID, From and To --
// omitting Path -- and have it match whichever path the engine
// actually generated to that destination, resolving one of the
// documented open questions: Spider moves are distinguished by path,
// but matching a caller's move against LegalMoves() is path-agnostic.
func TestMoveIsLegalIgnoresPath(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{0, 0}, Player: Player0, Type: Spider},
		{Pos: HexCoord{1, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, -1}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{1, -1}, Player: Player0, Type: QueenBee},
	})
	spider := pieceIDAt(t, g, HexCoord{0, 0}, Spider, Player0)
	full := moveStepsFor(t, g, spider)
	require.NotEmpty(t, full)

	underspecified := Move{Kind: MoveStep, ID: spider, From: full[0].From, To: full[0].To}
	assert.True(t, g.MoveIsLegal(underspecified))
	assert.Nil(t, underspecified.Path)

	require.True(t, g.ApplyMove(underspecified))
	p, err := g.Piece(spider)
	require.NoError(t, err)
	assert.Equal(t, full[0].To, p.Coord)
}

func TestMoveIsLegalRejectsWrongKindOrDestination(t *testing.T) {
	g := NewGame()
	moves := g.LegalMoves()
	require.NotEmpty(t, moves)
	legal := moves[0]

	wrongKind := legal
	wrongKind.Kind = MoveStep
	assert.False(t, g.MoveIsLegal(wrongKind))

	wrongDest := legal
	wrongDest.To = HexCoord{99, 99}
	assert.False(t, g.MoveIsLegal(wrongDest))

	assert.False(t, g.MoveIsLegal(Move{Kind: MovePlace, ID: -1, To: HexCoord{0, 0}}))
}

func TestPassMoveOnlyWhenNoOtherMoveExists(t *testing.T) {
	g := NewGame()
	for _, m := range g.LegalMoves() {
		assert.NotEqual(t, MovePass, m.Kind, "a fresh game always has placements available")
	}
}
