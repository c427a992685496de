package hive_test

import (
	"testing"

	. "github.com/llaakson/hive/hive"
	"github.com/llaakson/hive/internal/hivetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveStepsFor(t *testing.T, g *Game, id PieceID) []Move {
	t.Helper()
	var out []Move
	for _, m := range g.LegalMoves() {
		if m.Kind == MoveStep && m.ID == id {
			out = append(out, m)
		}
	}
	return out
}

func pieceIDAt(t *testing.T, g *Game, pos HexCoord, typ PieceType, owner Player) PieceID {
	t.Helper()
	ids := g.Stacks()[pos]
	for _, id := range ids {
		p, err := g.Piece(id)
		require.NoError(t, err)
		if p.Type == typ && p.Owner == owner {
			return id
		}
	}
	t.Fatalf("no %v belonging to %v found at %v", typ, owner, pos)
	return -1
}

// S3: a Grasshopper jumps in a straight line over one or more occupied
// cells to the first empty cell beyond them; a direction with no
// occupied neighbor offers no jump at all.
func TestScenarioGrasshopperJump(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{0, 0}, Player: Player0, Type: Grasshopper},
		{Pos: HexCoord{1, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, 1}, Player: Player0, Type: QueenBee},
	})
	id := pieceIDAt(t, g, HexCoord{0, 0}, Grasshopper, Player0)
	moves := moveStepsFor(t, g, id)
	require.NotEmpty(t, moves, hivetest.DumpBoard(g))

	var destinations []HexCoord
	for _, m := range moves {
		destinations = append(destinations, m.To)
		assert.Len(t, m.Path, 1)
	}
	assert.Contains(t, destinations, HexCoord{3, 0}, "expected a jump landing past both occupied cells")
	assert.NotContains(t, destinations, HexCoord{-1, 0}, "direction (-1,0) has no occupied neighbor to jump")
}

// S4: a Beetle may always climb onto an occupied neighboring cell,
// regardless of the squeeze rule that governs sliding onto an empty
// one.
func TestScenarioBeetleClimbsStack(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{5, 5}, Player: Player0, Type: QueenBee},
		{Pos: HexCoord{0, 0}, Player: Player1, Type: SoldierAnt},
		{Pos: HexCoord{0, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{1, 0}, Player: Player1, Type: QueenBee},
	})
	beetle := pieceIDAt(t, g, HexCoord{0, 0}, Beetle, Player0)
	ant := pieceIDAt(t, g, HexCoord{0, 0}, SoldierAnt, Player1)
	require.Equal(t, []PieceID{ant, beetle}, g.Stacks()[HexCoord{0, 0}])

	moves := moveStepsFor(t, g, beetle)
	found := false
	for _, m := range moves {
		if m.To == (HexCoord{1, 0}) {
			found = true
		}
	}
	assert.True(t, found, "beetle must be able to climb onto the occupied cell at (1,0): %s", hivetest.DumpBoard(g))

	require.True(t, g.ApplyMove(Move{Kind: MoveStep, ID: beetle, From: HexCoord{0, 0}, To: HexCoord{1, 0}}))

	stacks := g.Stacks()
	assert.Len(t, stacks[HexCoord{0, 0}], 1, "the Ant remains once the Beetle climbs off")
	onTop := stacks[HexCoord{1, 0}]
	require.NotEmpty(t, onTop)
	assert.Equal(t, beetle, onTop[len(onTop)-1], "beetle must be on top of the stack it climbed onto")
}

// S5: the middle piece of a three-piece line is the sole connector
// between the two ends and may never move.
func TestScenarioOneHiveEnforcement(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{-1, 0}, Player: Player0, Type: QueenBee},
		{Pos: HexCoord{0, 0}, Player: Player0, Type: SoldierAnt},
		{Pos: HexCoord{1, 0}, Player: Player0, Type: SoldierAnt},
		{Pos: HexCoord{2, 0}, Player: Player0, Type: SoldierAnt},
	})
	middle := pieceIDAt(t, g, HexCoord{1, 0}, SoldierAnt, Player0)

	for _, m := range g.LegalMoves() {
		if m.Kind == MoveStep {
			assert.NotEqual(t, middle, m.ID, "moving the articulation piece would break the hive: %s", hivetest.DumpBoard(g))
		}
	}
}

// Spider moves are always exactly three slides long, never revisit a
// cell already on their own path, and always end where Path says.
func TestSpiderMovesAreThreeDistinctSteps(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{0, 0}, Player: Player0, Type: Spider},
		{Pos: HexCoord{1, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, -1}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{1, -1}, Player: Player0, Type: QueenBee},
	})
	spider := pieceIDAt(t, g, HexCoord{0, 0}, Spider, Player0)
	moves := moveStepsFor(t, g, spider)
	require.NotEmpty(t, moves, hivetest.DumpBoard(g))

	for _, m := range moves {
		require.Len(t, m.Path, 3, "every spider move is exactly three slides")
		assert.Equal(t, m.Path[2], m.To)

		seen := map[HexCoord]bool{{0, 0}: true}
		for _, step := range m.Path {
			assert.False(t, seen[step], "spider path revisits %v", step)
			seen[step] = true
		}
	}
}

// Ant moves reach every slide-reachable cell by the shortest path, and
// the Ant never lands back on its own origin or offers the same
// destination twice.
func TestAntMovesCoverReachableSurface(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{0, 0}, Player: Player0, Type: SoldierAnt},
		{Pos: HexCoord{1, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{2, 0}, Player: Player0, Type: QueenBee},
	})
	ant := pieceIDAt(t, g, HexCoord{0, 0}, SoldierAnt, Player0)
	moves := moveStepsFor(t, g, ant)
	require.NotEmpty(t, moves, hivetest.DumpBoard(g))

	destinations := map[HexCoord]bool{}
	for _, m := range moves {
		assert.NotEqual(t, HexCoord{0, 0}, m.To, "ant must not be offered its own origin as a destination")
		assert.False(t, destinations[m.To], "ant must not offer the same destination twice")
		destinations[m.To] = true
		require.NotEmpty(t, m.Path)
		assert.Equal(t, m.To, m.Path[len(m.Path)-1])
	}
}

// A Queen with exactly one empty neighbor, flanked on both sides by
// occupied cells, cannot slide into it: the squeeze rule, not mere
// encirclement, is what blocks it here.
func TestQueenSqueezeIsForbidden(t *testing.T) {
	g := hivetest.BuildGame([]ScenarioPiece{
		{Pos: HexCoord{0, 0}, Player: Player0, Type: QueenBee},
		{Pos: HexCoord{1, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{0, 1}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{-1, 1}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{-1, 0}, Player: Player0, Type: Beetle},
		{Pos: HexCoord{0, -1}, Player: Player0, Type: Beetle},
	})
	queen := pieceIDAt(t, g, HexCoord{0, 0}, QueenBee, Player0)
	moves := moveStepsFor(t, g, queen)
	assert.Empty(t, moves, "queen's lone empty neighbor is flanked by two occupied cells: %s", hivetest.DumpBoard(g))
}
