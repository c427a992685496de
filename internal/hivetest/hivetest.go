// Package hivetest provides helpers to build hive.Game boards from a
// declarative piece layout for use in tests, and to render a board for
// failure messages, the way the teacher module's
// internal/state/statetest package does for its own tests.
package hivetest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/llaakson/hive/hive"
)

// PieceOnBoard describes one placed piece in a test layout.
type PieceOnBoard = hive.ScenarioPiece

// BuildGame returns a fresh game with the given pieces already placed
// directly on the board (bypassing the normal placement rules), which
// is useful for constructing scenarios that would otherwise take many
// moves to reach.
func BuildGame(layout []PieceOnBoard) *hive.Game {
	return hive.NewGameFromScenario(layout)
}

// DumpBoard renders a deterministic, human-readable text dump of the
// board's occupied cells, sorted by (q, r), for use in test failure
// messages.
func DumpBoard(g *hive.Game) string {
	stacks := g.Stacks()
	positions := make([]hive.HexCoord, 0, len(stacks))
	for pos := range stacks {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Q != positions[j].Q {
			return positions[i].Q < positions[j].Q
		}
		return positions[i].R < positions[j].R
	})

	var sb strings.Builder
	for _, pos := range positions {
		ids := stacks[pos]
		fmt.Fprintf(&sb, "%s:", pos)
		for _, id := range ids {
			p, err := g.Piece(id)
			if err != nil {
				continue
			}
			fmt.Fprintf(&sb, " %s%d(p%d)", p.Type.Label(), p.ID, p.Owner)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
