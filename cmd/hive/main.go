// Command hive is a scripted, read-only driver over the hive engine's
// public API. It plays a fixed demonstration sequence of moves and
// prints the resulting board after each one; once the script ends it
// prints the final board again, followed by the game result. It is
// not a playable UI:
// it reads no input and persists nothing -- the engine's own
// Non-goals (rendering, input handling, save/load) remain out of
// scope for this repository.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"k8s.io/klog/v2"

	"github.com/llaakson/hive/hive"
)

var (
	flagColor     = flag.Bool("color", true, "Color player 0/1 pieces differently.")
	flagTurns     = flag.Int("turns", 6, "Number of scripted placement turns to play.")
	flagShowLegal = flag.Bool("show_legal", false, "Print the legal-move count before each turn.")
)

var (
	player0Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	player1Style = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	g := hive.NewGame()
	playOpening(g, *flagTurns)
	printBoard(g)

	switch {
	case !g.IsGameOver():
		fmt.Println("result: game still in progress")
	case g.IsDraw():
		fmt.Println("result: draw")
	default:
		winner, _ := g.Winner()
		fmt.Printf("result: %s wins\n", winner)
	}
}

// playOpening places each player's Queen first, then alternates
// placing Grasshoppers adjacent to their own hive, for up to
// maxTurns half-moves, stopping early if the game ends or no legal
// placement remains. It is a fixed, deterministic script: the engine
// itself does no search or decision-making here, main() does.
func playOpening(g *hive.Game, maxTurns int) {
	for turn := 0; turn < maxTurns && !g.IsGameOver(); turn++ {
		if *flagShowLegal {
			fmt.Printf("turn %d (%s to move): %d legal moves\n",
				turn+1, g.CurrentPlayer(), len(g.LegalMoves()))
		}

		m, ok := nextScriptedMove(g)
		if !ok {
			klog.Warningf("no scripted move available on turn %d, stopping early", turn+1)
			return
		}
		if !g.ApplyMove(m) {
			klog.Exitf("scripted move %+v was rejected as illegal on turn %d", m, turn+1)
		}
		printBoard(g)
	}
}

// nextScriptedMove picks the current player's Queen if unplaced,
// otherwise their first unplaced Grasshopper, placing on the first
// cell legalMoves() offers for that piece.
func nextScriptedMove(g *hive.Game) (hive.Move, bool) {
	player := g.CurrentPlayer()
	preferred := hive.QueenBee
	if g.QueenPlaced(player) {
		preferred = hive.Grasshopper
	}

	for _, m := range g.LegalMoves() {
		if m.Kind != hive.MovePlace {
			continue
		}
		p, err := g.Piece(m.ID)
		if err != nil || p.Type != preferred {
			continue
		}
		return m, true
	}
	// Fall back to whatever placement is available.
	for _, m := range g.LegalMoves() {
		if m.Kind == hive.MovePlace {
			return m, true
		}
	}
	return hive.Move{}, false
}

func printBoard(g *hive.Game) {
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

	for _, pos := range positions {
		ids := stacks[pos]
		fmt.Fprintf(os.Stdout, "%-10s", pos.String())
		for _, id := range ids {
			p, err := g.Piece(id)
			if err != nil {
				continue
			}
			label := fmt.Sprintf("%s%d", p.Type.Label(), p.ID)
			if *flagColor {
				if p.Owner == hive.Player0 {
					label = player0Style.Render(label)
				} else {
					label = player1Style.Render(label)
				}
			}
			fmt.Fprintf(os.Stdout, " %s", label)
		}
		fmt.Fprintln(os.Stdout)
	}
	fmt.Println()
}
