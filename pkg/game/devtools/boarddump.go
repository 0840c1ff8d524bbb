// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"boxplay/pkg/game/activity"
	"boxplay/pkg/game/renderer"
	"boxplay/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// styleSymbol returns the marker written after a cell for its style
func styleSymbol(style renderer.TextStyle) rune {
	switch style {
	case renderer.StyleHidden:
		return '?'
	case renderer.StyleRevealed:
		return '^'
	case renderer.StyleSolved:
		return '='
	case renderer.StyleSelected:
		return '>'
	case renderer.StyleCursor:
		return '@'
	case renderer.StyleLocked:
		return '#'
	case renderer.StyleMarked:
		return '+'
	default:
		return ' '
	}
}

// DumpBoard writes a debug dump to board.txt in dir: metadata, legend, the
// board as drawn, the hidden solution and the message log. Returns the path
// written.
func DumpBoard(g *state.Game, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, boardDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteBoard(f, g)
	return path, nil
}

// WriteBoard writes the dump of DumpBoard to w
func WriteBoard(w io.Writer, g *state.Game) {
	fmt.Fprintln(w, "=== boxplay board dump ===")
	fmt.Fprintln(w)
	if g == nil || g.Activity == nil {
		fmt.Fprintln(w, "no activity")
		return
	}

	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "activity: %s\n", g.Activity.Kind())
	fmt.Fprintf(w, "name: %s\n", g.Activity.Name())
	fmt.Fprintf(w, "puzzle: %s\n", g.Puzzle)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "progress: %.0f%%\n", g.Activity.Progress()*100)
	fmt.Fprintf(w, "playing: %t\n", g.Activity.Playing())
	fmt.Fprintf(w, "finished: %t\n", g.Activity.Finished())
	fmt.Fprintf(w, "cursor: %d,%d\n", g.Cursor.Row, g.Cursor.Col)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "?=hidden ^=revealed ==solved >=selected @=cursor #=locked +=marked")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Board ---")
	for _, row := range renderer.Board(g) {
		parts := make([]string, len(row))
		for i, c := range row {
			parts[i] = fmt.Sprintf("%s%c", c.Text, styleSymbol(c.Style))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Solution ---")
	writeSolution(w, g)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Messages ---")
	for _, m := range g.Messages {
		fmt.Fprintln(w, m)
	}
}

func writeSolution(w io.Writer, g *state.Game) {
	switch a := g.Activity.(type) {
	case *activity.Matching:
		grid := a.Grid()
		for r := 0; r < grid.Rows(); r++ {
			var parts []string
			for c := 0; c < grid.Cols(); c++ {
				cell := grid.CellAt(r, c)
				if cell == nil {
					parts = append(parts, "-")
					continue
				}
				parts = append(parts, fmt.Sprintf("%s(%d)", cell.CurrentContent(), cell.PairID))
			}
			fmt.Fprintln(w, strings.Join(parts, " "))
		}
	case *activity.Ordering:
		var texts []string
		for _, t := range a.Targets() {
			texts = append(texts, fmt.Sprintf("%s->%d", t.Text, t.Num))
		}
		fmt.Fprintln(w, strings.Join(texts, " "))
	case *activity.Crossword:
		grid := a.Grid()
		for y := 0; y < grid.Rows(); y++ {
			var sb strings.Builder
			for x := 0; x < grid.Cols(); x++ {
				sb.WriteRune(grid.AnswerAt(x, y))
			}
			fmt.Fprintln(w, sb.String())
		}
	case *activity.WordSearch:
		for _, word := range a.Words() {
			fmt.Fprintf(w, "%s found=%t\n", word, a.IsFound(word))
		}
	}
}
