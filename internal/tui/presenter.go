// Package tui is the thin terminal layer around the board engine: it
// renders frames from the engine's public state and parses operator
// moves. It holds no game state of its own.
package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pocc/pynesweeper/internal/board"
)

const (
	glyphHidden = "⁇"
	glyphMine   = "✺"
	glyphFlag   = "⚑"

	// red background, bold; marks mines on loss and flags on win
	highlightOn  = "\033[41;1m"
	highlightOff = "\033[0m"

	clearScreen = "\033[H\033[2J"
)

// cellWidth keeps columns aligned when a terminal renders one of the
// glyphs double-width.
var cellWidth = max(
	runewidth.StringWidth(glyphHidden),
	runewidth.StringWidth(glyphMine),
	runewidth.StringWidth(glyphFlag),
	1,
)

func pad(s string) string {
	return runewidth.FillRight(s, cellWidth)
}

func highlight(s string) string {
	return highlightOn + s + highlightOff
}

type Presenter struct {
	out    io.Writer
	board  *board.Board
	header string
}

func NewPresenter(out io.Writer, b *board.Board) *Presenter {
	return &Presenter{
		out:    out,
		board:  b,
		header: boardHeader(b.SideLen()),
	}
}

// Draw clears the screen and writes the current frame.
func (p *Presenter) Draw() error {
	_, err := fmt.Fprint(p.out, clearScreen+p.Frame())
	return err
}

// Frame renders the header, the grid and any end-of-game trailer.
func (p *Presenter) Frame() string {
	var (
		sb      strings.Builder
		sideLen = p.board.SideLen()
		status  = p.board.Status()
	)
	sb.WriteString(p.header)
	sb.WriteString("\n")
	for row := range sideLen {
		sb.WriteString(" " + rowLetter(row))
		for col := range sideLen {
			sb.WriteString(" " + p.cell(row, col, status))
		}
		sb.WriteString("\n")
	}
	switch status {
	case board.Lost:
		sb.WriteString("\n   💣 GAME OVER! 💣\n")
	case board.Won:
		sb.WriteString("\n   🎉 YOU WIN! 🎉\n")
	}
	return sb.String()
}

func (p *Presenter) cell(row, col int, status board.Status) string {
	if !p.board.Revealed(row, col) && !status.Terminal() {
		return pad(glyphHidden)
	}
	v := p.board.CellValue(row, col)
	if v == board.Mine {
		if status == board.Won {
			// the win condition leaves exactly the mines covered;
			// decorate them as correctly dodged
			return highlight(pad(glyphFlag))
		}
		return highlight(pad(glyphMine))
	}
	if v == 0 {
		return pad(" ")
	}
	return pad(strconv.Itoa(int(v)))
}

func rowLetter(row int) string {
	return string(rune('A' + row))
}

func boardHeader(sideLen int) string {
	var sb strings.Builder
	sb.WriteString("  P Y N E S W E E P E R\n\n")
	if sideLen > 10 {
		sb.WriteString(tensLine(sideLen))
	}
	sb.WriteString("  ")
	for i := range sideLen {
		sb.WriteString(" " + pad(strconv.Itoa((i+1)%10)))
	}
	return sb.String()
}

/*
 * Past ten columns a second header line tracks the tens digit:
 *     1                   2
 * 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 ...
 */
func tensLine(sideLen int) string {
	var sb strings.Builder
	sb.WriteString("  ")
	tens := 1
	for sideLen > 10 {
		sb.WriteString(strings.Repeat(" ", 19) + strconv.Itoa(tens))
		tens++
		sideLen -= 10
	}
	sb.WriteString("\n")
	return sb.String()
}
