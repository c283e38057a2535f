package board

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxAdjacent is the largest mine count a safe cell can carry.
	MaxAdjacent = 8
	// Mine marks a mined cell. Strictly greater than any adjacency
	// count so the two can never be confused.
	Mine int8 = MaxAdjacent + 1
)

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

func cellString(v int8) string {
	switch {
	case v == Mine:
		return "*"
	case v == 0:
		return "."
	case 0 < v && v <= MaxAdjacent:
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

// String dumps the full grid, mines and all. Debugging aid; the
// player-facing rendering lives in the tui package.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.sideLen {
		for col := range b.sideLen {
			fmt.Fprint(&sb, cellString(b.cells[row*b.sideLen+col])+" ")
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
