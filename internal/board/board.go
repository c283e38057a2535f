// Package board holds the minesweeper game state: a square grid of
// adjacency counts with mines stamped as a sentinel value, a reveal
// mask, and a win/loss status derived from them. It does no I/O and
// owns no goroutines; rendering and input live elsewhere.
package board

import "math/rand/v2"

type Board struct {
	sideLen  int
	numMines int
	cells    []int8 /* 0..8 adjacency, or Mine */
	revealed []bool
	moveCt   int /* distinct first-reveals */
	lastMove int /* flat index of the latest move, -1 before any */
	status   Status
}

// New generates a sideLen x sideLen board with numMines mines placed
// uniformly at random without replacement from r.
func New(sideLen, numMines int, r *rand.Rand) (*Board, error) {
	if sideLen < 1 || numMines < 1 || numMines >= sideLen*sideLen {
		return nil, InvalidConfigError{SideLen: sideLen, NumMines: numMines}
	}

	numCells := sideLen * sideLen
	b := &Board{
		sideLen:  sideLen,
		numMines: numMines,
		cells:    make([]int8, numCells),
		revealed: make([]bool, numCells),
		lastMove: -1,
		status:   InProgress,
	}

	/*
	 * Write down every cell index, then pick numMines off the list
	 * at random, swapping each pick out of the candidate range.
	 */
	candidates := make([]int, numCells)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	mines := make([]int, 0, numMines)
	for range numMines {
		i := r.IntN(k)
		mines = append(mines, candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	for _, m := range mines {
		row, col := m/sideLen, m%sideLen
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rr, cc := row+dr, col+dc
				if rr < 0 || rr >= sideLen || cc < 0 || cc >= sideLen {
					continue
				}
				b.cells[rr*sideLen+cc]++
			}
		}
	}

	/*
	 * Mines are stamped last so the accumulation above never has to
	 * care whether a neighbor is itself mined.
	 */
	for _, m := range mines {
		b.cells[m] = Mine
	}

	return b, nil
}

// Reveal applies a move at row:col. Revealing an already-revealed cell
// is legal and changes neither the mask nor the move count, but still
// counts as the latest move for loss evaluation.
func (b *Board) Reveal(row, col int) error {
	if row < 0 || row >= b.sideLen || col < 0 || col >= b.sideLen {
		return OutOfBoundsError{Row: row, Col: col, SideLen: b.sideLen}
	}
	i := row*b.sideLen + col
	if !b.revealed[i] {
		b.revealed[i] = true
		b.moveCt++
	}
	b.lastMove = i
	b.evaluate()
	return nil
}

/*
 * A terminal status is sticky. Otherwise the game is lost iff the
 * latest move landed on a mine, and won iff every safe cell has been
 * revealed (a plain count comparison, not a connectivity check).
 */
func (b *Board) evaluate() {
	if b.status.Terminal() {
		return
	}
	if b.cells[b.lastMove] == Mine {
		b.status = Lost
		return
	}
	if b.moveCt == b.sideLen*b.sideLen-b.numMines {
		b.status = Won
	}
}

// CellValue returns the adjacency count of row:col, or Mine. Callers
// decide whether to disclose it based on Revealed and Status.
func (b *Board) CellValue(row, col int) int8 {
	return b.cells[row*b.sideLen+col]
}

func (b *Board) Revealed(row, col int) bool {
	return b.revealed[row*b.sideLen+col]
}

func (b *Board) Status() Status {
	return b.status
}

// MovesMade counts distinct first-reveals.
func (b *Board) MovesMade() int {
	return b.moveCt
}

func (b *Board) SideLen() int {
	return b.sideLen
}

func (b *Board) NumMines() int {
	return b.numMines
}
