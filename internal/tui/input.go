package tui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ParseMove turns an "A1"-style string into 0-indexed coordinates: a
// row letter (case-insensitive) followed by a 1-based column number.
func ParseMove(s string, sideLen int) (row, col int, err error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("move %q is too short", s)
	}
	letter := unicode.ToUpper(rune(s[0]))
	if letter < 'A' || letter > rune('A'+sideLen-1) {
		return 0, 0, fmt.Errorf("row %q is not a letter between A and %c", s[0], 'A'+sideLen-1)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > sideLen {
		return 0, 0, fmt.Errorf("column %q is not a number between 1 and %d", s[1:], sideLen)
	}
	return int(letter - 'A'), n - 1, nil
}

// MoveReader prompts for moves on out and reads them line by line
// from in, re-prompting until a line parses.
type MoveReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	sideLen int
}

func NewMoveReader(in io.Reader, out io.Writer, sideLen int) *MoveReader {
	return &MoveReader{
		scanner: bufio.NewScanner(in),
		out:     out,
		sideLen: sideLen,
	}
}

// Next blocks until the operator enters a parseable move. Returns
// [io.EOF] once the input is exhausted.
func (mr *MoveReader) Next() (row, col int, err error) {
	fmt.Fprint(mr.out, "Show me a move! ")
	for mr.scanner.Scan() {
		row, col, perr := ParseMove(mr.scanner.Text(), mr.sideLen)
		if perr == nil {
			return row, col, nil
		}
		fmt.Fprintf(mr.out,
			"You entered an invalid move.\n"+
				"The first character MUST be a letter between A and %c.\n"+
				"The next character(s) MUST be a number between 1 and %d.\n"+
				"\nShow me a move! ",
			'A'+mr.sideLen-1, mr.sideLen,
		)
	}
	if err := mr.scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, io.EOF
}
