package board

import "fmt"

type InvalidConfigError struct {
	SideLen  int
	NumMines int
}

// [InvalidConfigError] implements [error]
func (e InvalidConfigError) Error() string {
	return fmt.Sprintf(
		"invalid board config: side length %d, %d mines (want side >= 1 and 1 <= mines < side^2)",
		e.SideLen, e.NumMines,
	)
}

type OutOfBoundsError struct {
	Row, Col int
	SideLen  int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"move %d:%d is outside a %dx%d board",
		e.Row, e.Col, e.SideLen, e.SideLen,
	)
}
