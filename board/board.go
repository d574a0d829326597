// Package board holds the game-field geometry and the fleet placement rules.
// Everything here is pure: no state, no I/O.
package board

const (
	// RowSize is the width of the square game field.
	RowSize = 10
	// FieldSize is the total number of cells.
	FieldSize = RowSize * RowSize
	// EmptyCell marks a cell that holds no ship.
	EmptyCell = -1
)

// ShipSizes is the fixed ship catalog. A fleet must contain exactly one ship
// per entry; a cell value of i means "part of ship i" and occupies len == ShipSizes[i].
var ShipSizes = []int{5, 4, 3, 3, 2}

// RowOf returns the row index of a field position.
func RowOf(pos int) int {
	return pos / RowSize
}

// ColOf returns the column index of a field position.
func ColOf(pos int) int {
	return pos % RowSize
}

// InBounds reports whether pos is a valid field position.
func InBounds(pos int) bool {
	return pos >= 0 && pos < FieldSize
}
