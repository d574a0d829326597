package board

import "testing"

// emptyField returns a field with no ships placed.
func emptyField() []int {
	cells := make([]int, FieldSize)
	for i := range cells {
		cells[i] = EmptyCell
	}
	return cells
}

// placeShip writes ship shipID starting at start, advancing by step per cell
// (1 for horizontal, RowSize for vertical).
func placeShip(cells []int, shipID, start, step int) {
	for j := 0; j < ShipSizes[shipID]; j++ {
		cells[start+j*step] = shipID
	}
}

// legalFleet lays the catalog out on every other row, left-aligned:
//
//	0 0 0 0 0 . . . . .
//	. . . . . . . . . .
//	1 1 1 1 . . . . . .
//	. . . . . . . . . .
//	2 2 2 . . . . . . .
//	...
func legalFleet() []int {
	cells := emptyField()
	placeShip(cells, 0, 0, 1)
	placeShip(cells, 1, 20, 1)
	placeShip(cells, 2, 40, 1)
	placeShip(cells, 3, 60, 1)
	placeShip(cells, 4, 80, 1)
	return cells
}

func TestValidate_WrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 99, 101, 200} {
		cells := make([]int, n)
		for i := range cells {
			cells[i] = EmptyCell
		}
		if Validate(cells) {
			t.Errorf("Validate accepted a field of length %d", n)
		}
	}
	if Validate(nil) {
		t.Error("Validate accepted a nil field")
	}
}

func TestValidate_LegalFleet(t *testing.T) {
	if !Validate(legalFleet()) {
		t.Error("Validate rejected a legal horizontal fleet")
	}
}

func TestValidate_LegalVerticalFleet(t *testing.T) {
	cells := emptyField()
	placeShip(cells, 0, 9, RowSize)  // col 9, rows 0-4
	placeShip(cells, 1, 0, 1)        // row 0, cols 0-3
	placeShip(cells, 2, 20, 1)       // row 2, cols 0-2
	placeShip(cells, 3, 40, 1)       // row 4, cols 0-2
	placeShip(cells, 4, 60, RowSize) // col 0, rows 6-7
	if !Validate(cells) {
		t.Error("Validate rejected a legal fleet with vertical ships")
	}
}

func TestValidate_AllEmptyFails(t *testing.T) {
	if Validate(emptyField()) {
		t.Error("Validate accepted a field with no ships")
	}
}

func TestValidate_MissingShipFails(t *testing.T) {
	cells := legalFleet()
	// Remove the size-2 ship entirely.
	cells[80] = EmptyCell
	cells[81] = EmptyCell
	if Validate(cells) {
		t.Error("Validate accepted a fleet missing a catalog ship")
	}
}

func TestValidate_DuplicateShipFails(t *testing.T) {
	cells := legalFleet()
	// A second copy of ship 4, far away from the first.
	placeShip(cells, 4, 88, 1)
	if Validate(cells) {
		t.Error("Validate accepted a fleet with a ship placed twice")
	}
}

func TestValidate_OverlapFails(t *testing.T) {
	cells := legalFleet()
	// Shift ship 4 from row 8 onto ship 3's row, overlapping its run.
	cells[80] = EmptyCell
	cells[81] = EmptyCell
	placeShip(cells, 4, 61, 1)
	if Validate(cells) {
		t.Error("Validate accepted overlapping ships")
	}
}

func TestValidate_OrthogonalAdjacencyFails(t *testing.T) {
	cells := legalFleet()
	// Move ship 4 to the row directly below ship 3, no gap.
	cells[80] = EmptyCell
	cells[81] = EmptyCell
	placeShip(cells, 4, 70, 1)
	if Validate(cells) {
		t.Error("Validate accepted orthogonally touching ships")
	}
}

func TestValidate_DiagonalAdjacencyAllowed(t *testing.T) {
	cells := legalFleet()
	// Move ship 4 diagonally below-right of ship 3's tail: cell 73 touches
	// 62 only diagonally.
	cells[80] = EmptyCell
	cells[81] = EmptyCell
	placeShip(cells, 4, 73, 1)
	if !Validate(cells) {
		t.Error("Validate rejected diagonal adjacency, which is legal")
	}
}

func TestValidate_BrokenRunFails(t *testing.T) {
	cells := legalFleet()
	// Punch a hole in the middle of ship 0.
	cells[2] = EmptyCell
	if Validate(cells) {
		t.Error("Validate accepted a non-contiguous ship")
	}
}

func TestValidate_LoneCellFails(t *testing.T) {
	cells := legalFleet()
	// Ship 4 reduced to a single cell: no orientation can be chosen.
	cells[81] = EmptyCell
	if Validate(cells) {
		t.Error("Validate accepted a ship shorter than its catalog size")
	}
}

func TestValidate_RowWrapFails(t *testing.T) {
	cells := legalFleet()
	// Ship 4 spanning the edge: last cell of row 7 and first cell of row 8.
	cells[80] = EmptyCell
	cells[81] = EmptyCell
	cells[79] = 4
	cells[80] = 4
	if Validate(cells) {
		t.Error("Validate accepted a ship wrapping across rows")
	}
}

func TestValidate_UnknownShipIDFails(t *testing.T) {
	cells := legalFleet()
	cells[88] = 7
	cells[89] = 7
	if Validate(cells) {
		t.Error("Validate accepted a ship id outside the catalog")
	}
}

func TestValidate_VerticalOverflowFails(t *testing.T) {
	cells := emptyField()
	placeShip(cells, 1, 0, 1)
	placeShip(cells, 2, 20, 1)
	placeShip(cells, 3, 40, 1)
	placeShip(cells, 4, 60, 1)
	// Ship 0 (size 5) starting on row 7 of col 9 would need rows 7-11.
	cells[79] = 0
	cells[89] = 0
	cells[99] = 0
	if Validate(cells) {
		t.Error("Validate accepted a ship running off the bottom edge")
	}
}

func TestValidate_IsPure(t *testing.T) {
	cells := legalFleet()
	snapshot := make([]int, len(cells))
	copy(snapshot, cells)

	first := Validate(cells)
	second := Validate(cells)
	if first != second {
		t.Errorf("Validate not deterministic: %v then %v", first, second)
	}
	for i := range cells {
		if cells[i] != snapshot[i] {
			t.Fatalf("Validate mutated its input at cell %d", i)
		}
	}
}
