package board

// Validate reports whether cells is a legal arrangement of the ship catalog.
// A legal arrangement places every catalog ship exactly once, contiguous and
// fully horizontal or vertical, inside the field, with no cell of a ship
// orthogonally adjacent to a cell of a different ship.
//
// The scan walks the field once, left to right, top to bottom. The first
// unvisited cell of a ship is always its top-left cell, so orientation can be
// decided by looking at the next cell to the right and the cell one row below.
func Validate(cells []int) bool {
	if len(cells) != FieldSize {
		return false
	}

	visited := make([]bool, FieldSize)
	placed := make([]bool, len(ShipSizes))

	for i := 0; i < FieldSize; i++ {
		if visited[i] {
			continue
		}
		if cells[i] == EmptyCell {
			visited[i] = true
			continue
		}

		shipID := cells[i]
		if shipID < 0 || shipID >= len(ShipSizes) {
			return false
		}
		// The same ship id showing up again outside its recorded run means
		// the ship was placed twice or split.
		if placed[shipID] {
			return false
		}
		size := ShipSizes[shipID]

		var step int
		switch {
		case size == 1:
			step = 1
		case ColOf(i) < RowSize-1 && cells[i+1] == shipID:
			step = 1
		case i+RowSize < FieldSize && cells[i+RowSize] == shipID:
			step = RowSize
		default:
			return false
		}

		run := make([]int, 0, size)
		for j := 0; j < size; j++ {
			pos := i + j*step
			if !InBounds(pos) || cells[pos] != shipID {
				return false
			}
			// A horizontal run must stay on its row.
			if step == 1 && RowOf(pos) != RowOf(i) {
				return false
			}
			run = append(run, pos)
		}

		for _, pos := range run {
			if !neighborsClear(cells, pos, shipID) {
				return false
			}
			visited[pos] = true
		}
		placed[shipID] = true
	}

	for _, ok := range placed {
		if !ok {
			return false
		}
	}
	return true
}

// neighborsClear checks that every orthogonal neighbor of pos is empty or
// belongs to the same ship.
func neighborsClear(cells []int, pos, shipID int) bool {
	if ColOf(pos) > 0 && cells[pos-1] != EmptyCell && cells[pos-1] != shipID {
		return false
	}
	if ColOf(pos) < RowSize-1 && cells[pos+1] != EmptyCell && cells[pos+1] != shipID {
		return false
	}
	if pos-RowSize >= 0 && cells[pos-RowSize] != EmptyCell && cells[pos-RowSize] != shipID {
		return false
	}
	if pos+RowSize < FieldSize && cells[pos+RowSize] != EmptyCell && cells[pos+RowSize] != shipID {
		return false
	}
	return true
}
