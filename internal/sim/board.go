package sim

// Board is the fixed-size playfield of locked cells.
// Origin is top-left and rows grow downward. Storage is a host buffer
// with one byte per cell, non-zero meaning occupied.
type Board struct {
	width  int
	height int
	cells  []byte
}

func newBoard(width, height int, cells []byte) Board {
	clear(cells)
	return Board{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsOccupied reports whether (x, y) holds a locked cell.
// Out-of-bounds coordinates report false.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cells[y*b.width+x] != 0
}

// CanPlace reports whether every occupied cell of shape, translated by
// (ox, oy), lies inside the board on an empty cell.
func (b *Board) CanPlace(shape Shape, ox, oy int) bool {
	for y := range MaxHeight {
		for x := range MaxWidth {
			if !shape.Has(x, y) {
				continue
			}
			bx, by := ox+x, oy+y
			if !b.inBounds(bx, by) || b.cells[by*b.width+bx] != 0 {
				return false
			}
		}
	}
	return true
}

// Lock writes the shape's cells into the board.
// CanPlace must have held for the same arguments.
func (b *Board) Lock(shape Shape, ox, oy int) {
	for y := range MaxHeight {
		for x := range MaxWidth {
			if shape.Has(x, y) {
				b.set(ox+x, oy+y, true)
			}
		}
	}
}

func (b *Board) set(x, y int, occupied bool) {
	if !b.inBounds(x, y) {
		return
	}
	var v byte
	if occupied {
		v = 1
	}
	b.cells[y*b.width+x] = v
}

func (b *Board) row(y int) []byte {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.row(y) {
		if c == 0 {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above down and
// empties the rows exposed at the top. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if b.rowFull(src) {
			cleared++
			continue
		}
		if dst != src {
			copy(b.row(dst), b.row(src))
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(b.row(dst))
	}
	return cleared
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != 0 {
			n++
		}
	}
	return n
}
