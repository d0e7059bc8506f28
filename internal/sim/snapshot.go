package sim

// Snapshot captures everything queryable for determinism testing and replay.
type Snapshot struct {
	Width    int
	Height   int
	Matrix   []bool // row-major, Width*Height
	Kind     Kind
	Rotation int
	X        int
	Y        int
	Score    int
	Lines    int
	Level    int
	Pieces   int
	State    State
}

// Snapshot returns a copy of the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	w, h := s.board.Width(), s.board.Height()
	matrix := make([]bool, w*h)
	for y := range h {
		for x := range w {
			matrix[y*w+x] = s.board.IsOccupied(x, y)
		}
	}
	return Snapshot{
		Width:    w,
		Height:   h,
		Matrix:   matrix,
		Kind:     s.piece.kind,
		Rotation: s.piece.rot,
		X:        s.piece.x,
		Y:        s.piece.y,
		Score:    s.score,
		Lines:    s.lines,
		Level:    s.level,
		Pieces:   s.pieces,
		State:    s.state,
	}
}
