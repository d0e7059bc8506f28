package sim

import "fmt"

// Sim is the simulation handle. It owns the board, the active piece and the
// timing state. A Sim is not safe for concurrent use.
type Sim struct {
	host   Host
	cfg    settings
	logger logger

	board Board
	rand  randomizer
	piece piece
	state State

	lastGravity float64
	score       int
	lines       int
	level       int
	pieces      int

	allocs [][]byte
	closed bool
}

// logger is the subset of *log.Logger the engine uses.
type logger interface {
	Debug(msg any, keyvals ...any)
}

// New builds a simulation, acquiring all storage through host.Alloc.
// On failure nothing stays allocated and the returned Sim is nil.
func New(host Host, opts ...Option) (*Sim, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Sim{
		host:  host,
		cfg:   cfg,
		level: cfg.startLevel,
	}
	if cfg.logger != nil {
		s.logger = cfg.logger
	} else {
		s.logger = discardLogger()
	}

	cells, err := s.alloc(cfg.width * cfg.height)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("sim: board storage: %w", err)
	}
	bag, err := s.alloc(int(KindCount))
	if err != nil {
		s.release()
		return nil, fmt.Errorf("sim: randomizer storage: %w", err)
	}

	s.board = newBoard(cfg.width, cfg.height, cells)
	s.rand = newRandomizer(cfg.policy, bag)
	s.lastGravity = host.Time()
	s.spawn()

	s.logger.Debug("simulation started",
		"width", cfg.width, "height", cfg.height, "policy", cfg.policy)
	return s, nil
}

// alloc requests size bytes from the host and records the buffer for Close.
func (s *Sim) alloc(size int) ([]byte, error) {
	buf := s.host.Alloc(size)
	if buf == nil {
		return nil, ErrAllocFailed
	}
	s.allocs = append(s.allocs, buf)
	if len(buf) < size {
		return nil, ErrAllocFailed
	}
	return buf[:size], nil
}

// release hands every recorded buffer back to the host exactly once.
func (s *Sim) release() {
	for i := len(s.allocs) - 1; i >= 0; i-- {
		s.host.Free(s.allocs[i])
	}
	s.allocs = nil
}

// Close frees every allocation made by New. The Sim must not be queried
// afterwards; further Close and Update calls are no-ops.
func (s *Sim) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.release()
	s.board.cells = nil
	s.rand.bag = nil
}

// IsGameOver reports whether the last spawn was blocked.
func (s *Sim) IsGameOver() bool {
	return s.state == StateGameOver
}

// State returns the active piece lifecycle state.
func (s *Sim) State() State {
	return s.state
}

// MatrixWidth returns the playfield width in cells.
func (s *Sim) MatrixWidth() int {
	return s.board.Width()
}

// MatrixHeight returns the playfield height in cells.
func (s *Sim) MatrixHeight() int {
	return s.board.Height()
}

// MatrixValue reports whether playfield cell (x, y) holds a locked segment.
func (s *Sim) MatrixValue(x, y int) bool {
	return s.board.IsOccupied(x, y)
}

// TetrominoMaxWidth returns the bounding box width shared by all pieces.
func (s *Sim) TetrominoMaxWidth() int {
	return MaxWidth
}

// TetrominoMaxHeight returns the bounding box height shared by all pieces.
func (s *Sim) TetrominoMaxHeight() int {
	return MaxHeight
}

// TetrominoValue reports whether local cell (x, y) of the active piece is
// occupied in its current rotation.
func (s *Sim) TetrominoValue(x, y int) bool {
	return s.piece.shape().Has(x, y)
}

// TetrominoPosX returns the column of the active piece's bounding box.
func (s *Sim) TetrominoPosX() int {
	return s.piece.x
}

// TetrominoPosY returns the row of the active piece's bounding box.
func (s *Sim) TetrominoPosY() int {
	return s.piece.y
}

// Kind returns the active piece kind.
func (s *Sim) Kind() Kind {
	return s.piece.kind
}

// Rotation returns the active piece rotation state.
func (s *Sim) Rotation() int {
	return s.piece.rot
}

// Score returns the accumulated line-clear points.
func (s *Sim) Score() int {
	return s.score
}

// Lines returns the total number of cleared rows.
func (s *Sim) Lines() int {
	return s.lines
}

// Level returns the current level, starting at the configured start level.
func (s *Sim) Level() int {
	return s.level
}

// Pieces returns how many pieces have been spawned, including the first.
func (s *Sim) Pieces() int {
	return s.pieces
}

// GravityInterval returns the seconds per row at the current level.
func (s *Sim) GravityInterval() float64 {
	return s.gravityInterval()
}
