package sim

import "math"

// State is the lifecycle state of the active piece.
type State int

const (
	StateFalling  State = iota
	StateLocked         // transient: cells committed, next spawn pending
	StateGameOver       // terminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateLocked:
		return "locked"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// piece is the active tetromino. x, y is the top-left of its bounding box.
type piece struct {
	kind Kind
	rot  int
	x, y int
}

func (p piece) shape() Shape {
	return ShapeOf(p.kind, p.rot)
}

// tryMove shifts the piece by (dx, dy) if the target is free.
func (s *Sim) tryMove(dx, dy int) bool {
	nx, ny := s.piece.x+dx, s.piece.y+dy
	if !s.board.CanPlace(s.piece.shape(), nx, ny) {
		return false
	}
	s.piece.x, s.piece.y = nx, ny
	return true
}

// tryRotate turns the piece in place by dir states. There is no kick search.
func (s *Sim) tryRotate(dir int) bool {
	n := s.piece.kind.Rotations()
	rot := ((s.piece.rot+dir)%n + n) % n
	if rot == s.piece.rot {
		return n == 1
	}
	if !s.board.CanPlace(ShapeOf(s.piece.kind, rot), s.piece.x, s.piece.y) {
		return false
	}
	s.piece.rot = rot
	return true
}

// timeEpsilon absorbs rounding in host clocks built from tick counts.
const timeEpsilon = 1e-9

// gravityInterval returns the seconds per row at the current level.
// Level 1 runs at the base interval, whatever level the run started on.
func (s *Sim) gravityInterval() float64 {
	steps := s.level - 1
	interval := s.cfg.gravity * math.Pow(s.cfg.speedFactor, float64(steps))
	if interval < s.cfg.minInterval {
		interval = s.cfg.minInterval
	}
	return interval
}

// applyGravity drops the piece one row once its interval has elapsed,
// locking it in place when the row below is blocked.
func (s *Sim) applyGravity(fastFall bool) {
	now := s.host.Time()
	interval := s.gravityInterval()
	if fastFall && s.cfg.fastFall < interval {
		interval = s.cfg.fastFall
	}
	if now-s.lastGravity+timeEpsilon < interval {
		return
	}
	s.lastGravity = now

	if s.tryMove(0, 1) {
		return
	}
	s.lockPiece()
}

// lockPiece commits the active piece, clears rows and spawns the next one.
func (s *Sim) lockPiece() {
	s.state = StateLocked
	s.board.Lock(s.piece.shape(), s.piece.x, s.piece.y)
	s.logger.Debug("piece locked", "kind", s.piece.kind, "x", s.piece.x, "y", s.piece.y)

	if cleared := s.board.ClearFullRows(); cleared > 0 {
		s.award(cleared)
	}
	s.spawn()
}

// award adds line-clear points and advances the level.
func (s *Sim) award(cleared int) {
	points := lineScores[len(lineScores)-1]
	if cleared < len(lineScores) {
		points = lineScores[cleared]
	}
	s.score += points * s.level
	s.lines += cleared

	level := s.cfg.startLevel + s.lines/s.cfg.linesPerLevel
	if level != s.level {
		s.logger.Debug("level up", "level", level)
	}
	s.level = level
	s.logger.Debug("rows cleared", "rows", cleared, "lines", s.lines, "score", s.score)
}

// spawnX is the fixed spawn column: the piece box centred on the board.
func (s *Sim) spawnX() int {
	return (s.board.Width() - MaxWidth) / 2
}

// spawn places a fresh piece at the spawn origin, ending the game if it
// overlaps locked cells.
func (s *Sim) spawn() {
	kind := s.rand.next(s.host.Seed())
	s.piece = piece{kind: kind, rot: 0, x: s.spawnX(), y: 0}
	s.pieces++

	if !s.board.CanPlace(s.piece.shape(), s.piece.x, s.piece.y) {
		s.state = StateGameOver
		s.logger.Debug("game over", "score", s.score, "lines", s.lines, "pieces", s.pieces)
		return
	}
	s.state = StateFalling
}
