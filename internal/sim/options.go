package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Defaults for a standard playfield.
const (
	DefaultWidth            = 10
	DefaultHeight           = 20
	DefaultGravityInterval  = 1.0  // seconds per row
	DefaultFastFallInterval = 0.05 // seconds per row while fast fall is held
	DefaultLinesPerLevel    = 10
	DefaultMinInterval      = 0.05
)

// lineScores are the base points for clearing 0..4 rows at once, multiplied by level.
var lineScores = [...]int{0, 100, 300, 500, 800}

type settings struct {
	width, height int
	gravity       float64
	fastFall      float64
	startLevel    int
	linesPerLevel int
	speedFactor   float64
	minInterval   float64
	policy        Policy
	logger        *log.Logger
}

func defaultSettings() settings {
	return settings{
		width:         DefaultWidth,
		height:        DefaultHeight,
		gravity:       DefaultGravityInterval,
		fastFall:      DefaultFastFallInterval,
		startLevel:    1,
		linesPerLevel: DefaultLinesPerLevel,
		speedFactor:   1,
		minInterval:   DefaultMinInterval,
		policy:        PolicyBag,
	}
}

func (s *settings) validate() error {
	switch {
	case s.width < MaxWidth || s.height < MaxHeight:
		return fmt.Errorf("sim: board %dx%d smaller than piece box %dx%d: %w",
			s.width, s.height, MaxWidth, MaxHeight, ErrInvalidConfig)
	case s.gravity <= 0 || s.fastFall <= 0:
		return fmt.Errorf("sim: gravity intervals must be positive: %w", ErrInvalidConfig)
	case s.startLevel < 1 || s.linesPerLevel < 1:
		return fmt.Errorf("sim: start level and lines per level must be at least 1: %w", ErrInvalidConfig)
	case s.speedFactor <= 0 || s.speedFactor > 1:
		return fmt.Errorf("sim: speed factor %.3f outside (0, 1]: %w", s.speedFactor, ErrInvalidConfig)
	case s.minInterval <= 0 || s.minInterval > s.gravity:
		return fmt.Errorf("sim: min interval %.3f outside (0, %.3f]: %w", s.minInterval, s.gravity, ErrInvalidConfig)
	case s.policy != PolicyBag && s.policy != PolicyUniform:
		return fmt.Errorf("sim: unknown policy %d: %w", s.policy, ErrInvalidConfig)
	}
	return nil
}

// Option customizes a simulation at construction.
type Option func(*settings)

// WithSize sets the playfield dimensions.
func WithSize(width, height int) Option {
	return func(s *settings) {
		s.width = width
		s.height = height
	}
}

// WithGravity sets the seconds per row for normal gravity and for fast fall.
func WithGravity(interval, fastFall float64) Option {
	return func(s *settings) {
		s.gravity = interval
		s.fastFall = fastFall
	}
}

// WithLeveling configures level progression. Every linesPerLevel cleared
// lines raise the level by one and multiply the gravity interval by
// speedFactor, never going below minInterval. A speedFactor of 1 keeps
// gravity constant.
func WithLeveling(startLevel, linesPerLevel int, speedFactor, minInterval float64) Option {
	return func(s *settings) {
		s.startLevel = startLevel
		s.linesPerLevel = linesPerLevel
		s.speedFactor = speedFactor
		s.minInterval = minInterval
	}
}

// WithPolicy sets the piece selection policy.
func WithPolicy(p Policy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithLogger routes engine debug events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: "sim"})
}
