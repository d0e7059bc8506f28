// Package sim implements a host-agnostic falling-block simulation.
// The engine owns the playfield, the active piece and all timing rules;
// allocation, time, entropy and input come from a Host supplied at New.
package sim

// Input identifies a control the engine polls from its host once per update.
type Input int

const (
	InputMoveLeft Input = iota
	InputMoveRight
	InputFastFall
	InputRotateLeft
	InputRotateRight
	InputCount
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputMoveLeft:
		return "MoveLeft"
	case InputMoveRight:
		return "MoveRight"
	case InputFastFall:
		return "FastFall"
	case InputRotateLeft:
		return "RotateLeft"
	case InputRotateRight:
		return "RotateRight"
	default:
		return "Unknown"
	}
}

// Host supplies the capabilities the simulation requires from its environment.
// All methods are called synchronously from New, Update and Close.
type Host interface {
	// Alloc returns a buffer of at least size bytes, or nil on failure.
	Alloc(size int) []byte

	// Free releases a buffer previously returned by Alloc.
	Free(buf []byte)

	// Time returns a non-decreasing timestamp in seconds.
	Time() float64

	// Seed returns entropy for piece selection. Quality is not required.
	Seed() uint64

	// InputPressed reports whether the input is currently held.
	InputPressed(in Input) bool
}

// HostFuncs adapts a set of callbacks sharing one context value to Host.
// Nil Alloc/Free fall back to the Go heap; other nil callbacks report zero values.
type HostFuncs struct {
	AllocFunc        func(ctx any, size int) []byte
	FreeFunc         func(ctx any, buf []byte)
	TimeFunc         func(ctx any) float64
	SeedFunc         func(ctx any) uint64
	InputPressedFunc func(ctx any, in Input) bool
	Context          any
}

// Alloc implements Host.
func (h HostFuncs) Alloc(size int) []byte {
	if h.AllocFunc == nil {
		return make([]byte, size)
	}
	return h.AllocFunc(h.Context, size)
}

// Free implements Host.
func (h HostFuncs) Free(buf []byte) {
	if h.FreeFunc != nil {
		h.FreeFunc(h.Context, buf)
	}
}

// Time implements Host.
func (h HostFuncs) Time() float64 {
	if h.TimeFunc == nil {
		return 0
	}
	return h.TimeFunc(h.Context)
}

// Seed implements Host.
func (h HostFuncs) Seed() uint64 {
	if h.SeedFunc == nil {
		return 0
	}
	return h.SeedFunc(h.Context)
}

// InputPressed implements Host.
func (h HostFuncs) InputPressed(in Input) bool {
	if h.InputPressedFunc == nil {
		return false
	}
	return h.InputPressedFunc(h.Context, in)
}

var _ Host = HostFuncs{}
