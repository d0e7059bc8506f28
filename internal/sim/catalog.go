package sim

import "math/bits"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount
)

// Bounding box shared by every kind. Pieces may occupy less of it.
const (
	MaxWidth  = 4
	MaxHeight = 4
)

// Shape is a MaxWidth x MaxHeight occupancy mask; bit y*MaxWidth+x is cell (x, y).
type Shape uint16

// Has reports whether local cell (x, y) is occupied. Out-of-box cells are empty.
func (s Shape) Has(x, y int) bool {
	if x < 0 || x >= MaxWidth || y < 0 || y >= MaxHeight {
		return false
	}
	return s&(1<<(y*MaxWidth+x)) != 0
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Cell is an (x, y) offset inside a shape's bounding box.
type Cell struct {
	X, Y int
}

// Cells returns the occupied offsets in row-major order.
func (s Shape) Cells() []Cell {
	cells := make([]Cell, 0, s.Count())
	for y := range MaxHeight {
		for x := range MaxWidth {
			if s.Has(x, y) {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// shapes holds every rotation state, clockwise from the spawn orientation.
// Symmetric kinds list only their distinct states.
var shapes = [KindCount][]Shape{
	KindI: {
		0x00F0, // .... / XXXX / .... / ....
		0x4444, // ..X. / ..X. / ..X. / ..X.
	},
	KindO: {
		0x0066, // .XX. / .XX.
	},
	KindT: {
		0x0072, // .X.. / XXX.
		0x0262, // .X.. / .XX. / .X..
		0x0270, // .... / XXX. / .X..
		0x0232, // .X.. / XX.. / .X..
	},
	KindS: {
		0x0036, // .XX. / XX..
		0x0462, // .X.. / .XX. / ..X.
	},
	KindZ: {
		0x0063, // XX.. / .XX.
		0x0264, // ..X. / .XX. / .X..
	},
	KindJ: {
		0x0071, // X... / XXX.
		0x0226, // .XX. / .X.. / .X..
		0x0470, // .... / XXX. / ..X.
		0x0322, // .X.. / .X.. / XX..
	},
	KindL: {
		0x0074, // ..X. / XXX.
		0x0622, // .X.. / .X.. / .XX.
		0x0170, // .... / XXX. / X...
		0x0223, // XX.. / .X.. / .X..
	},
}

// Rotations returns the number of distinct rotation states of the kind.
func (k Kind) Rotations() int {
	return len(shapes[k])
}

// ShapeOf returns the static shape of kind k in rotation state rot.
// Callers must pass a valid kind and 0 <= rot < k.Rotations().
func ShapeOf(k Kind, rot int) Shape {
	return shapes[k][rot]
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	if k >= KindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}
