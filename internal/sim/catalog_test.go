package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	wantRotations := map[Kind]int{
		KindI: 2, KindO: 1, KindT: 4, KindS: 2, KindZ: 2, KindJ: 4, KindL: 4,
	}

	for k := range KindCount {
		t.Run(k.String(), func(t *testing.T) {
			require.Equal(t, wantRotations[k], k.Rotations())

			seen := make(map[Shape]bool)
			for rot := range k.Rotations() {
				shape := ShapeOf(k, rot)
				assert.Equal(t, 4, shape.Count(), "rotation %d", rot)
				assert.Len(t, shape.Cells(), 4)
				assert.False(t, seen[shape], "rotation %d duplicates an earlier state", rot)
				seen[shape] = true
			}
		})
	}
}

func TestShapeHas(t *testing.T) {
	tShape := ShapeOf(KindT, 0)

	assert.True(t, tShape.Has(1, 0))
	assert.True(t, tShape.Has(0, 1))
	assert.True(t, tShape.Has(1, 1))
	assert.True(t, tShape.Has(2, 1))
	assert.False(t, tShape.Has(0, 0))
	assert.False(t, tShape.Has(-1, 0))
	assert.False(t, tShape.Has(0, MaxHeight))

	assert.Equal(t, []Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, tShape.Cells())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", KindI.String())
	assert.Equal(t, "L", KindL.String())
	assert.Equal(t, "?", KindCount.String())
}
