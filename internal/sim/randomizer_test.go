package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagDealsEveryKindOncePerBag(t *testing.T) {
	r := newRandomizer(PolicyBag, make([]byte, KindCount))
	seeds := []uint64{5, 1, 99, 0, 12, 7, 3, 8, 8, 8, 8, 8, 8, 8}

	for bag := 0; bag < 2; bag++ {
		seen := make(map[Kind]int)
		for _, seed := range seeds[bag*7 : bag*7+7] {
			k := r.next(seed)
			require.True(t, k < KindCount, "kind %d out of range", k)
			seen[k]++
		}
		assert.Len(t, seen, int(KindCount), "bag %d", bag)
	}
}

func TestRandomizerDeterministic(t *testing.T) {
	for _, policy := range []Policy{PolicyBag, PolicyUniform} {
		t.Run(policy.String(), func(t *testing.T) {
			a := newRandomizer(policy, make([]byte, KindCount))
			b := newRandomizer(policy, make([]byte, KindCount))
			for seed := uint64(0); seed < 100; seed++ {
				v := seed * 2654435761
				require.Equal(t, a.next(v), b.next(v))
			}
		})
	}
}

func TestUniformMapsSeedModKinds(t *testing.T) {
	r := newRandomizer(PolicyUniform, make([]byte, KindCount))

	assert.Equal(t, KindI, r.next(0))
	assert.Equal(t, KindL, r.next(6))
	assert.Equal(t, KindO, r.next(8))
}

func TestSpawnConsumesOneSeed(t *testing.T) {
	h := newFakeHost(1, 2, 3)
	s := newTestSim(t, h)
	require.Equal(t, 1, h.next)

	s.piece.y = s.MatrixHeight() - 2
	s.piece.kind, s.piece.rot, s.piece.x = KindO, 0, 0
	h.now = DefaultGravityInterval
	s.Update()

	assert.Equal(t, 2, h.next)
}

func TestParsePolicy(t *testing.T) {
	p, ok := ParsePolicy("uniform")
	assert.True(t, ok)
	assert.Equal(t, PolicyUniform, p)

	p, ok = ParsePolicy("")
	assert.True(t, ok)
	assert.Equal(t, PolicyBag, p)

	_, ok = ParsePolicy("sevenbag")
	assert.False(t, ok)
}
