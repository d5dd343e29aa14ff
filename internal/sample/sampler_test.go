package sample

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwrand/robdd/internal/aag"
	"github.com/hwrand/robdd/internal/bdd"
)

// Drawing from out = i0 & i1 must always yield the single satisfying
// assignment (true, true), for every seed.
func TestDrawer_conjunctionAlwaysSatisfies(t *testing.T) {
	f := &aag.File{
		MaxVar: 3,
		Inputs: []int{2, 4},
		Output: 6,
		Gates:  []aag.Gate{{Out: 6, In1: 2, In2: 4}},
	}
	m, root, err := bdd.Build(f)
	require.NoError(t, err)
	c := bdd.NewCounter(m)
	d := NewDrawer(m, c, len(f.Inputs))

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out := d.Draw(root, rng)
		require.Equal(t, []bool{true, true}, out)
	}

	m.Release(root)
	require.NoError(t, m.Close())
}

// A trivially-true circuit (no gates) leaves every input a don't-care, so
// every draw must stay at the all-false default.
func TestDrawer_trivialTrueLeavesDontCaresFalse(t *testing.T) {
	f := &aag.File{MaxVar: 1, Inputs: []int{2}, Output: 3}
	m, root, err := bdd.Build(f)
	require.NoError(t, err)
	c := bdd.NewCounter(m)
	d := NewDrawer(m, c, len(f.Inputs))

	rng := rand.New(rand.NewSource(1))
	out := d.Draw(root, rng)
	require.Equal(t, []bool{false}, out)

	m.Release(root)
	require.NoError(t, m.Close())
}

// Same seed, same input, same engine must reproduce byte-identical draws
// (§5's determinism requirement).
func TestDrawer_deterministicForFixedSeed(t *testing.T) {
	f := &aag.File{
		MaxVar: 3,
		Inputs: []int{2, 4},
		Output: 6,
		Gates:  []aag.Gate{{Out: 6, In1: 2, In2: 4}},
	}

	draw := func() []bool {
		m, root, err := bdd.Build(f)
		require.NoError(t, err)
		c := bdd.NewCounter(m)
		d := NewDrawer(m, c, len(f.Inputs))
		rng := rand.New(rand.NewSource(42))
		out := d.Draw(root, rng)
		m.Release(root)
		require.NoError(t, m.Close())
		return out
	}

	require.Equal(t, draw(), draw())
}
