package bdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func eq(t *testing.T, a, b Weights) {
	t.Helper()
	require.Zero(t, a.Odd.Cmp(b.Odd), "odd mismatch: %s vs %s", a.Odd.Text('f', -1), b.Odd.Text('f', -1))
	require.Zero(t, a.Even.Cmp(b.Even), "even mismatch: %s vs %s", a.Even.Text('f', -1), b.Even.Text('f', -1))
}

func TestDP_terminals(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	c := NewCounter(m)
	eq(t, Weights{Odd: zeroF(), Even: oneF()}, c.DP(m.ReadOne()))
	eq(t, Weights{Odd: zeroF(), Even: zeroF()}, c.DP(m.ReadLogicZero()))
}

// A bare literal has exactly one path to 1 through zero complement edges,
// and its negation the mirror image (§3's dp(ithVar) invariant).
func TestDP_bareLiteral(t *testing.T) {
	m, err := New(1)
	require.NoError(t, err)
	x0, err := m.IthVar(0)
	require.NoError(t, err)
	c := NewCounter(m)

	eq(t, Weights{Odd: zeroF(), Even: oneF()}, c.DP(x0))
	eq(t, Weights{Odd: oneF(), Even: zeroF()}, c.DP(m.Not(x0)))
}

// Testable property 4, "DP parity law": negating a handle swaps its odd
// and even path counts, for any constructed diagram, not just literals.
func TestDP_parityLaw(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, err := m.IthVar(0)
	require.NoError(t, err)
	x1, err := m.IthVar(1)
	require.NoError(t, err)
	x2, err := m.IthVar(2)
	require.NoError(t, err)

	a, err := m.And(x0, m.Not(x1))
	require.NoError(t, err)
	h, err := m.And(a, x2)
	require.NoError(t, err)

	c := NewCounter(m)
	w := c.DP(h)
	nw := c.DP(m.Not(h))
	eq(t, Weights{Odd: w.Even, Even: w.Odd}, nw)
}

// The conjunction of 3 independent literals has exactly one satisfying
// path out of 8 possible assignments, reached through an even number of
// complement edges in this diagram's construction.
func TestDP_conjunctionHasOneSolution(t *testing.T) {
	m, err := New(3)
	require.NoError(t, err)
	x0, err := m.IthVar(0)
	require.NoError(t, err)
	x1, err := m.IthVar(1)
	require.NoError(t, err)
	x2, err := m.IthVar(2)
	require.NoError(t, err)

	a, err := m.And(x0, x1)
	require.NoError(t, err)
	h, err := m.And(a, x2)
	require.NoError(t, err)

	c := NewCounter(m)
	w := c.DP(h)
	total := addF(w.Odd, w.Even)
	require.Zero(t, total.Cmp(oneF()))
}
