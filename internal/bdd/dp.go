package bdd

import "math/big"

// precision is the mantissa width used for path-count weights: 128 bits,
// per §3/§4.E and §9's "extended-precision path counts" design note. The
// sampler only ever consumes the ratio of two such weights, so relative
// rounding error of this magnitude is immaterial.
const precision = 128

// Weights is the (odd, even) path-count pair for a ROBDD handle: the
// number of root-to-constant-1 paths reached through an odd (resp. even)
// number of complement edges, per §3's "path-count entry".
type Weights struct {
	Odd, Even *big.Float
}

// Counter memoizes path counts on the polarity-resolved handle, as §4.E
// requires.
type Counter struct {
	m    *Manager
	memo map[Node]Weights
}

// NewCounter returns a Counter bound to m.
func NewCounter(m *Manager) *Counter {
	return &Counter{m: m, memo: make(map[Node]Weights, 1024)}
}

func zeroF() *big.Float { return new(big.Float).SetPrec(precision) }

func oneF() *big.Float { return new(big.Float).SetPrec(precision).SetInt64(1) }

func addF(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(precision).Add(a, b)
}

// DP computes dp(h) per §4.E: the recursive path-count pair, memoized on
// the resolved handle h (complement tag included).
func (c *Counter) DP(h Node) Weights {
	if h == c.m.ReadOne() {
		return Weights{Odd: zeroF(), Even: oneF()}
	}
	if h == c.m.ReadLogicZero() {
		return Weights{Odd: zeroF(), Even: zeroF()}
	}
	if w, ok := c.memo[h]; ok {
		return w
	}

	r := c.m.Regular(h)
	comp := c.m.IsComplement(h)

	to, te := c.dpEdge(c.m.T(r), comp)
	eo, ee := c.dpEdge(c.m.E(r), comp)

	odd := addF(to, eo)
	even := addF(te, ee)
	if comp {
		odd, even = even, odd
	}
	w := Weights{Odd: odd, Even: even}
	c.memo[h] = w
	return w
}

// dpEdge propagates parentComplement through a child edge before
// recursing: complementing a subtree flips the parity of every path below
// it, so the child's own polarity must absorb the parent's tag before the
// memo lookup.
func (c *Counter) dpEdge(child Node, parentComplement bool) (odd, even *big.Float) {
	resolved := child
	if parentComplement {
		resolved = c.m.Not(child)
	}
	w := c.DP(resolved)
	return w.Odd, w.Even
}
