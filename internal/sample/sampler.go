// Package sample draws uniform satisfying assignments from a built ROBDD
// (§4.F), reshapes the bit-level draws back into multi-bit variables, and
// OR-merges per-split contributions into one aggregate (§4.G).
package sample

import (
	"math/big"
	"math/rand"

	"github.com/hwrand/robdd/internal/bdd"
)

// MaxRetries bounds the defensive retry loop per draw. With a correct DP a
// single attempt always succeeds on a satisfiable function (§9); retries
// exist only to absorb floating-point edge cases, never to paper over a
// logic bug.
const MaxRetries = 10

// Drawer samples assignments from one split's ROBDD.
type Drawer struct {
	m        *bdd.Manager
	c        *bdd.Counter
	inputNum int
}

// NewDrawer binds a Drawer to m's node table, counted by c, over inputNum
// BDD variables.
func NewDrawer(m *bdd.Manager, c *bdd.Counter, inputNum int) *Drawer {
	return &Drawer{m: m, c: c, inputNum: inputNum}
}

// Draw samples one assignment satisfying root. If every retry is exhausted
// (§7 sampler shortfall), it returns the all-false default rather than
// aborting the run.
func (d *Drawer) Draw(root bdd.Node, rng *rand.Rand) []bool {
	for attempt := 0; attempt < MaxRetries; attempt++ {
		out := make([]bool, d.inputNum)
		if d.drawOnce(root, rng, out) {
			return out
		}
	}
	return make([]bool, d.inputNum)
}

func (d *Drawer) drawOnce(root bdd.Node, rng *rand.Rand, out []bool) bool {
	w := d.c.DP(root)
	seekOdd := w.Odd.Sign() > 0
	if seekOdd && w.Even.Sign() > 0 {
		// Satisfying paths fall into both parity buckets: pick one in
		// proportion to its share so every satisfying path stays reachable.
		sum := new(big.Float).SetPrec(128).Add(w.Odd, w.Even)
		p, _ := new(big.Float).SetPrec(128).Quo(w.Odd, sum).Float64()
		seekOdd = rng.Float64() < p
	}
	return d.recurse(root, seekOdd, rng, out)
}

// recurse implements §4.F's sample(h, odd, out): h always arrives here
// already polarity-resolved (Not applied wherever an ancestor's complement
// tag demanded it), and odd is the parity target in effect at this level.
func (d *Drawer) recurse(h bdd.Node, odd bool, rng *rand.Rand, out []bool) bool {
	one, zero := d.m.ReadOne(), d.m.ReadLogicZero()
	if h == one || h == zero {
		// odd tracks the target parity bucket propagated down from the
		// root, flipped at every complemented edge crossed so far; a
		// path genuinely belongs to dp(root)'s targeted bucket only when
		// the terminal it lands on disagrees with that propagated flag.
		return (h == one) != odd
	}

	r := d.m.Regular(h)
	c := d.m.IsComplement(h)
	t, e := d.m.T(r), d.m.E(r)
	if c {
		t, e = d.m.Not(t), d.m.Not(e)
		odd = !odd
	}

	wT := weight(d.c.DP(t), odd)
	wE := weight(d.c.DP(e), odd)

	p := 0.5
	if sum := new(big.Float).SetPrec(128).Add(wT, wE); sum.Sign() > 0 {
		ratio := new(big.Float).SetPrec(128).Quo(wT, sum)
		p, _ = ratio.Float64()
	}

	varIndex := d.m.NodeReadIndex(r)
	if rng.Float64() < p {
		out[varIndex] = true
		return d.recurse(t, odd, rng, out)
	}
	out[varIndex] = false
	return d.recurse(e, odd, rng, out)
}

func weight(w bdd.Weights, odd bool) *big.Float {
	if odd {
		return w.Odd
	}
	return w.Even
}
