package bdd

import "github.com/hwrand/robdd/internal/aag"

// Build translates an AAG into a ROBDD, per §4.D: one variable per input,
// one And per gate, walked in file order so every gate's operands are
// already resolved by the time it is built. Constant literal 0 is
// constant-false and literal 1 its complement, per §3's AAG literal
// convention.
//
// If the AAG has no AND gates, the whole input space is a solution and the
// output root is unconditionally readOne(), regardless of the output
// literal's polarity (§4.D).
func Build(f *aag.File) (*Manager, Node, error) {
	m, err := New(len(f.Inputs))
	if err != nil {
		return nil, 0, err
	}
	if len(f.Gates) == 0 {
		return m, m.Acquire(m.ReadOne()), nil
	}

	handles := make(map[int]Node, len(f.Inputs)+len(f.Gates))
	for k, lit := range f.Inputs {
		v, err := m.IthVar(k)
		if err != nil {
			return nil, 0, err
		}
		handles[lit/2] = v
	}

	resolve := func(lit int) Node {
		idx := lit / 2
		h := m.ReadLogicZero() // node index 0 is the constant-false base
		if idx != 0 {
			h = handles[idx]
		}
		if lit&1 == 1 {
			h = m.Not(h)
		}
		return h
	}

	for _, g := range f.Gates {
		res, err := m.And(resolve(g.In1), resolve(g.In2))
		if err != nil {
			return nil, 0, err
		}
		handles[g.Out/2] = res
	}

	root := resolve(f.Output)
	return m, m.Acquire(root), nil
}
