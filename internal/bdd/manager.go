package bdd

import "math"

// Node is an opaque handle into a Manager's node table. The low bit is a
// complement tag; the remaining bits are a node-table index. Node's zero
// value denotes the constant-true terminal.
type Node int32

const termSentinelLevel = int32(math.MaxInt32)

type bnode struct {
	level     int32 // variable ordinal this node decides on; terminal uses termSentinelLevel
	low, high Node  // else/then edges; high (then) is always regular by construction
}

type ukey struct {
	level     int32
	low, high Node
}

type andKey struct {
	a, b Node
}

// Manager owns one ROBDD's node table. It is built once per constraint
// split, queried by the path-count DP and the sampler, and discarded; see
// package doc for the lifecycle rationale.
type Manager struct {
	numVars int
	nodes   []bnode
	unique  map[ukey]int32
	vars    []Node // cache of already-created ithVar nodes; varBuilt[i] records whether vars[i] is set
	varBuilt []bool
	andCache map[andKey]Node
	liveRefs int64
}

// New creates a Manager for a ROBDD over numVars boolean variables, indexed
// [0, numVars).
func New(numVars int) (*Manager, error) {
	if numVars < 0 {
		return nil, errNotInit
	}
	m := &Manager{
		numVars:  numVars,
		nodes:    make([]bnode, 1, 1024),
		unique:   make(map[ukey]int32, 1024),
		vars:     make([]Node, numVars),
		varBuilt: make([]bool, numVars),
		andCache: make(map[andKey]Node, 1024),
	}
	m.nodes[0] = bnode{level: termSentinelLevel}
	return m, nil
}

// ReadOne returns the constant-true terminal.
func (m *Manager) ReadOne() Node { return mkHandle(0, false) }

// ReadLogicZero returns the constant-false terminal.
func (m *Manager) ReadLogicZero() Node { return mkHandle(0, true) }

// Regular clears n's complement tag.
func (m *Manager) Regular(n Node) Node { return n &^ 1 }

// IsComplement reports whether n carries the complement tag.
func (m *Manager) IsComplement(n Node) bool { return n&1 != 0 }

// Not returns the complement of n. O(1): it only toggles the tag bit.
func (m *Manager) Not(n Node) Node { return n ^ 1 }

// NodeReadIndex returns the variable ordinal n's regular node is labelled
// with, or -1 for a terminal.
func (m *Manager) NodeReadIndex(n Node) int {
	idx := idxOf(m.Regular(n))
	if idx == 0 {
		return -1
	}
	return int(m.nodes[idx].level)
}

// T returns the then (high) branch of a regular node n.
func (m *Manager) T(n Node) Node {
	return m.nodes[idxOf(m.Regular(n))].high
}

// E returns the else (low) branch of a regular node n.
func (m *Manager) E(n Node) Node {
	return m.nodes[idxOf(m.Regular(n))].low
}

// Acquire increments the manager-wide live-handle counter. Because the
// engine never reclaims node-table space mid-build (see package doc), this
// is bookkeeping only: it lets Close verify every handle a caller acquired
// was also released, without implementing true garbage collection.
func (m *Manager) Acquire(n Node) Node {
	m.liveRefs++
	return n
}

// Release decrements the live-handle counter acquired by Acquire.
func (m *Manager) Release(Node) {
	m.liveRefs--
}

// Close tears down the manager. Per §5, every acquired handle must be
// released before tear-down; Close reports an error if that invariant was
// violated instead of silently ignoring a leak.
func (m *Manager) Close() error {
	if m.liveRefs != 0 {
		return errLiveHandles
	}
	m.nodes = nil
	m.unique = nil
	m.andCache = nil
	return nil
}

// IthVar returns the Node for the i'th BDD variable, creating it on first
// use.
func (m *Manager) IthVar(i int) (Node, error) {
	if i < 0 || i >= m.numVars {
		return 0, errVarRange
	}
	if m.varBuilt[i] {
		return m.vars[i], nil
	}
	h := m.mk(int32(i), m.ReadLogicZero(), m.ReadOne())
	m.vars[i] = h
	m.varBuilt[i] = true
	return h, nil
}

// And returns the canonical AND of a and b.
func (m *Manager) And(a, b Node) (Node, error) {
	one, zero := m.ReadOne(), m.ReadLogicZero()
	switch {
	case a == zero || b == zero:
		return zero, nil
	case a == one:
		return b, nil
	case b == one:
		return a, nil
	case a == b:
		return a, nil
	case a == m.Not(b):
		return zero, nil
	}

	x, y := a, b
	if x > y {
		x, y = y, x
	}
	key := andKey{x, y}
	if v, ok := m.andCache[key]; ok {
		return v, nil
	}

	ra, rb := m.Regular(a), m.Regular(b)
	la, lb := m.nodes[idxOf(ra)].level, m.nodes[idxOf(rb)].level
	top := la
	if lb < top {
		top = lb
	}

	aT, aE := m.cofactor(a, top, la)
	bT, bE := m.cofactor(b, top, lb)

	resT, err := m.And(aT, bT)
	if err != nil {
		return 0, err
	}
	resE, err := m.And(aE, bE)
	if err != nil {
		return 0, err
	}
	res := m.mk(top, resE, resT)
	m.andCache[key] = res
	return res, nil
}

// cofactor returns the (then, else) pair of n with respect to variable
// level top, given n's own top level. If n does not depend on top (its
// level sorts after top, including the terminal sentinel), both cofactors
// equal n itself.
func (m *Manager) cofactor(n Node, top, level int32) (t, e Node) {
	if level != top {
		return n, n
	}
	r := m.Regular(n)
	c := m.IsComplement(n)
	t, e = m.T(r), m.E(r)
	if c {
		t, e = m.Not(t), m.Not(e)
	}
	return t, e
}

// mk looks up or creates the node (level, e, t), normalizing so the
// then-edge stored in the unique table is always regular.
func (m *Manager) mk(level int32, e, t Node) Node {
	if e == t {
		return e
	}
	comp := m.IsComplement(t)
	tt, ee := t, e
	if comp {
		tt, ee = m.Not(t), m.Not(e)
	}
	key := ukey{level, ee, tt}
	if idx, ok := m.unique[key]; ok {
		return mkHandle(idx, comp)
	}
	m.nodes = append(m.nodes, bnode{level: level, low: ee, high: tt})
	idx := int32(len(m.nodes) - 1)
	m.unique[key] = idx
	return mkHandle(idx, comp)
}

func idxOf(n Node) int32 { return int32(n) >> 1 }

func mkHandle(idx int32, comp bool) Node {
	h := Node(idx) << 1
	if comp {
		h |= 1
	}
	return h
}
