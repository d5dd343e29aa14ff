package verilog

import "sort"

// unionFind is a standard disjoint-set structure over [0, n), with path
// compression and union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// PartitionResult is the result of splitting a Module into independent
// sub-modules by variable co-occurrence (§4.B).
type PartitionResult struct {
	SetCount           int
	VariableToSet      []int // indexed by variable ordinal
	ConstraintToSet    []int // indexed by constraint ordinal
	ConstraintToVar    []int // indexed by constraint ordinal, -1 for variable-free constraints
}

// Partition computes the connected components of m's variable-sharing graph
// and assigns every constraint to a component, per §4.B. A constraint
// touching zero variables is assigned to pseudo-component 0.
func Partition(m *Module) *PartitionResult {
	uf := newUnionFind(m.TotalVariables())
	constraintToVar := make([]int, m.TotalConstraints())

	for _, c := range m.Constraints {
		if len(c.Vars) == 0 {
			constraintToVar[c.Ordinal] = -1
			continue
		}
		first := c.Vars[0]
		for _, v := range c.Vars[1:] {
			uf.union(first, v)
		}
		constraintToVar[c.Ordinal] = first
	}

	variableToSet := make([]int, m.TotalVariables())
	rootToSet := map[int]int{}
	nextSet := 0
	for ord := 0; ord < m.TotalVariables(); ord++ {
		root := uf.find(ord)
		set, ok := rootToSet[root]
		if !ok {
			set = nextSet
			rootToSet[root] = set
			nextSet++
		}
		variableToSet[ord] = set
	}
	if nextSet == 0 {
		// No variables at all is degenerate but still needs set 0 to exist
		// so that variable-free constraints have somewhere to land.
		nextSet = 1
	}

	constraintToSet := make([]int, m.TotalConstraints())
	for _, c := range m.Constraints {
		if constraintToVar[c.Ordinal] < 0 {
			constraintToSet[c.Ordinal] = 0
			continue
		}
		constraintToSet[c.Ordinal] = variableToSet[constraintToVar[c.Ordinal]]
	}

	return &PartitionResult{
		SetCount:        nextSet,
		VariableToSet:   variableToSet,
		ConstraintToSet: constraintToSet,
		ConstraintToVar: constraintToVar,
	}
}

// VariablesOf returns the variable ordinals assigned to set s, ascending.
func (p *PartitionResult) VariablesOf(s int) []int {
	var out []int
	for ord, set := range p.VariableToSet {
		if set == s {
			out = append(out, ord)
		}
	}
	sort.Ints(out)
	return out
}

// ConstraintsOf returns the constraint ordinals assigned to set s, ascending.
func (p *PartitionResult) ConstraintsOf(s int) []int {
	var out []int
	for ord, set := range p.ConstraintToSet {
		if set == s {
			out = append(out, ord)
		}
	}
	sort.Ints(out)
	return out
}
