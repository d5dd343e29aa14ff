package sample

// Aggregator OR-merges the reshaped per-split samples for each of the
// solution_num drawn assignments into one final, disjoint-variable result
// (§4.G). Variables owned by a split are only ever written by that split's
// contribution; variables foreign to a split stay false there, so OR-merge
// preserves whichever split actually decided a bit.
type Aggregator struct {
	oriInputNum int
	width       []int
	final       [][][]bool // [solution index][variable][bit]
}

// NewAggregator allocates a zeroed aggregate for solutionNum assignments
// over oriInputNum variables of the given widths.
func NewAggregator(solutionNum, oriInputNum int, width []int) *Aggregator {
	final := make([][][]bool, solutionNum)
	for i := range final {
		final[i] = make([][]bool, oriInputNum)
		for x := 0; x < oriInputNum; x++ {
			final[i][x] = make([]bool, width[x])
		}
	}
	return &Aggregator{oriInputNum: oriInputNum, width: width, final: final}
}

// Merge OR-combines a split's reshaped sample for assignment index i into
// the aggregate.
func (a *Aggregator) Merge(i int, reshaped [][]bool) {
	for x, bits := range reshaped {
		for y, b := range bits {
			if b {
				a.final[i][x][y] = true
			}
		}
	}
}

// Result returns the aggregate: final[i][x][y].
func (a *Aggregator) Result() [][][]bool { return a.final }
