package sample

import "github.com/hwrand/robdd/internal/aag"

// Reshape maps a flat, BDD-variable-indexed sample vector back into the
// original multi-bit input variables (§4.G). Dimensions are taken from the
// *global* variable count and widths (recovered from json2verilog.v, §6),
// not from the split's own AAG, so every split's reshaped sample can be
// OR-merged directly into the aggregate without re-indexing.
//
// Bit order is MSB-first: position w[x]-1-y carries the value of var_x[y].
func Reshape(oriInputNum int, width []int, f *aag.File, sample []bool) [][]bool {
	rs := make([][]bool, oriInputNum)
	for x := range rs {
		rs[x] = make([]bool, width[x])
	}
	for k, sym := range f.Symbols {
		if sym.Var < 0 || sym.Var >= oriInputNum {
			continue
		}
		pos := width[sym.Var] - 1 - sym.Bit
		if pos < 0 || pos >= len(rs[sym.Var]) {
			continue
		}
		if k < len(sample) {
			rs[sym.Var][pos] = sample[k]
		}
	}
	return rs
}
