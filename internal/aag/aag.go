// Package aag loads the classical ASCII AIGER 1.0 grammar for combinational
// circuits: a header, input literals, (zero) latch literals, one output
// literal, AND gate lines, and an optional symbol table mapping each input
// to the (variable, bit) pair it was generated from.
package aag

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Symbol is the (variable ordinal, bit position) pair an AAG input was
// generated from. The loader leaves it at its zero value when no symbol
// line names the input.
type Symbol struct {
	Var int
	Bit int
}

// Gate is one AND line: `o i1 i2`, all AAG literals.
type Gate struct {
	Out, In1, In2 int
}

// File is a fully parsed AAG file.
type File struct {
	MaxVar int // M: largest variable index used by any literal
	Inputs []int // the I input literals, in header order
	Output int   // the single output literal
	Gates  []Gate

	// Symbols maps input position k (index into Inputs) to its declared
	// (var, bit) pair. Missing entries default to the zero Symbol, per §6's
	// tolerance for a missing symbol table.
	Symbols []Symbol

	// OriInputNum and Width are derived from the symbol table: one past the
	// highest variable ordinal referenced, and the per-variable bit width
	// (one past the highest bit referenced for that variable).
	OriInputNum int
	Width       []int
}

// Load parses an AAG file from r.
func Load(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<22)

	if !sc.Scan() {
		return nil, fmt.Errorf("aag: empty input")
	}
	header := strings.Fields(sc.Text())
	if len(header) != 6 || header[0] != "aag" {
		return nil, fmt.Errorf("aag: bad header %q", sc.Text())
	}
	nums := make([]int, 5)
	for i, tok := range header[1:] {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("aag: bad header field %q: %w", tok, err)
		}
		nums[i] = n
	}
	m, i, l, o, a := nums[0], nums[1], nums[2], nums[3], nums[4]
	if l != 0 {
		return nil, fmt.Errorf("aag: latches not supported (L=%d), circuit must be combinational", l)
	}
	if o != 1 {
		return nil, fmt.Errorf("aag: expected exactly one output (O=%d)", o)
	}

	f := &File{MaxVar: m, Inputs: make([]int, 0, i), Symbols: make([]Symbol, i)}

	for k := 0; k < i; k++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("aag: truncated input list at entry %d", k)
		}
		lit, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, fmt.Errorf("aag: bad input literal %q: %w", sc.Text(), err)
		}
		f.Inputs = append(f.Inputs, lit)
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("aag: truncated output line")
	}
	outLit, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("aag: bad output literal %q: %w", sc.Text(), err)
	}
	f.Output = outLit

	f.Gates = make([]Gate, 0, a)
	for k := 0; k < a; k++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("aag: truncated AND list at entry %d", k)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("aag: malformed AND line %q", sc.Text())
		}
		g := Gate{}
		vals := make([]int, 3)
		for j, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("aag: bad AND literal %q: %w", tok, err)
			}
			vals[j] = n
		}
		g.Out, g.In1, g.In2 = vals[0], vals[1], vals[2]
		f.Gates = append(f.Gates, g)
	}

	inputIndex := make(map[int]int, i) // literal -> position in f.Inputs
	for k, lit := range f.Inputs {
		inputIndex[lit] = k
	}

	maxVarOrd, maxBit := -1, map[int]int{}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "c" || strings.HasPrefix(line, "c ") {
			break
		}
		if line[0] != 'i' {
			continue // latch/output symbol lines are irrelevant here
		}
		rest := line[1:]
		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			continue
		}
		k, err := strconv.Atoi(rest[:sp])
		if err != nil || k < 0 || k >= len(f.Inputs) {
			continue
		}
		sym, ok := parseSymbolName(strings.TrimSpace(rest[sp+1:]))
		if !ok {
			continue
		}
		f.Symbols[k] = sym
		if sym.Var > maxVarOrd {
			maxVarOrd = sym.Var
		}
		if sym.Bit > maxBit[sym.Var] {
			maxBit[sym.Var] = sym.Bit
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("aag: scanning input: %w", err)
	}

	f.OriInputNum = maxVarOrd + 1
	if f.OriInputNum < 1 {
		f.OriInputNum = 1
	}
	f.Width = make([]int, f.OriInputNum)
	for v, bit := range maxBit {
		f.Width[v] = bit + 1
	}
	for v := range f.Width {
		if f.Width[v] == 0 {
			f.Width[v] = 1
		}
	}
	return f, nil
}

// parseSymbolName parses a "var_<x>[<y>]" symbol annotation.
func parseSymbolName(s string) (Symbol, bool) {
	if !strings.HasPrefix(s, "var_") {
		return Symbol{}, false
	}
	s = s[len("var_"):]
	lb := strings.IndexByte(s, '[')
	rb := strings.IndexByte(s, ']')
	if lb < 0 || rb < 0 || rb < lb {
		return Symbol{}, false
	}
	x, err1 := strconv.Atoi(s[:lb])
	y, err2 := strconv.Atoi(s[lb+1 : rb])
	if err1 != nil || err2 != nil {
		return Symbol{}, false
	}
	return Symbol{Var: x, Bit: y}, true
}
