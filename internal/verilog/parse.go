package verilog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	reInput      = regexp.MustCompile(`^input\s*\[\s*(\d+)\s*:\s*0\s*\]\s*var_(\d+)\s*;`)
	reOutput     = regexp.MustCompile(`^output\s+wire\s+x\s*;`)
	reWireList   = regexp.MustCompile(`^wire\s+(constraint_\d+(?:\s*,\s*constraint_\d+)*)\s*;`)
	reAssignC    = regexp.MustCompile(`^assign\s+constraint_(\d+)\s*=\s*(.*?);\s*$`)
	reAssignX    = regexp.MustCompile(`^assign\s+x\s*=\s*(.*?);\s*$`)
	reVarToken   = regexp.MustCompile(`var_(\d+)`)
	reCtrToken   = regexp.MustCompile(`constraint_(\d+)`)
	reModuleLine = regexp.MustCompile(`^(module\b|endmodule\b)`)
)

// Parse reads a constraint module in the fixed shape described by §4.A: a
// header listing variables and a single output x, one input declaration per
// variable, an output wire declaration, one wire declaration listing every
// constraint, one assign line per constraint, and a final assign line giving
// the conjunction order.
func Parse(r io.Reader) (*Module, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	varSeen := map[int]Variable{}
	ctrDeclared := map[int]bool{}
	ctrSeen := map[int]Constraint{}
	var order []int
	sawOutput := false

	lineno := 0
	for sc.Scan() {
		lineno++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if reModuleLine.MatchString(line) {
			continue
		}
		switch {
		case reInput.MatchString(line):
			m := reInput.FindStringSubmatch(line)
			wMinus1, _ := strconv.Atoi(m[1])
			ord, _ := strconv.Atoi(m[2])
			varSeen[ord] = Variable{Ordinal: ord, Width: wMinus1 + 1, Decl: line}
		case reOutput.MatchString(line):
			sawOutput = true
		case reWireList.MatchString(line):
			m := reWireList.FindStringSubmatch(line)
			for _, tok := range reCtrToken.FindAllStringSubmatch(m[1], -1) {
				ord, _ := strconv.Atoi(tok[1])
				ctrDeclared[ord] = true
			}
		case reAssignC.MatchString(line):
			m := reAssignC.FindStringSubmatch(line)
			ord, _ := strconv.Atoi(m[1])
			expr := m[2]
			vars := extractVars(expr)
			ctrSeen[ord] = Constraint{Ordinal: ord, Vars: vars, Decl: line}
		case reAssignX.MatchString(line):
			m := reAssignX.FindStringSubmatch(line)
			for _, tok := range reCtrToken.FindAllStringSubmatch(m[1], -1) {
				ord, _ := strconv.Atoi(tok[1])
				order = append(order, ord)
			}
		default:
			return nil, &ParseError{Line: lineno, Text: raw, Msg: "unrecognized declaration"}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("verilog: scanning input: %w", err)
	}
	if !sawOutput {
		return nil, &ParseError{Line: lineno, Text: "", Msg: "missing \"output wire x;\" declaration"}
	}
	if order == nil {
		return nil, &ParseError{Line: lineno, Text: "", Msg: "missing final \"assign x = ...;\" line"}
	}

	variables, err := densify(varSeen, "var")
	if err != nil {
		return nil, err
	}
	constraints, err := densifyConstraints(ctrSeen, ctrDeclared)
	if err != nil {
		return nil, err
	}

	return &Module{Variables: variables, Constraints: constraints, Order: order}, nil
}

func extractVars(expr string) []int {
	var out []int
	seen := map[int]bool{}
	for _, tok := range reVarToken.FindAllStringSubmatch(expr, -1) {
		ord, _ := strconv.Atoi(tok[1])
		if !seen[ord] {
			seen[ord] = true
			out = append(out, ord)
		}
	}
	return out
}

func densify(vars map[int]Variable, kind string) ([]Variable, error) {
	if len(vars) == 0 {
		return nil, &ParseError{Msg: fmt.Sprintf("no %s declarations found", kind)}
	}
	max := -1
	for ord := range vars {
		if ord > max {
			max = ord
		}
	}
	out := make([]Variable, max+1)
	for ord := 0; ord <= max; ord++ {
		v, ok := vars[ord]
		if !ok {
			return nil, &ParseError{Msg: fmt.Sprintf("missing declaration for var_%d", ord)}
		}
		out[ord] = v
	}
	return out, nil
}

func densifyConstraints(seen map[int]Constraint, declared map[int]bool) ([]Constraint, error) {
	if len(declared) == 0 && len(seen) == 0 {
		return nil, nil
	}
	max := -1
	for ord := range declared {
		if ord > max {
			max = ord
		}
	}
	for ord := range seen {
		if ord > max {
			max = ord
		}
	}
	out := make([]Constraint, max+1)
	var missing []int
	for ord := 0; ord <= max; ord++ {
		c, ok := seen[ord]
		if !ok {
			missing = append(missing, ord)
			continue
		}
		out[ord] = c
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, &ParseError{Msg: fmt.Sprintf("missing assign for constraint_%d", missing[0])}
	}
	return out, nil
}
