package verilog

import (
	"fmt"
	"io"
	"strings"
)

// Emit writes the sub-module for component s of p, in the textual shape
// §4.B requires: a header listing exactly the variables assigned to s, their
// input declarations, the output declaration, a wire declaration for the
// constraints assigned to s (omitted if there are none), their assign lines
// in ordinal order, and a final assign line whose operands follow the
// module's declared conjunction order, restricted to this component.
func Emit(w io.Writer, m *Module, p *PartitionResult, s int) error {
	vars := p.VariablesOf(s)
	ctrs := p.ConstraintsOf(s)

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = fmt.Sprintf("var_%d", v)
	}
	if _, err := fmt.Fprintf(w, "module split_%d(%s);\n", s, strings.Join(append(names, "x"), ", ")); err != nil {
		return err
	}
	for _, v := range vars {
		if _, err := fmt.Fprintln(w, m.Variables[v].Decl); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "output wire x;"); err != nil {
		return err
	}

	if len(ctrs) > 0 {
		wireNames := make([]string, len(ctrs))
		for i, c := range ctrs {
			wireNames[i] = fmt.Sprintf("constraint_%d", c)
		}
		if _, err := fmt.Fprintf(w, "wire %s;\n", strings.Join(wireNames, ", ")); err != nil {
			return err
		}
		for _, c := range ctrs {
			if _, err := fmt.Fprintln(w, m.Constraints[c].Decl); err != nil {
				return err
			}
		}
		inSet := make(map[int]bool, len(ctrs))
		for _, c := range ctrs {
			inSet[c] = true
		}
		operands := make([]string, 0, len(ctrs))
		for _, c := range m.Order {
			if inSet[c] {
				operands = append(operands, fmt.Sprintf("constraint_%d", c))
			}
		}
		if _, err := fmt.Fprintf(w, "assign x = %s;\n", strings.Join(operands, " & ")); err != nil {
			return err
		}
	} else {
		operands := append([]string{"1"}, names...)
		if _, err := fmt.Fprintf(w, "assign x = %s;\n", strings.Join(operands, " || ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "endmodule")
	return err
}
