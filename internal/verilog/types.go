// Package verilog parses the fixed-shape constraint modules consumed by the
// splitter, partitions them into independent sub-modules by variable
// co-occurrence, and emits the resulting sub-modules in the same textual
// shape.
package verilog

import "fmt"

// Variable is a declared multi-bit input, identified by its ordinal.
type Variable struct {
	Ordinal int
	Width   int
	Decl    string // verbatim "input [W-1:0] var_K;" text
}

// Constraint is a single-bit boolean expression indexed by its ordinal.
type Constraint struct {
	Ordinal int
	Vars    []int  // variable ordinals occurring textually, first-seen order
	Decl    string // verbatim "assign constraint_C = ...;" text
}

// Module is the result of parsing one constraint module.
type Module struct {
	Variables   []Variable   // indexed by ordinal, dense [0, TotalVariables)
	Constraints []Constraint // indexed by ordinal, dense [0, TotalConstraints)
	Order       []int        // ord[0..K), the conjunction order from the final assign
}

// TotalVariables returns the number of declared variables.
func (m *Module) TotalVariables() int { return len(m.Variables) }

// TotalConstraints returns the number of declared constraints.
func (m *Module) TotalConstraints() int { return len(m.Constraints) }

// ParseError names the offending line of a malformed constraint module.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("verilog: line %d: %s: %q", e.Line, e.Msg, e.Text)
}
