package verilog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleModule = `module top(var_0, var_1, x);
input [2:0] var_0;
input [3:0] var_1;
output wire x;
wire constraint_0, constraint_1;
assign constraint_0 = var_0[0];
assign constraint_1 = var_0[1] ^ var_1[0];
assign x = constraint_0 & constraint_1;
endmodule
`

func TestParse_basic(t *testing.T) {
	mod, err := Parse(strings.NewReader(sampleModule))
	require.NoError(t, err)
	require.Equal(t, 2, mod.TotalVariables())
	require.Equal(t, 3, mod.Variables[0].Width)
	require.Equal(t, 4, mod.Variables[1].Width)
	require.Equal(t, 2, mod.TotalConstraints())
	require.Equal(t, []int{0, 1}, mod.Constraints[1].Vars)
	require.Equal(t, []int{0, 1}, mod.Order)
}

func TestParse_missingOutput(t *testing.T) {
	bad := strings.Replace(sampleModule, "output wire x;\n", "", 1)
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParse_missingConstraintAssign(t *testing.T) {
	bad := strings.Replace(sampleModule, "assign constraint_1 = var_0[1] ^ var_1[0];\n", "", 1)
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
}

func TestParse_unrecognizedLine(t *testing.T) {
	bad := sampleModule + "garbage line here;\n"
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParse_variableFreeConstraint(t *testing.T) {
	const src = `module top(var_0, x);
input [0:0] var_0;
output wire x;
wire constraint_0;
assign constraint_0 = |(8'h3);
assign x = constraint_0;
endmodule
`
	mod, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Empty(t, mod.Constraints[0].Vars)
}

func TestExtractVars_order(t *testing.T) {
	var extractVarsTests = []struct {
		expr     string
		expected []int
	}{
		{"var_3[0]", []int{3}},
		{"var_1[0] & var_0[2]", []int{1, 0}},
		{"var_2[0] & var_2[1]", []int{2}},
		{"1", nil},
	}
	for _, tt := range extractVarsTests {
		actual := extractVars(tt.expr)
		require.Equal(t, tt.expected, actual, "extractVars(%q)", tt.expr)
	}
}
