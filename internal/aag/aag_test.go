package aag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// A minimal single-AND circuit: x = i0 & i1.
const andCircuit = `aag 3 2 0 1 1
2
4
6
6 2 4
i0 var_0[0]
i1 var_1[0]
o0 out
`

func TestLoad_basic(t *testing.T) {
	f, err := Load(strings.NewReader(andCircuit))
	require.NoError(t, err)
	require.Equal(t, 3, f.MaxVar)
	require.Equal(t, []int{2, 4}, f.Inputs)
	require.Equal(t, 6, f.Output)
	require.Len(t, f.Gates, 1)
	require.Equal(t, Gate{Out: 6, In1: 2, In2: 4}, f.Gates[0])
	require.Equal(t, Symbol{Var: 0, Bit: 0}, f.Symbols[0])
	require.Equal(t, Symbol{Var: 1, Bit: 0}, f.Symbols[1])
	require.Equal(t, 2, f.OriInputNum)
	require.Equal(t, []int{1, 1}, f.Width)
}

func TestLoad_missingSymbolsDefaultToZero(t *testing.T) {
	const noSymbols = `aag 3 2 0 1 1
2
4
6
6 2 4
`
	f, err := Load(strings.NewReader(noSymbols))
	require.NoError(t, err)
	require.Equal(t, Symbol{}, f.Symbols[0])
	require.Equal(t, Symbol{}, f.Symbols[1])
	require.Equal(t, 1, f.OriInputNum)
	require.Equal(t, []int{1}, f.Width)
}

func TestLoad_rejectsLatches(t *testing.T) {
	const withLatch = `aag 3 1 1 1 0
2
4 2
4
`
	_, err := Load(strings.NewReader(withLatch))
	require.Error(t, err)
}

func TestLoad_rejectsMultipleOutputs(t *testing.T) {
	const twoOutputs = `aag 2 2 0 2 0
2
4
2
4
`
	_, err := Load(strings.NewReader(twoOutputs))
	require.Error(t, err)
}

func TestLoad_widthDerivedFromHighestBit(t *testing.T) {
	const wide = `aag 4 3 0 1 2
2
4
6
8
8 2 4
8 6 8
i0 var_0[0]
i1 var_0[2]
i2 var_1[0]
o0 out
`
	f, err := Load(strings.NewReader(wide))
	require.NoError(t, err)
	require.Equal(t, 2, f.OriInputNum)
	require.Equal(t, []int{3, 1}, f.Width)
}
