package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregator_orMergesDisjointSplits(t *testing.T) {
	a := NewAggregator(1, 2, []int{1, 1})
	a.Merge(0, [][]bool{{true}, {false}})
	a.Merge(0, [][]bool{{false}, {true}})
	require.Equal(t, [][][]bool{{{true}, {true}}}, a.Result())
}

func TestAggregator_independentPerSolutionIndex(t *testing.T) {
	a := NewAggregator(2, 1, []int{1})
	a.Merge(0, [][]bool{{true}})
	require.Equal(t, [][][]bool{{{true}}, {{false}}}, a.Result())
}
