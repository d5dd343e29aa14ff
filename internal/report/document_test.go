package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryToHex(t *testing.T) {
	var cases = []struct {
		bits []bool
		want string
	}{
		{[]bool{false, false, false, false}, "0"},
		{[]bool{false, false, false, true}, "1"},
		{[]bool{true, false, false, false}, "8"},
		{[]bool{true, false, false, false, false, false, false, false}, "80"},
		{[]bool{true, true}, "3"},
		{[]bool{}, "0"},
		{[]bool{false, true, false, true}, "5"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, BinaryToHex(c.bits), "bits=%v", c.bits)
	}
}

func TestBuild_assembleDocument(t *testing.T) {
	final := [][][]bool{
		{{true, false}, {true}},
		{{false, false}, {false}},
	}
	doc := Build(final)
	require.Len(t, doc.AssignmentList, 2)
	require.Equal(t, "2", doc.AssignmentList[0][0].Value)
	require.Equal(t, "1", doc.AssignmentList[0][1].Value)
	require.Equal(t, "0", doc.AssignmentList[1][0].Value)
}

func TestMarshal_fourSpaceIndent(t *testing.T) {
	doc := Build([][][]bool{{{true}}})
	out, err := Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), "\n    \"assignment_list\"")
}
