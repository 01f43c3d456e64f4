package main

import (
	"strings"
	"testing"

	"github.com/g-m-twostay/go-trinary/Parsers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadScript(t *testing.T) {
	ops, err := readScript(strings.NewReader(`
# build
insert 5
i 3
+ -7   # negative values are fine

DELETE 5
d 4
del -7
`))
	require.NoError(t, err)
	want := []operation{
		{opInsert, 5, 3},
		{opInsert, 3, 4},
		{opInsert, -7, 5},
		{opDelete, 5, 7},
		{opDelete, 4, 8},
		{opDelete, -7, 9},
	}
	require.Equal(t, uint(len(want)), ops.Size())
	for _, w := range want {
		op, err := ops.Pop()
		require.NoError(t, err)
		assert.Equal(t, w, op)
	}
}

func TestReadScript_Errors(t *testing.T) {
	for _, tc := range []struct {
		script string
		line   int
		target error
	}{
		{"insert 1\ninsert\n", 2, errMalformed},
		{"insert 1 2\n", 1, errMalformed},
		{"\n\nupsert 4\n", 3, nil},
		{"insert 1\ndelete 1x\n", 2, Parsers.ErrSyntax},
		{"insert 99999999999999999999\n", 1, Parsers.ErrRange},
	} {
		ops, err := readScript(strings.NewReader(tc.script))
		assert.Nil(t, ops, tc.script)
		var se *scriptError
		if assert.ErrorAs(t, err, &se, tc.script) {
			assert.Equal(t, tc.line, se.Line, tc.script)
		}
		if tc.target != nil {
			assert.ErrorIs(t, err, tc.target, tc.script)
		}
	}
}

func TestReadScript_Empty(t *testing.T) {
	ops, err := readScript(strings.NewReader("# nothing\n\n"))
	require.NoError(t, err)
	assert.True(t, ops.Empty())
}
