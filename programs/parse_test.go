package programs

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	program, err := Parse("1,0,0,0,99\n")
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 0, 99}, program)

	program, err = Parse(" 1101, 100 ,-1,4,0 ")
	require.NoError(t, err)
	require.Equal(t, []int{1101, 100, -1, 4, 0}, program)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("  \n")
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Parse("1,,99")
	require.ErrorIs(t, err, ErrEmptyCell)
	require.ErrorContains(t, err, "cell 1")

	_, err = Parse("1,0,0,0,99,")
	require.ErrorIs(t, err, ErrEmptyCell)

	_, err = Parse("1,x,99")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	require.ErrorContains(t, err, "cell 1")
}

func TestLoad(t *testing.T) {
	program, err := Load("testdata/feedback.txt")
	require.NoError(t, err)
	require.Len(t, program, 29)
	require.Equal(t, 3, program[0])
	require.Equal(t, 5, program[28])

	_, err = Load("testdata/missing.txt")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	text := "3,9,8,9,10,9,4,9,99,-1,8"
	program, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, text, Format(program))
}
