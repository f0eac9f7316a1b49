package aoc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate90Clockwise(t *testing.T) {
	g := gridOf(t,
		"abc",
		"def",
		"ghi",
	)
	require.NoError(t, Rotate90Clockwise(g))
	assert.Equal(t, []string{
		"gda",
		"heb",
		"ifc",
	}, rowsOf(g))
}

func TestRotate90ClockwiseFourTimes(t *testing.T) {
	for _, rows := range [][]string{
		{"x"},
		{"ab", "cd"},
		{"#..#", ".##.", "#...", "...."},
		{"12345", "67890", "abcde", "fghij", "klmno"},
	} {
		g := gridOf(t, rows...)
		want := g.Hash()
		for i := 0; i < 4; i++ {
			require.NoError(t, Rotate90Clockwise(g))
			if i < 3 && len(rows) > 1 && g.Hash() == want {
				t.Errorf("%v: rotation %d is already the identity", rows, i+1)
			}
		}
		assert.Equal(t, want, g.Hash(), "%v rotated four times", rows)
		assert.Equal(t, rows, rowsOf(g))
	}
}

func TestRotate90ClockwiseNotSquare(t *testing.T) {
	g := gridOf(t, "abc", "def")
	err := Rotate90Clockwise(g)
	assert.ErrorIs(t, err, ErrNotSquare)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, []string{"abc", "def"}, rowsOf(g), "grid must be untouched")
}

func TestFlips(t *testing.T) {
	g := gridOf(t,
		"abc",
		"def",
		"ghi",
		"jkl",
	)
	h := g.Clone()
	FlipHorizontal(h)
	assert.Equal(t, []string{"cba", "fed", "ihg", "lkj"}, rowsOf(h))
	FlipHorizontal(h)
	assert.Equal(t, g, h)

	v := g.Clone()
	FlipVertical(v)
	assert.Equal(t, []string{"jkl", "ghi", "def", "abc"}, rowsOf(v))
	FlipVertical(v)
	assert.Equal(t, g, v)

	odd := gridOf(t, "ab", "cd", "ef")
	FlipVertical(odd)
	assert.Equal(t, []string{"ef", "cd", "ab"}, rowsOf(odd))
}

func TestTrimToBounds(t *testing.T) {
	g := gridOf(t,
		"............",
		".OO....OOO..",
		".O.OO..O.O..",
		".O...OO.O...",
		"..OO....O...",
		"..OOO...O...",
		"..O.OO..O...",
		".OO..O..O...",
		".OO...OO....",
		"............",
	)
	got, err := TrimToBounds(g, '.')
	require.NoError(t, err)
	assert.Equal(t, []string{
		"OO....OOO",
		"O.OO..O.O",
		"O...OO.O.",
		".OO....O.",
		".OOO...O.",
		".O.OO..O.",
		"OO..O..O.",
		"OO...OO..",
	}, rowsOf(got))

	single := gridOf(t, "...", ".x.", "...")
	got, err = TrimToBounds(single, '.')
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, rowsOf(got))

	full := gridOf(t, "ab", "cd")
	got, err = TrimToBounds(full, '.')
	require.NoError(t, err)
	assert.Equal(t, full, got)
}

func TestTrimToBoundsAllBackground(t *testing.T) {
	_, err := TrimToBounds(NewGrid(3, 3, byte('.')), '.')
	assert.ErrorIs(t, err, ErrEmptyGrid)
	assert.ErrorIs(t, err, ErrNoSolution)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, gridOf(t, "#.", ".#")))
	assert.Equal(t, "\n#.\n.#\n\n", buf.String())

	err := Fprint(failWriter{}, gridOf(t, "#"))
	assert.EqualError(t, err, "disk full")
}
