package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnswers(t *testing.T, root, manifest string) {
	t.Helper()
	path := AnswersPath(root)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
}

func TestLoadAnswers(t *testing.T) {
	root := t.TempDir()
	writeAnswers(t, root, `
day2:
  sample: {a: 11, b: -4}
  input:
    a: 123456789012
`)
	ans, err := LoadAnswers(root)
	require.NoError(t, err)

	tests := []struct {
		d    Day
		v    Variant
		part string
		want int64
		ok   bool
	}{
		{Day2, Sample, "A", 11, true},
		{Day2, Sample, "B", -4, true},
		{Day2, Question, "A", 123456789012, true},
		{Day2, Question, "B", 0, false},
		{Day2, AltSample, "A", 0, false},
		{Day3, Sample, "A", 0, false},
	}
	for _, tt := range tests {
		got, ok := ans.Lookup(tt.d, tt.v, tt.part)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%v, %v, %s) = %d, %v; want %d, %v", tt.d, tt.v, tt.part, got, ok, tt.want, tt.ok)
		}
	}

	assert.NoError(t, ans.Check(Day2, Sample, "A", 11))
	assert.NoError(t, ans.Check(Day2, Question, "B", 99), "unknown answers pass")
	err = ans.Check(Day2, Sample, "B", 4)
	assert.ErrorIs(t, err, ErrWrongAnswer)
	assert.ErrorContains(t, err, "want -4")
}

func TestLoadAnswersMissing(t *testing.T) {
	ans, err := LoadAnswers(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, ans)
	_, ok := ans.Lookup(Day1, Sample, "A")
	assert.False(t, ok)
}

func TestLoadAnswersBad(t *testing.T) {
	root := t.TempDir()
	writeAnswers(t, root, "day1: [not, a, map\n")
	_, err := LoadAnswers(root)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadAnswersRepo(t *testing.T) {
	ans, err := LoadAnswers(testInputs(t).Root)
	require.NoError(t, err)
	got, ok := ans.Lookup(Day4, Sample, "B")
	require.True(t, ok)
	assert.Equal(t, int64(43), got)
}
