package aoc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalDigits(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{9876, []uint64{9, 8, 7, 6}},
		{0, []uint64{0}},
		{7, []uint64{7}},
		{10, []uint64{1, 0}},
		{1000200, []uint64{1, 0, 0, 0, 2, 0, 0}},
		{18446744073709551615, []uint64{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 5}},
	}
	for _, tt := range tests {
		d := NewDecimalDigits(tt.n)
		assert.Equal(t, len(tt.want), d.Len(), "Len(%d)", tt.n)
		got := slices.Collect(d.All())
		assert.Equal(t, tt.want, got, "digits of %d", tt.n)
		assert.Equal(t, 0, d.Len())
		if _, ok := d.Next(); ok {
			t.Errorf("digits of %d: Next after the end returned ok", tt.n)
		}
	}
}

func TestDecimalDigitsNext(t *testing.T) {
	d := NewDecimalDigits(9876)
	for _, want := range []uint64{9, 8, 7, 6} {
		got, ok := d.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := d.Next()
	assert.False(t, ok)
}

func TestDecimalDigitsReconstruct(t *testing.T) {
	for _, n := range []uint64{0, 1, 42, 909, 123456789, 5000000000} {
		var back uint64
		for v := range NewDecimalDigits(n).All() {
			back = back*10 + v
		}
		if back != n {
			t.Errorf("digits of %d rebuild %d", n, back)
		}
	}
}

func TestParseDecimalDigits(t *testing.T) {
	d, err := ParseDecimalDigits(" 305\n")
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 0, 5}, slices.Collect(d.All()))

	for _, s := range []string{"", "-3", "12a", "99999999999999999999"} {
		_, err := ParseDecimalDigits(s)
		assert.ErrorIs(t, err, ErrParse, "%q", s)
	}
}

func TestDigits(t *testing.T) {
	got, err := Digits("40721")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 7, 2, 1}, got)

	_, err = Digits("12x4")
	assert.ErrorIs(t, err, ErrNotDigit)
	assert.ErrorIs(t, err, ErrParse)

	d, err := Digit('8')
	require.NoError(t, err)
	assert.Equal(t, 8, d)
	_, err = Digit('/')
	assert.ErrorIs(t, err, ErrNotDigit)
}

func TestInts(t *testing.T) {
	got, err := Ints("1", " -20 ", "300")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -20, 300}, got)

	_, err = Ints("1", "two")
	assert.ErrorIs(t, err, ErrParse)
}

func TestGCDLCM(t *testing.T) {
	tests := []struct {
		a, b, gcd int
	}{
		{12, 18, 6},
		{17, 5, 1},
		{0, 9, 9},
		{-12, 8, 4},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.gcd {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.gcd)
		}
	}
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 60, LCM(3, 4, 5, 6))
	assert.Equal(t, 7, LCM(7))
	assert.Panics(t, func() { LCM() })
}

func TestSumAbsDiff(t *testing.T) {
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, 0.75, Sum(0.5, 0.25))
	assert.Equal(t, int64(0), Sum[int64]())
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 3, AbsDiff(5, 2))
	assert.Equal(t, 1.5, AbsDiff(-1.0, 0.5))
}
