package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a position or dimension falls outside
	// a grid.
	ErrOutOfBounds = errors.New("aoc: out of bounds")
	// ErrNotSquare is returned by operations that only make sense on square
	// grids.
	ErrNotSquare = fmt.Errorf("%w: grid is not square", ErrOutOfBounds)

	// ErrParse is returned when input text does not have the expected shape.
	ErrParse = errors.New("aoc: parse error")
	// ErrRagged is returned when grid lines differ in length.
	ErrRagged = fmt.Errorf("%w: ragged grid", ErrParse)
	// ErrNotDigit is returned when a digit was expected.
	ErrNotDigit = fmt.Errorf("%w: not a digit", ErrParse)

	// ErrNoSolution is returned when a search cannot produce a result.
	ErrNoSolution = errors.New("aoc: no solution")
	// ErrEmptyGrid is returned when a grid holds nothing but background.
	ErrEmptyGrid = fmt.Errorf("%w: grid is all background", ErrNoSolution)

	// ErrWrongAnswer is returned by the runner when a part disagrees with
	// the answer manifest.
	ErrWrongAnswer = errors.New("aoc: wrong answer")
)

func outOfBounds(p Pos, rows, cols int) error {
	return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, p, rows, cols)
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
