package aoc

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q", ErrNotDigit, r)
	}
	return int(r - '0'), nil
}

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	out := make([]int, 0, len(line))
	for _, c := range line {
		d, err := Digit(c)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, nil
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return AbsDiff(a, 0)
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		result = result / GCD(result, v) * v
	}
	return result
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// DecimalDigits yields the base-10 digits of a number, most significant
// first. It is consumed as it is read.
type DecimalDigits struct {
	n   uint64
	pos int
}

// NewDecimalDigits returns the digit stream of n. Zero has the single
// digit 0.
func NewDecimalDigits(n uint64) *DecimalDigits {
	pos := 1
	for v := n / 10; v > 0; v /= 10 {
		pos++
	}
	return &DecimalDigits{n: n, pos: pos}
}

// ParseDecimalDigits parses s as a non-negative integer and returns its
// digit stream.
func ParseDecimalDigits(s string) (*DecimalDigits, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return NewDecimalDigits(n), nil
}

// Len reports how many digits are left.
func (d *DecimalDigits) Len() int {
	return d.pos
}

// Next returns the next digit, or false when none are left.
func (d *DecimalDigits) Next() (uint64, bool) {
	if d.pos == 0 {
		return 0, false
	}
	d.pos--
	div := uint64(1)
	for range d.pos {
		div *= 10
	}
	return d.n / div % 10, true
}

// All yields the remaining digits, consuming them.
func (d *DecimalDigits) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v, ok := d.Next(); ok; v, ok = d.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
