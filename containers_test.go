package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain[T any](q *PQ[T]) []T {
	var out []T
	for q.Len() > 0 {
		out = append(out, q.Pop().V)
	}
	return out
}

func TestPQ(t *testing.T) {
	items := []struct {
		v string
		p int
	}{
		{"e", 5}, {"a", 1}, {"c", 3}, {"b", 1}, {"d", 3},
	}

	lo := MinQueue[string]()
	hi := MaxQueue[string]()
	for _, it := range items {
		lo.Push(&PQI[string]{V: it.v, P: it.p})
		hi.Push(&PQI[string]{V: it.v, P: it.p})
	}
	assert.Equal(t, "a", lo.Peek().V)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, drain(lo))
	assert.Equal(t, "e", hi.Peek().V)
	// Equal priorities keep push order in both queues.
	assert.Equal(t, []string{"e", "c", "d", "a", "b"}, drain(hi))
}

func TestPQUpdate(t *testing.T) {
	q := MinQueue[string]()
	x := &PQI[string]{V: "x", P: 10}
	q.Push(x)
	q.Push(&PQI[string]{V: "y", P: 5})
	q.Push(&PQI[string]{V: "z", P: 7})

	x.P = 1
	q.Update(x)
	got := q.Pop()
	assert.Same(t, x, got)
	assert.Equal(t, -1, got.Index())
	assert.Equal(t, "x:1", got.String())
	assert.Equal(t, []string{"y", "z"}, drain(q))
}

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	v, _ := s.Peek()
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, s.Len())

	var got []int
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	assert.Equal(t, 3, q.Len())

	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 2 {
			q.Push(4)
		}
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, 0, q.Len())

	q = NewQueue(1, 2, 3)
	q.While(func(v int) bool { return v < 2 })
	assert.Equal(t, 1, q.Len(), "While stops after the first false")
}
