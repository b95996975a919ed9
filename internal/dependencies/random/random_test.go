package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourcesRepeat(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(7), b.Intn(7))
	}
	assert.Equal(t, uint64(42), a.Seed())
}

func TestIntnStaysInRange(t *testing.T) {
	r := New()
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, 0, r.Intn(0))
}

func TestString(t *testing.T) {
	r := NewSeeded(1)
	s := r.String(12, "AB")
	assert.Len(t, s, 12)
	for _, c := range s {
		assert.Contains(t, "AB", string(c))
	}
	assert.Empty(t, r.String(0, "AB"))
	assert.Empty(t, r.String(5, ""))
}
