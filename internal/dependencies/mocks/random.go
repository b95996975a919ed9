package mocks

import (
	"github.com/mcoot/blockgame-go/internal/dependencies/random"
	"github.com/mcoot/blockgame-go/internal/model"
)

// MockRandom replays queued results. Once a queue runs dry it returns zero
// values, so an unqueued shape pick yields model.ShapeI.
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result reduced into [0, n)
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) || n <= 0 {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result % n
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueShapes queues the shape picks the engine will make, in order
func (r *MockRandom) QueueShapes(shapes ...model.ShapeType) {
	for _, s := range shapes {
		r.IntnResults = append(r.IntnResults, int(s))
	}
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// Remaining returns the number of queued Intn results not yet consumed
func (r *MockRandom) Remaining() int {
	return len(r.IntnResults) - r.intnIndex
}
