package boxes

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle_SkipsTinySets(t *testing.T) {
	for _, n := range []int{0, 1} {
		calls := 0
		Shuffle(n, 50, DefaultRetryCap, rand.New(rand.NewPCG(1, 1)), func(i, j int) { calls++ })
		assert.Zero(t, calls, "n=%d", n)
	}
}

func TestShuffle_ExactSwapCountWithoutCollisionsExhausted(t *testing.T) {
	calls := 0
	Shuffle(10, 25, DefaultRetryCap, rand.New(rand.NewPCG(3, 4)), func(i, j int) {
		assert.NotEqual(t, i, j)
		calls++
	})
	assert.Equal(t, 25, calls)
}

func TestShuffle_ZeroOrNegativeSteps(t *testing.T) {
	calls := 0
	Shuffle(5, 0, DefaultRetryCap, rand.New(rand.NewPCG(1, 1)), func(i, j int) { calls++ })
	Shuffle(5, -3, DefaultRetryCap, rand.New(rand.NewPCG(1, 1)), func(i, j int) { calls++ })
	assert.Zero(t, calls)
}

func TestShuffle_BoundedWithoutRetries(t *testing.T) {
	// with n=2 half of all draws collide; without retries every step is
	// still consumed so the swap count never exceeds steps
	calls := 0
	Shuffle(2, 40, 0, rand.New(rand.NewPCG(9, 9)), func(i, j int) { calls++ })
	assert.LessOrEqual(t, calls, 40)
}

func TestShuffle_PermutationPreserved(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}
	Shuffle(len(items), 100, DefaultRetryCap, rand.New(rand.NewPCG(5, 6)), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	seen := make([]bool, len(items))
	for _, v := range items {
		seen[v] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "value %d lost", i)
	}
}
