package boxes

import "math/rand/v2"

// DefaultRetryCap bounds how many times a shuffle redraws a pair whose two
// positions coincide before it counts the step anyway.
const DefaultRetryCap = 100

// Shuffle performs steps swaps of two distinct random positions in [0, n).
// When both draws land on the same position the step is retried, at most
// retryCap times over the whole shuffle, so the loop always terminates after
// at most steps+retryCap draws. Sets of fewer than two elements are left
// untouched.
func Shuffle(n, steps, retryCap int, rng *rand.Rand, swap func(i, j int)) {
	if n < 2 || steps <= 0 || rng == nil {
		return
	}
	retries := max(0, retryCap)
	for i := 0; i < steps; i++ {
		r1 := rng.IntN(n)
		r2 := rng.IntN(n)
		if r1 != r2 {
			swap(r1, r2)
			continue
		}
		if retries > 0 {
			retries--
			i--
		}
	}
}
