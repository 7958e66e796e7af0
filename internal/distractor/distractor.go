// Package distractor builds the multiple-choice answers for a round: the
// correct value plus two plausible wrong ones close to it.
package distractor

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Spread is how far a distractor may be from the correct answer.
const Spread = 3

// NoLimit disables the upper clamp.
const NoLimit = math.MaxInt

// ErrWindowTooNarrow is returned when the clamped window holds fewer than two
// values other than the correct one.
var ErrWindowTooNarrow = errors.New("distractor window too narrow")

// AnswerSet is the three answers in presentation order.
type AnswerSet struct {
	Values       [3]int
	CorrectIndex int
}

// Correct returns the correct value.
func (a AnswerSet) Correct() int {
	return a.Values[a.CorrectIndex]
}

// IndexOf returns the position of v, or -1 if v is not an option.
func (a AnswerSet) IndexOf(v int) int {
	for i, x := range a.Values {
		if x == v {
			return i
		}
	}
	return -1
}

// Window returns the inclusive range distractors are drawn from.
func Window(correct, lo, hi int) (int, int) {
	low := max(lo, correct-Spread, 1)
	high := correct + Spread
	if hi < high {
		high = hi
	}
	return low, high
}

// CountingClamps are the clamps used when counting objects.
func CountingClamps() (lo, hi int) {
	return 1, NoLimit
}

// AdditionClamps are the clamps used for sums. The upper clamp lets a few
// values past maxNumber through so answers near the top still get neighbours.
func AdditionClamps(maxNumber int) (lo, hi int) {
	return 2, maxNumber + 2
}

// Distractors draws two distinct values from the clamped window around
// correct, neither equal to correct.
func Distractors(rng *rand.Rand, correct, lo, hi int) ([2]int, error) {
	low, high := Window(correct, lo, hi)

	candidates := high - low + 1
	if correct >= low && correct <= high {
		candidates--
	}
	if candidates < 2 {
		return [2]int{}, fmt.Errorf("%w: correct %d in [%d, %d]", ErrWindowTooNarrow, correct, low, high)
	}

	var out [2]int
	found := 0
	for found < 2 {
		v := low + rng.Intn(high-low+1)
		if v == correct || (found == 1 && v == out[0]) {
			continue
		}
		out[found] = v
		found++
	}
	return out, nil
}

// Options returns the correct value and two distractors in random order.
func Options(rng *rand.Rand, correct, lo, hi int) (AnswerSet, error) {
	d, err := Distractors(rng, correct, lo, hi)
	if err != nil {
		return AnswerSet{}, err
	}

	set := AnswerSet{Values: [3]int{correct, d[0], d[1]}}
	rng.Shuffle(len(set.Values), func(i, j int) {
		set.Values[i], set.Values[j] = set.Values[j], set.Values[i]
	})
	set.CorrectIndex = set.IndexOf(correct)
	return set, nil
}
