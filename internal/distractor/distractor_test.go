package distractor

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDistractorsStayInWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		d, err := Distractors(rng, 5, 1, 8)
		if err != nil {
			t.Fatalf("Distractors returned error: %v", err)
		}
		if d[0] == d[1] {
			t.Fatalf("duplicate distractors: %v", d)
		}
		for _, v := range d {
			if v == 5 || v < 1 || v > 8 {
				t.Fatalf("distractor %d outside {1..8}\\{5}", v)
			}
		}
	}
}

func TestDistractorsNearBottom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		d, err := Distractors(rng, 1, 1, NoLimit)
		if err != nil {
			t.Fatalf("Distractors returned error: %v", err)
		}
		for _, v := range d {
			if v < 2 || v > 4 {
				t.Fatalf("distractor %d outside [2, 4]", v)
			}
		}
	}
}

func TestDistractorsAdditionClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lo, hi := AdditionClamps(10)

	for i := 0; i < 500; i++ {
		d, err := Distractors(rng, 10, lo, hi)
		if err != nil {
			t.Fatalf("Distractors returned error: %v", err)
		}
		for _, v := range d {
			if v < 7 || v > 12 || v == 10 {
				t.Fatalf("distractor %d outside [7, 12]\\{10}", v)
			}
		}
	}

	for i := 0; i < 500; i++ {
		d, err := Distractors(rng, 2, lo, hi)
		if err != nil {
			t.Fatalf("Distractors returned error: %v", err)
		}
		for _, v := range d {
			if v < 3 || v > 5 {
				t.Fatalf("distractor %d outside [3, 5]", v)
			}
		}
	}
}

func TestDistractorsWindowTooNarrow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Distractors(rng, 2, 2, 3)
	if !errors.Is(err, ErrWindowTooNarrow) {
		t.Fatalf("expected ErrWindowTooNarrow, got %v", err)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name              string
		correct, lo, hi   int
		wantLow, wantHigh int
	}{
		{"middle", 5, 1, NoLimit, 2, 8},
		{"bottom", 1, 1, NoLimit, 1, 4},
		{"addition top", 10, 2, 12, 7, 12},
		{"addition bottom", 2, 2, 12, 2, 5},
		{"negative clamp", 2, -5, NoLimit, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high := Window(tt.correct, tt.lo, tt.hi)
			if low != tt.wantLow || high != tt.wantHigh {
				t.Errorf("Window(%d, %d, %d) = [%d, %d], want [%d, %d]",
					tt.correct, tt.lo, tt.hi, low, high, tt.wantLow, tt.wantHigh)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	positions := map[int]bool{}

	for i := 0; i < 300; i++ {
		set, err := Options(rng, 6, 1, NoLimit)
		if err != nil {
			t.Fatalf("Options returned error: %v", err)
		}
		if set.Correct() != 6 {
			t.Fatalf("correct index %d points at %d", set.CorrectIndex, set.Correct())
		}
		seen := map[int]bool{}
		for _, v := range set.Values {
			if seen[v] {
				t.Fatalf("duplicate option in %v", set.Values)
			}
			seen[v] = true
		}
		positions[set.CorrectIndex] = true
	}

	if len(positions) != 3 {
		t.Errorf("correct answer only appeared at positions %v", positions)
	}
}

func TestIndexOf(t *testing.T) {
	set := AnswerSet{Values: [3]int{4, 7, 5}, CorrectIndex: 2}

	if got := set.IndexOf(7); got != 1 {
		t.Errorf("IndexOf(7) = %d, want 1", got)
	}
	if got := set.IndexOf(9); got != -1 {
		t.Errorf("IndexOf(9) = %d, want -1", got)
	}
}
