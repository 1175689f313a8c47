package rank

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	t.Run("identical texts score 100", func(t *testing.T) {
		text := "python developer with sql experience"
		got := Similarity(text, text)
		if math.Abs(got-100) > 1e-9 {
			t.Errorf("Similarity(x, x) = %v, want 100", got)
		}
	})

	t.Run("disjoint texts score 0", func(t *testing.T) {
		if got := Similarity("alpha bravo charlie", "delta echo foxtrot"); got != 0 {
			t.Errorf("Similarity = %v, want 0", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := "python sql docker kubernetes"
		b := "python developer needed with docker"
		if x, y := Similarity(a, b), Similarity(b, a); math.Abs(x-y) > 1e-9 {
			t.Errorf("Similarity not symmetric: %v vs %v", x, y)
		}
	})

	t.Run("partial overlap is between 0 and 100", func(t *testing.T) {
		got := Similarity("python sql", "python docker")
		if got <= 0 || got >= 100 {
			t.Errorf("Similarity = %v, want in (0, 100)", got)
		}
	})

	t.Run("empty text scores 0", func(t *testing.T) {
		if got := Similarity("", "python"); got != 0 {
			t.Errorf("Similarity(\"\", x) = %v, want 0", got)
		}
		if got := Similarity("python", ""); got != 0 {
			t.Errorf("Similarity(x, \"\") = %v, want 0", got)
		}
	})

	t.Run("single letter tokens ignored", func(t *testing.T) {
		if got := Similarity("a b c", "a b c"); got != 0 {
			t.Errorf("Similarity over one-letter tokens = %v, want 0", got)
		}
	})

	t.Run("term frequency weighs in", func(t *testing.T) {
		// Repeating a shared term moves the count vectors closer.
		low := Similarity("python java", "python go go go")
		high := Similarity("python java", "python python python go")
		if high <= low {
			t.Errorf("expected higher score with repeated shared term: low=%v high=%v", low, high)
		}
	})

	t.Run("known value", func(t *testing.T) {
		// Count vectors over {python, sql}: a=[1,1], b=[1,2].
		// cos = 3 / (sqrt(2)*sqrt(5)) ≈ 0.94868.
		got := Similarity("python sql", "python sql sql")
		want := 3 / (math.Sqrt2 * math.Sqrt(5)) * 100
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Similarity = %v, want %v", got, want)
		}
	})
}
