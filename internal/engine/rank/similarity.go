package rank

import (
	"math"
	"regexp"
	"strings"
)

// simTokenRe matches tokens of two or more word characters — the same
// shape a bag-of-words count vectorizer uses, which drops one-letter noise.
var simTokenRe = regexp.MustCompile(`\b\w\w+\b`)

// Similarity scores two documents in [0, 100] by cosine similarity of their
// bag-of-words count vectors over the union vocabulary of exactly these two
// texts. No state survives the call. If either document has no tokens the
// score is 0.
func Similarity(a, b string) float64 {
	va := countVector(a)
	vb := countVector(b)

	var dot, normA, normB float64
	for term, x := range va {
		normA += x * x
		if y, ok := vb[term]; ok {
			dot += x * y
		}
	}
	for _, y := range vb {
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)) * 100
}

func countVector(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, t := range simTokenRe.FindAllString(strings.ToLower(text), -1) {
		counts[t]++
	}
	return counts
}
