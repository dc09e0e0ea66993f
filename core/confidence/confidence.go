// Package confidence derives the bounded pseudo-confidence score attached to
// answers. The score is deterministic for identical inputs but is seeded from
// input lengths, not retrieval quality: it is a plausible-looking stand-in,
// not a calibrated probability. API consumers rely on the stable [0.80, 0.95]
// range, so the contract is preserved as-is.
package confidence

import "math"

const (
	scoreFloor = 0.80
	scoreSpan  = 0.15
	seedBucket = 16
)

// Score returns a pseudo-confidence in [0.80, 0.95], rounded to 2 decimals.
// Deterministic given identical query, candidate count and answer.
func Score(queryText string, candidateCount int, answerText string) float64 {
	seed := len(queryText)*31 + len(answerText)*17 + candidateCount*7
	score := scoreFloor + float64(seed%seedBucket)/float64(seedBucket-1)*scoreSpan
	return math.Round(score*100) / 100
}
