// Package editdist implements token-level Levenshtein distance and the
// word-error-rate metric used for quiz grading and pronunciation scoring.
package editdist

import "github.com/samdyer/revoir/internal/textnorm"

// Distance returns the Levenshtein edit distance between two token
// sequences, with unit costs for insertion, deletion and substitution.
func Distance(a, b []string) int {
	dp := make([]int, len(b)+1)
	for j := range dp {
		dp[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= len(b); j++ {
			cur := dp[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			dp[j] = min(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return dp[len(b)]
}

// WordErrorRate is the token edit distance between the normalized reference
// and hypothesis, divided by the reference token count. An empty reference
// yields 0: no error is possible against nothing.
func WordErrorRate(reference, hypothesis string) float64 {
	ref := textnorm.Normalize(reference)
	if len(ref) == 0 {
		return 0
	}
	hyp := textnorm.Normalize(hypothesis)
	return float64(Distance(ref, hyp)) / float64(len(ref))
}
