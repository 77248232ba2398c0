package textutil

// DefaultSuggestThreshold is the minimum similarity Closest accepts.
const DefaultSuggestThreshold = 0.5

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for gram, count := range a.grams {
		if other, ok := b.grams[gram]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Closest returns the candidate most similar to input when its similarity
// reaches threshold. Ties keep the earlier candidate.
func Closest(input string, candidates []string, threshold float64) (string, bool) {
	target := NewFingerprint(input)
	if target == nil {
		return "", false
	}
	best, bestScore := "", 0.0
	for _, candidate := range candidates {
		score := CosineSimilarity(target, NewFingerprint(candidate))
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if best == "" || bestScore < threshold {
		return "", false
	}
	return best, true
}
