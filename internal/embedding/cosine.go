package embedding

import "math"

// CosineSimilarity returns the cosine similarity of two vectors. Degenerate
// input (nil vectors, mismatched lengths, zero norm) yields exactly 0.0
// rather than an error, since callers treat it as "no similarity".
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
