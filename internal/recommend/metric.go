package recommend

import "math"

// Metric computes a distance between two vectors of equal length.
// Smaller means more similar; results are non-negative.
type Metric func(a, b []float32) float64

// CosineDistance returns 1 minus the cosine similarity of a and b.
// Range [0, 2]; 0 means identical direction. Zero-norm vectors have no
// direction and score 1, the same as an orthogonal pair.
func CosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 1
	}

	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
