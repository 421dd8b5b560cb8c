package ranker

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity returns dot(a, b) / (|a| * |b|). Vectors of different
// length, and vectors with zero magnitude, score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}
	return cosine(a, b, norm(a), norm(b))
}

func cosine(a, b []float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0.0
	}

	s := floats.Dot(a, b) / (normA * normB)
	if math.IsNaN(s) {
		return 0.0
	}
	return s
}

func norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}
