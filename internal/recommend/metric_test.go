package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineDistance(t *testing.T) {
	cases := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{
			name:     "identical_direction",
			a:        []float32{1, 0},
			b:        []float32{2, 0},
			expected: 0,
		},
		{
			name:     "orthogonal",
			a:        []float32{1, 0},
			b:        []float32{0, 1},
			expected: 1,
		},
		{
			name:     "opposite_direction",
			a:        []float32{1, 0},
			b:        []float32{-1, 0},
			expected: 2,
		},
		{
			name:     "zero_norm_query",
			a:        []float32{0, 0},
			b:        []float32{1, 1},
			expected: 1,
		},
		{
			name:     "zero_norm_candidate",
			a:        []float32{1, 1},
			b:        []float32{0, 0},
			expected: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, CosineDistance(tc.a, tc.b), 1e-9)
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	cases := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{
			name:     "identical",
			a:        []float32{1, 2, 3},
			b:        []float32{1, 2, 3},
			expected: 0,
		},
		{
			name:     "unit_apart",
			a:        []float32{0, 0},
			b:        []float32{1, 0},
			expected: 1,
		},
		{
			name:     "diagonal",
			a:        []float32{0, 0},
			b:        []float32{3, 4},
			expected: 5,
		},
		{
			name:     "symmetric",
			a:        []float32{5, 5},
			b:        []float32{0, 0},
			expected: math.Sqrt(50),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, EuclideanDistance(tc.a, tc.b), 1e-9)
		})
	}
}
