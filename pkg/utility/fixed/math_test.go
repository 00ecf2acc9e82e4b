package fixed

import (
	"errors"
	"testing"
)

func createPoints(t testing.TB, values ...string) []Point {
	t.Helper()
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = mustParse(t, v)
	}
	return points
}

func TestFixedMath_WeightedMean(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		weights  []int64
		expected string
		err      error
	}{
		{
			name:     "empty slice",
			expected: "0",
		},
		{
			name:     "zero weights",
			points:   createPoints(t, "1", "2"),
			weights:  []int64{0, 0},
			expected: "0",
		},
		{
			name:     "equal weights",
			points:   createPoints(t, "10", "20"),
			weights:  []int64{3, 3},
			expected: "15",
		},
		{
			name:     "volume weighted",
			points:   createPoints(t, "20", "25"),
			weights:  []int64{10, 5},
			expected: "21.666667",
		},
		{
			name:     "weights beyond half of int64",
			points:   createPoints(t, "1", "1"),
			weights:  []int64{1<<62 + 1, 1<<62 + 1},
			expected: "1",
		},
		{
			name:    "length mismatch",
			points:  createPoints(t, "1", "2"),
			weights: []int64{1},
			err:     ErrLengthMismatch,
		},
		{
			name:    "weighted point out of range",
			points:  createPoints(t, "100000000"),
			weights: []int64{1_000_000_000_000},
			err:     ErrOutOfRange,
		},
		{
			name:    "sum out of range",
			points:  createPoints(t, "9", "9"),
			weights: []int64{1_000_000_000_000_000_000, 1_000_000_000_000_000_000},
			err:     ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := WeightedMean(tt.points, tt.weights)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error = %v", err)
			}
			if got := result.Round(6).String(); got != tt.expected {
				t.Errorf("WeightedMean() = %s; want %s", got, tt.expected)
			}
		})
	}
}

func TestFixedMath_GeometricMean(t *testing.T) {
	tests := []struct {
		name     string
		points   []Point
		expected string
		err      error
	}{
		{
			name:     "empty slice",
			points:   []Point{},
			expected: "0",
		},
		{
			name:     "single point",
			points:   createPoints(t, "7"),
			expected: "7",
		},
		{
			name:     "identical points",
			points:   createPoints(t, "3", "3", "3"),
			expected: "3",
		},
		{
			name:     "powers of two",
			points:   createPoints(t, "2", "8"),
			expected: "4",
		},
		{
			name:     "three points",
			points:   createPoints(t, "1", "3", "9"),
			expected: "3",
		},
		{
			name:     "fractional",
			points:   createPoints(t, "0.5", "2"),
			expected: "1",
		},
		{
			name:   "non positive point",
			points: createPoints(t, "2", "0"),
			err:    ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GeometricMean(tt.points)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error = %v", err)
			}
			if got := result.Round(7).String(); got != tt.expected {
				t.Errorf("GeometricMean() = %s; want %s", got, tt.expected)
			}
		})
	}
}

func BenchmarkFixedMath_GeometricMean(b *testing.B) {
	points := make([]Point, 100)
	for i := range points {
		points[i] = FromInt64(int64(i+1), 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GeometricMean(points)
	}
}
