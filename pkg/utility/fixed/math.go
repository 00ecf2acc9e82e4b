package fixed

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("points and weights differ in length")

// WeightedMean returns sum(points[i] * weights[i]) / sum(weights). It returns Zero when there
// is nothing to weigh and ErrOutOfRange when a partial sum does not fit into a decimal.
func WeightedMean(points []Point, weights []int64) (Point, error) {
	if len(points) != len(weights) {
		return Zero, fmt.Errorf("%d points, %d weights: %w", len(points), len(weights), ErrLengthMismatch)
	}

	sum, total := Zero, Zero
	for i, point := range points {
		weighted, err := point.TryMulInt64(weights[i])
		if err != nil {
			return Zero, err
		}
		if sum, err = sum.TryAdd(weighted); err != nil {
			return Zero, err
		}
		if total, err = total.TryAdd(FromInt64(weights[i], 0)); err != nil {
			return Zero, err
		}
	}

	if total.IsZero() {
		return Zero, nil
	}
	return sum.TryDiv(total)
}

// GeometricMean computes exp(mean(ln(x))) so large sets do not overflow the product.
// All points must be positive.
func GeometricMean(points []Point) (Point, error) {
	if len(points) == 0 {
		return Zero, nil
	}

	sum := Zero
	for _, point := range points {
		ln, err := point.TryLog()
		if err != nil {
			return Zero, err
		}
		if sum, err = sum.TryAdd(ln); err != nil {
			return Zero, err
		}
	}

	mean, err := sum.TryDiv(FromInt64(int64(len(points)), 0))
	if err != nil {
		return Zero, err
	}
	return mean.TryExp()
}
