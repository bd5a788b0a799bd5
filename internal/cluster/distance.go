// Package cluster implements k-means clustering over named-feature vectors
// with a pluggable distance metric.
package cluster

import (
	"math"

	"github.com/clusterlab/clustering-service/pkg/types"
)

// DistanceMetric computes a scalar dissimilarity between two feature vectors.
// Implementations must be pure (no mutation of either operand) and must
// tolerate feature-name mismatches by skipping dimensions that are not
// present on both sides. Symmetry is not required by the engine, only
// consistency of use.
type DistanceMetric interface {
	Distance(a, b types.FeatureVector) float64
}

// DistanceFunc adapts a plain function to the DistanceMetric interface.
type DistanceFunc func(a, b types.FeatureVector) float64

// Distance calls f(a, b).
func (f DistanceFunc) Distance(a, b types.FeatureVector) float64 {
	return f(a, b)
}

// EuclideanDistance is the canonical metric: the square root of the summed
// squared differences over the feature names shared by both vectors.
//
// Formula: √(Σ(aᵢ - bᵢ)²) over shared dimensions i
//
// Dimensions present on only one side do not contribute. Two vectors with no
// shared feature names have distance 0 (a sum of zero terms), which is
// degenerate but defined, not an error.
func EuclideanDistance(a, b types.FeatureVector) float64 {
	var sum float64
	for name, av := range a {
		if bv, ok := b[name]; ok {
			diff := av - bv
			sum += diff * diff
		}
	}
	return math.Sqrt(sum)
}

// ManhattanDistance sums the absolute differences over shared feature names.
//
// Formula: Σ|aᵢ - bᵢ| over shared dimensions i
func ManhattanDistance(a, b types.FeatureVector) float64 {
	var sum float64
	for name, av := range a {
		if bv, ok := b[name]; ok {
			sum += math.Abs(av - bv)
		}
	}
	return sum
}

// WeightedEuclidean returns a Euclidean metric where each shared dimension's
// squared difference is scaled by the weight registered for its feature name.
// Features without a registered weight use weight 1.
func WeightedEuclidean(weights types.FeatureVector) DistanceMetric {
	return DistanceFunc(func(a, b types.FeatureVector) float64 {
		var sum float64
		for name, av := range a {
			if bv, ok := b[name]; ok {
				w, ok := weights[name]
				if !ok {
					w = 1
				}
				diff := av - bv
				sum += w * diff * diff
			}
		}
		return math.Sqrt(sum)
	})
}
