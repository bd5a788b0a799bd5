// Benchmark tests for the clustering engine.
// Run with: go test -bench=. -benchmem
package cluster_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/clusterlab/clustering-service/internal/cluster"
	"github.com/clusterlab/clustering-service/pkg/types"
)

const benchDimensions = 8

// generateFeatures creates a random feature vector with named dimensions
// f0..f(dim-1).
func generateFeatures(rng *rand.Rand, dim int) types.FeatureVector {
	fv := make(types.FeatureVector, dim)
	for d := 0; d < dim; d++ {
		fv[fmt.Sprintf("f%d", d)] = rng.Float64()*2 - 1
	}
	return fv
}

// generateRecords creates n random records.
func generateRecords(rng *rand.Rand, n, dim int) []types.Record {
	records := make([]types.Record, n)
	for i := range records {
		records[i] = types.Record{
			ID:       fmt.Sprintf("rec_%d", i),
			Features: generateFeatures(rng, dim),
		}
	}
	return records
}

// generateCentroids picks k random points as starting centroids.
func generateCentroids(rng *rand.Rand, k, dim int) []types.Centroid {
	centroids := make([]types.Centroid, k)
	for i := range centroids {
		centroids[i] = types.Centroid{Coordinates: generateFeatures(rng, dim)}
	}
	return centroids
}

// BenchmarkKMeans benchmarks serial clustering with varying dataset sizes.
func BenchmarkKMeans(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			rng := rand.New(rand.NewSource(42))
			records := generateRecords(rng, size, benchDimensions)
			centroids := generateCentroids(rng, 8, benchDimensions)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cluster.KMeans(records, centroids, 8, euclidean)
			}
		})
	}
}

// BenchmarkKMeansParallel benchmarks the concurrent assignment phase.
func BenchmarkKMeansParallel(b *testing.B) {
	sizes := []int{1000, 10000}
	workers := []int{2, 4, 8}

	for _, size := range sizes {
		for _, numWorkers := range workers {
			b.Run(fmt.Sprintf("n=%d/workers=%d", size, numWorkers), func(b *testing.B) {
				rng := rand.New(rand.NewSource(42))
				records := generateRecords(rng, size, benchDimensions)
				centroids := generateCentroids(rng, 8, benchDimensions)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					cluster.KMeans(records, centroids, 8, euclidean, cluster.WithWorkers(numWorkers))
				}
			})
		}
	}
}

// BenchmarkEuclideanDistance benchmarks the distance calculation.
func BenchmarkEuclideanDistance(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	a := generateFeatures(rng, benchDimensions)
	c := generateFeatures(rng, benchDimensions)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cluster.EuclideanDistance(a, c)
	}
}
