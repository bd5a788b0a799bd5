package cluster

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/clusterlab/clustering-service/pkg/types"
)

var (
	// ErrInvalidK is returned when k is smaller than 1.
	ErrInvalidK = errors.New("k must be at least 1")
	// ErrCentroidCountMismatch is returned when the number of initial
	// centroids does not equal k.
	ErrCentroidCountMismatch = errors.New("number of initial centroids must equal k")
	// ErrNoRecords is returned when there are no records to cluster.
	ErrNoRecords = errors.New("no records to cluster")
)

// Observer receives the partition built by each iteration, including the
// final one. It is purely observational and must not affect the outcome.
type Observer func(iteration int, p Partition)

type options struct {
	maxIterations int
	workers       int
	observer      Observer
}

// Option configures a clustering run. There is no global state; every knob
// is an explicit parameter.
type Option func(*options)

// WithMaxIterations caps the number of iterations. Reaching the cap returns
// the current partition as-is. The default (0) is unbounded: the loop runs
// until assignments stop changing.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithWorkers parallelises the assignment phase across n goroutines. Each
// record's nearest-centroid computation is independent, and workers fill
// disjoint ranges of the assignment array, so the result is bit-identical
// to the serial path.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithObserver registers an iteration observer.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

// KMeans partitions records around k centroids using the given metric.
//
// Each iteration assigns every record to its nearest centroid (the first
// centroid in list order wins ties), then recomputes each centroid as the
// feature-wise mean of its assigned records. The loop stops when assignments
// stop changing between iterations, or when the recomputed centroids are
// value-equal to the previous ones, and returns the final partition.
//
// A centroid that receives no records in an iteration keeps its previous
// coordinates; it still appears in the result, possibly with an empty record
// list, so the partition always has exactly k clusters.
//
// Records are borrowed read-only; initial centroids are copied up front and
// never mutated. Malformed input is rejected before any iteration begins.
func KMeans(records []types.Record, initialCentroids []types.Centroid, k int, metric DistanceMetric, opts ...Option) (Partition, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(initialCentroids) != k {
		return nil, ErrCentroidCountMismatch
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	centroids := make([]types.Centroid, k)
	for i, c := range initialCentroids {
		centroids[i] = types.Centroid{Coordinates: c.Coordinates.Clone()}
	}

	var prev []int
	for iteration := 1; ; iteration++ {
		assignments := assign(records, centroids, metric, o.workers)
		part := buildPartition(records, centroids, assignments)
		if o.observer != nil {
			o.observer(iteration, part)
		}

		if prev != nil && equalAssignments(prev, assignments) {
			return part, nil
		}

		updated := updateCentroids(part)
		if centroidsEqual(centroids, updated) {
			return part, nil
		}
		if o.maxIterations > 0 && iteration >= o.maxIterations {
			return part, nil
		}

		centroids = updated
		prev = assignments
	}
}

// assign computes the nearest centroid index for every record.
func assign(records []types.Record, centroids []types.Centroid, metric DistanceMetric, workers int) []int {
	assignments := make([]int, len(records))

	if workers <= 1 || len(records) < workers {
		assignRange(records, centroids, metric, assignments)
		return assignments
	}

	chunk := (len(records) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(records); start += chunk {
		start := start
		end := min(start+chunk, len(records))
		g.Go(func() error {
			assignRange(records[start:end], centroids, metric, assignments[start:end])
			return nil
		})
	}
	// Workers never fail; Wait only synchronises.
	_ = g.Wait()
	return assignments
}

// assignRange fills out[i] with the index of the centroid nearest to
// records[i]. The scan keeps the incumbent unless a strictly smaller
// distance is found, so ties resolve to the first centroid in list order.
func assignRange(records []types.Record, centroids []types.Centroid, metric DistanceMetric, out []int) {
	for i, r := range records {
		nearest := 0
		lowest := metric.Distance(r.Features, centroids[0].Coordinates)
		for j := 1; j < len(centroids); j++ {
			if d := metric.Distance(r.Features, centroids[j].Coordinates); d < lowest {
				nearest = j
				lowest = d
			}
		}
		out[i] = nearest
	}
}

// buildPartition groups records by assigned centroid, preserving the input
// record order within each cluster.
func buildPartition(records []types.Record, centroids []types.Centroid, assignments []int) Partition {
	part := make(Partition, len(centroids))
	for i, c := range centroids {
		part[i] = Cluster{Centroid: c}
	}
	for i, r := range records {
		j := assignments[i]
		part[j].Records = append(part[j].Records, r)
	}
	return part
}

// updateCentroids builds a fresh centroid per cluster from the feature-wise
// mean of its records. Empty clusters retain their previous coordinates.
func updateCentroids(p Partition) []types.Centroid {
	out := make([]types.Centroid, len(p))
	for i, cl := range p {
		if len(cl.Records) == 0 {
			out[i] = cl.Centroid
			continue
		}
		sums := make(types.FeatureVector)
		counts := make(map[string]int)
		for _, r := range cl.Records {
			for name, v := range r.Features {
				sums[name] += v
				counts[name]++
			}
		}
		means := make(types.FeatureVector, len(sums))
		for name, sum := range sums {
			means[name] = sum / float64(counts[name])
		}
		out[i] = types.Centroid{Coordinates: means}
	}
	return out
}

func equalAssignments(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func centroidsEqual(a, b []types.Centroid) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
