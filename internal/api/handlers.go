// Package api provides HTTP handlers for the clustering service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/clusterlab/clustering-service/internal/cluster"
	"github.com/clusterlab/clustering-service/internal/fuzzy"
	"github.com/clusterlab/clustering-service/internal/swarm"
	"github.com/clusterlab/clustering-service/pkg/types"
)

// Handler holds the dependencies for HTTP handlers.
type Handler struct {
	workers int
}

// NewHandler creates a new Handler. workers sets the default parallelism of
// the clustering assignment phase for requests that don't specify their own.
func NewHandler(workers int) *Handler {
	return &Handler{workers: workers}
}

// metricFor resolves a metric name from a request. An empty name defaults to
// Euclidean.
func metricFor(name string, weights types.FeatureVector) (cluster.DistanceMetric, bool) {
	switch name {
	case "", "euclidean":
		return cluster.DistanceFunc(cluster.EuclideanDistance), true
	case "manhattan":
		return cluster.DistanceFunc(cluster.ManhattanDistance), true
	case "weighted_euclidean":
		return cluster.WeightedEuclidean(weights), true
	default:
		return nil, false
	}
}

// HandleCluster handles POST /cluster requests.
func (h *Handler) HandleCluster(w http.ResponseWriter, r *http.Request) {
	var req types.ClusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	metric, ok := metricFor(req.Metric, req.Weights)
	if !ok {
		sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Unknown metric: " + req.Metric})
		return
	}

	centroids := make([]types.Centroid, len(req.InitialCentroids))
	for i, coords := range req.InitialCentroids {
		centroids[i] = types.Centroid{Coordinates: coords}
	}

	workers := req.Workers
	if workers <= 0 {
		workers = h.workers
	}

	iterations := 0
	opts := []cluster.Option{
		cluster.WithWorkers(workers),
		cluster.WithObserver(func(iteration int, _ cluster.Partition) {
			iterations = iteration
		}),
	}
	if req.MaxIterations > 0 {
		opts = append(opts, cluster.WithMaxIterations(req.MaxIterations))
	}

	start := time.Now()
	partition, err := cluster.KMeans(req.Records, centroids, req.K, metric, opts...)
	if err != nil {
		// All engine errors are precondition violations on the input.
		sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0

	results := make([]types.ClusterResult, len(partition))
	for i, cl := range partition {
		ids := make([]string, len(cl.Records))
		for j, rec := range cl.Records {
			ids[j] = rec.ID
		}
		results[i] = types.ClusterResult{
			Centroid:  cl.Centroid.Coordinates,
			RecordIDs: ids,
		}
	}

	sendJSON(w, http.StatusOK, types.ClusterResponse{
		Clusters:   results,
		Iterations: iterations,
		Latency:    latencyMs,
	})
}

// HandleMinimize handles POST /swarm/minimize requests. The swarm always
// minimises the example sphere fitness (minimum value 2 at the origin).
func (h *Handler) HandleMinimize(w http.ResponseWriter, r *http.Request) {
	var req types.MinimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	config := swarm.DefaultConfig(req.Dimensions)
	if req.Particles > 0 {
		config.Particles = req.Particles
	}
	if req.MaxIterations > 0 {
		config.MaxIterations = req.MaxIterations
	}
	if req.Seed != 0 {
		config.Seed = req.Seed
	}
	config.Target = req.Target
	config.Tolerance = req.Tolerance

	start := time.Now()
	result := swarm.New(config).Minimize(swarm.Sphere)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000.0

	sendJSON(w, http.StatusOK, types.MinimizeResponse{
		BestPosition: result.BestPosition,
		BestValue:    result.BestValue,
		Iterations:   result.Iterations,
		History:      result.History,
		Latency:      latencyMs,
	})
}

// HandleFuzzy handles POST /fuzzy requests.
func (h *Handler) HandleFuzzy(w http.ResponseWriter, r *http.Request) {
	var req types.FuzzyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	a := toFuzzySet(req.A)
	b := toFuzzySet(req.B)

	var (
		out fuzzy.Set
		err error
	)

	switch req.Operation {
	case "and":
		out, err = a.And(b)
	case "or":
		out, err = a.Or(b)
	case "not":
		out = a.Complement()
	case "chop":
		out = a.Chop(req.Limit)
	case "cog":
		cog, cogErr := a.CentreOfGravity()
		if cogErr != nil {
			sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: cogErr.Error()})
			return
		}
		sendJSON(w, http.StatusOK, types.FuzzyResponse{
			Scalar:   &cog,
			Workings: a.CentreOfGravitySum(),
		})
		return
	default:
		sendJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: "Unknown operation: " + req.Operation})
		return
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fuzzy.ErrLengthMismatch) {
			status = http.StatusBadRequest
		}
		sendJSON(w, status, types.ErrorResponse{Error: err.Error()})
		return
	}

	sendJSON(w, http.StatusOK, types.FuzzyResponse{Set: fromFuzzySet(out)})
}

// HandleHealth handles GET /health requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, types.HealthResponse{Status: "ok"})
}

func toFuzzySet(elements []types.FuzzyElement) fuzzy.Set {
	out := make(fuzzy.Set, len(elements))
	for i, e := range elements {
		out[i] = fuzzy.Element{Membership: e.Membership, Value: e.Value}
	}
	return out
}

func fromFuzzySet(s fuzzy.Set) []types.FuzzyElement {
	out := make([]types.FuzzyElement, len(s))
	for i, e := range s {
		out[i] = types.FuzzyElement{Membership: e.Membership, Value: e.Value}
	}
	return out
}

// sendJSON sends a JSON response with the given status code.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
