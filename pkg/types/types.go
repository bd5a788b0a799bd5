// Package types defines the core data types used throughout the clustering service.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureVector is a point in an n-dimensional feature space where dimensions
// are named rather than indexed. Two vectors need not declare a dimensionality
// up front; consumers iterate the names present on one side and look up the
// matching value on the other.
type FeatureVector map[string]float64

// Equal reports whether both vectors have the same feature names with the
// same values.
func (fv FeatureVector) Equal(other FeatureVector) bool {
	if len(fv) != len(other) {
		return false
	}
	for name, value := range fv {
		otherValue, ok := other[name]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the vector.
func (fv FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(fv))
	for name, value := range fv {
		out[name] = value
	}
	return out
}

// FeatureNames returns the feature names in sorted order.
func (fv FeatureVector) FeatureNames() []string {
	names := make([]string, 0, len(fv))
	for name := range fv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the vector as "(a=1, b=2)" with name-sorted dimensions so
// output is deterministic.
func (fv FeatureVector) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, name := range fv.FeatureNames() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", name, fv[name])
	}
	sb.WriteString(")")
	return sb.String()
}

// Record holds a data record: a caller-assigned identifier plus a number of
// named numeric features. Records are owned by the caller and only borrowed
// (read-only) by the clustering engine during a run.
type Record struct {
	ID       string        `json:"id"`
	Features FeatureVector `json:"features"`
}

func (r Record) String() string {
	return fmt.Sprintf("Record{id=%s, features=%s}", r.ID, r.Features)
}

// Centroid is the current centre of a cluster. Two centroids are equal iff
// their coordinate mappings are equal; the engine builds a fresh Centroid on
// every update instead of mutating coordinates in place, so equality is
// always a value comparison.
type Centroid struct {
	Coordinates FeatureVector `json:"coordinates"`
}

// Equal reports value equality of the coordinate mappings.
func (c Centroid) Equal(other Centroid) bool {
	return c.Coordinates.Equal(other.Coordinates)
}

func (c Centroid) String() string {
	return "Centroid " + c.Coordinates.String()
}

// ClusterRequest is the request body for a clustering run.
type ClusterRequest struct {
	Records          []Record        `json:"records"`
	InitialCentroids []FeatureVector `json:"initial_centroids"`
	K                int             `json:"k"`
	Metric           string          `json:"metric,omitempty"`  // "euclidean", "manhattan" or "weighted_euclidean"
	Weights          FeatureVector   `json:"weights,omitempty"` // weighted_euclidean only
	MaxIterations    int             `json:"max_iterations,omitempty"`
	Workers          int             `json:"workers,omitempty"`
}

// ClusterResult is one cluster of the final partition.
type ClusterResult struct {
	Centroid  FeatureVector `json:"centroid"`
	RecordIDs []string      `json:"record_ids"`
}

// ClusterResponse is the response body for a clustering run.
type ClusterResponse struct {
	Clusters   []ClusterResult `json:"clusters"`
	Iterations int             `json:"iterations"`
	Latency    float64         `json:"latency_ms"`
}

// MinimizeRequest is the request body for a swarm optimisation run.
// Zero-valued fields fall back to the swarm package defaults.
type MinimizeRequest struct {
	Dimensions    int     `json:"dimensions,omitempty"`
	Particles     int     `json:"particles,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"`
	Target        float64 `json:"target"`
	Tolerance     float64 `json:"tolerance"`
	Seed          int64   `json:"seed,omitempty"`
}

// MinimizeResponse is the response body for a swarm optimisation run.
type MinimizeResponse struct {
	BestPosition []float64 `json:"best_position"`
	BestValue    float64   `json:"best_value"`
	Iterations   int       `json:"iterations"`
	History      []float64 `json:"history,omitempty"`
	Latency      float64   `json:"latency_ms"`
}

// FuzzyElement mirrors fuzzy.Element for transport.
type FuzzyElement struct {
	Membership float64 `json:"membership"`
	Value      float64 `json:"value"`
}

// FuzzyRequest is the request body for a fuzzy set operation.
// B is required for the binary operations ("and", "or"), Limit for "chop".
type FuzzyRequest struct {
	Operation string         `json:"operation"`
	A         []FuzzyElement `json:"a"`
	B         []FuzzyElement `json:"b,omitempty"`
	Limit     float64        `json:"limit,omitempty"`
}

// FuzzyResponse is the response body for a fuzzy set operation. Set is
// populated for set-valued operations, Scalar and Workings for "cog".
type FuzzyResponse struct {
	Set      []FuzzyElement `json:"set,omitempty"`
	Scalar   *float64       `json:"scalar,omitempty"`
	Workings string         `json:"workings,omitempty"`
}

// HealthResponse is the response body for health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
