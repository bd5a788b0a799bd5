package swarm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/clustering-service/internal/swarm"
)

func TestSphere(t *testing.T) {
	assert.InDelta(t, 2.0, swarm.Sphere([]float64{0, 0}), 1e-9)
	assert.InDelta(t, 27.0, swarm.Sphere([]float64{3, 4}), 1e-9)
}

func TestDefaultConfig(t *testing.T) {
	config := swarm.DefaultConfig(2)

	assert.Equal(t, 2, config.Dimensions)
	assert.Equal(t, 50, config.Particles)
	assert.InDelta(t, 0.5, config.Inertia, 1e-9)
	assert.InDelta(t, 0.65, config.Cognitive, 1e-9)
	assert.InDelta(t, 1.0, config.Social, 1e-9)
	assert.InDelta(t, 50.0, config.InitRange, 1e-9)
}

func TestMinimize_ApproachesSphereMinimum(t *testing.T) {
	config := swarm.DefaultConfig(2)
	config.Target = 2
	config.Tolerance = 0.1
	config.MaxIterations = 500

	result := swarm.New(config).Minimize(swarm.Sphere)

	// The sphere fitness is bounded below by 2.
	assert.GreaterOrEqual(t, result.BestValue, 2.0)
	assert.InDelta(t, 2.0, result.BestValue, 1.0)
	require.Len(t, result.BestPosition, 2)
}

func TestMinimize_Deterministic(t *testing.T) {
	config := swarm.DefaultConfig(2)
	config.Target = 2
	config.Tolerance = 0.1
	config.Seed = 7

	first := swarm.New(config).Minimize(swarm.Sphere)
	second := swarm.New(config).Minimize(swarm.Sphere)

	assert.Equal(t, first, second)
}

func TestMinimize_SeedChangesRun(t *testing.T) {
	config := swarm.DefaultConfig(2)
	config.MaxIterations = 5

	first := swarm.New(config).Minimize(swarm.Sphere)

	config.Seed = 1234
	second := swarm.New(config).Minimize(swarm.Sphere)

	assert.NotEqual(t, first.BestPosition, second.BestPosition)
}

func TestMinimize_RespectsMaxIterations(t *testing.T) {
	config := swarm.DefaultConfig(2)
	// Unreachable target: the sphere fitness never goes below 2.
	config.Target = -5
	config.Tolerance = 0
	config.MaxIterations = 10

	result := swarm.New(config).Minimize(swarm.Sphere)

	assert.Equal(t, 10, result.Iterations)
	assert.Len(t, result.History, 10)
}

func TestMinimize_HistoryTracksIterations(t *testing.T) {
	config := swarm.DefaultConfig(2)
	config.Target = 2
	config.Tolerance = 0.5
	config.MaxIterations = 500

	result := swarm.New(config).Minimize(swarm.Sphere)

	// One history entry per completed iteration.
	assert.Len(t, result.History, result.Iterations)
	// The global best never gets worse.
	for i := 1; i < len(result.History); i++ {
		assert.LessOrEqual(t, result.History[i], result.History[i-1])
	}
}

func TestMinimize_HigherDimensions(t *testing.T) {
	config := swarm.DefaultConfig(4)
	config.Target = 2
	config.Tolerance = 0.5
	config.MaxIterations = 1000

	result := swarm.New(config).Minimize(swarm.Sphere)

	require.Len(t, result.BestPosition, 4)
	assert.GreaterOrEqual(t, result.BestValue, 2.0)
}

func TestNew_AppliesFallbacks(t *testing.T) {
	s := swarm.New(swarm.Config{})
	result := s.Minimize(swarm.Sphere)

	// Zero-valued config still produces a valid run.
	assert.Len(t, result.BestPosition, 2)
	assert.GreaterOrEqual(t, result.BestValue, 2.0)
}
