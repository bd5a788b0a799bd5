// Package swarm implements particle swarm optimisation: a set of particles
// explores a search space, each pulled towards its own best-known position
// and the swarm's global best, until the global best is close enough to the
// target value or the iteration budget runs out.
package swarm

import (
	"math"
	"math/rand"
)

// Fitness scores a position; lower is better.
type Fitness func(position []float64) float64

// Sphere is the example fitness function: the sum of squared coordinates
// plus 2, so its minimum value is 2 at the origin.
func Sphere(position []float64) float64 {
	var sum float64
	for _, x := range position {
		sum += x * x
	}
	return sum + 2
}

// Config contains configuration parameters for a swarm.
type Config struct {
	// Dimensions is the dimensionality of the search space.
	Dimensions int

	// Particles is the number of particles in the swarm.
	Particles int

	// Inertia weighs the particle's current velocity in the velocity update.
	Inertia float64

	// Cognitive weighs the random pull towards the particle's personal best.
	Cognitive float64

	// Social weighs the random pull towards the swarm's global best.
	Social float64

	// InitRange bounds the random initial positions to ±InitRange per axis.
	InitRange float64

	// Target is the fitness value the swarm is trying to reach.
	Target float64

	// Tolerance is the allowable distance from Target at which iteration
	// stops early.
	Tolerance float64

	// MaxIterations caps the number of iterations.
	MaxIterations int

	// Seed seeds the swarm's RNG so runs are reproducible.
	Seed int64
}

// DefaultConfig returns the canonical coefficients: inertia 0.5, cognitive
// 0.65, social 1.0, 50 particles initialised within ±50 on each axis.
func DefaultConfig(dimensions int) Config {
	return Config{
		Dimensions:    dimensions,
		Particles:     50,
		Inertia:       0.5,
		Cognitive:     0.65,
		Social:        1.0,
		InitRange:     50,
		MaxIterations: 100,
		Seed:          42,
	}
}

// Result is the outcome of a Minimize run.
type Result struct {
	BestPosition []float64
	BestValue    float64
	Iterations   int
	// History records the global best value after each completed iteration.
	History []float64
}

type particle struct {
	position     []float64
	velocity     []float64
	bestPosition []float64
	bestValue    float64
}

// Swarm holds the particles and the global best for one optimisation run.
type Swarm struct {
	config       Config
	rng          *rand.Rand
	particles    []particle
	bestPosition []float64
	bestValue    float64
}

// New creates a swarm with randomly placed particles and zero velocities.
func New(config Config) *Swarm {
	if config.Dimensions < 1 {
		config.Dimensions = 2
	}
	if config.Particles < 1 {
		config.Particles = 50
	}
	if config.MaxIterations < 1 {
		config.MaxIterations = 100
	}

	rng := rand.New(rand.NewSource(config.Seed))

	s := &Swarm{
		config:    config,
		rng:       rng,
		particles: make([]particle, config.Particles),
		bestValue: math.Inf(1),
	}

	for i := range s.particles {
		s.particles[i] = particle{
			position:  s.randomPosition(),
			velocity:  make([]float64, config.Dimensions),
			bestValue: math.Inf(1),
		}
		s.particles[i].bestPosition = append([]float64(nil), s.particles[i].position...)
	}

	// The global best starts at a random position with an infinite value,
	// so the first iteration always improves on it.
	s.bestPosition = s.randomPosition()

	return s
}

func (s *Swarm) randomPosition() []float64 {
	pos := make([]float64, s.config.Dimensions)
	for d := range pos {
		pos[d] = (s.rng.Float64()*2 - 1) * s.config.InitRange
	}
	return pos
}

// Minimize runs the optimisation loop: score every particle, promote
// personal and global bests, exit if the global best is within Tolerance of
// Target, otherwise update velocities and move. Runs are deterministic for a
// fixed config (the RNG is seeded).
func (s *Swarm) Minimize(fitness Fitness) Result {
	history := make([]float64, 0, s.config.MaxIterations)

	iterations := s.config.MaxIterations
	for iter := 0; iter < s.config.MaxIterations; iter++ {
		s.updateBests(fitness)

		if math.Abs(s.config.Target-s.bestValue) <= s.config.Tolerance {
			iterations = iter
			break
		}

		s.moveParticles()
		history = append(history, s.bestValue)
	}

	return Result{
		BestPosition: append([]float64(nil), s.bestPosition...),
		BestValue:    s.bestValue,
		Iterations:   iterations,
		History:      history,
	}
}

// updateBests scores every particle and promotes personal and global bests.
func (s *Swarm) updateBests(fitness Fitness) {
	for i := range s.particles {
		p := &s.particles[i]
		candidate := fitness(p.position)
		if candidate < p.bestValue {
			p.bestPosition = append(p.bestPosition[:0], p.position...)
			p.bestValue = candidate
		}
		if candidate < s.bestValue {
			s.bestPosition = append(s.bestPosition[:0], p.position...)
			s.bestValue = candidate
		}
	}
}

// moveParticles updates each particle's velocity from its inertia plus
// random cognitive and social portions, then moves it.
func (s *Swarm) moveParticles() {
	for i := range s.particles {
		p := &s.particles[i]
		cognitiveScale := s.config.Cognitive * s.rng.Float64()
		socialScale := s.config.Social * s.rng.Float64()
		for d := range p.velocity {
			personal := cognitiveScale * (p.bestPosition[d] - p.position[d])
			global := socialScale * (s.bestPosition[d] - p.position[d])
			p.velocity[d] = s.config.Inertia*p.velocity[d] + personal + global
			p.position[d] += p.velocity[d]
		}
	}
}

// BestValue returns the current global best fitness value.
func (s *Swarm) BestValue() float64 { return s.bestValue }

// BestPosition returns a copy of the current global best position.
func (s *Swarm) BestPosition() []float64 {
	return append([]float64(nil), s.bestPosition...)
}
