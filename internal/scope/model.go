package scope

import (
	"math/rand/v2"

	"github.com/rileyhilliard/livescope/internal/metrics"
	"github.com/rileyhilliard/livescope/internal/theme"
)

// DefaultVersion is shown in the info panel when no version is set.
const DefaultVersion = "dev"

// ModelConfig holds everything needed to build a Model.
type ModelConfig struct {
	// Width and Height are the screen size captured at startup.
	Width, Height int
	// Cores is the number of CPU history rows.
	Cores int

	Gradient  theme.Gradient
	Particles bool
	Keys      *KeyMap
	Version   string

	// Rand drives particle spawning. Nil uses a randomly seeded source.
	Rand *rand.Rand
}

// Model is the whole visualizer state: histories, particles and control
// flags. It is owned by a single loop.
type Model struct {
	width, height int
	version       string

	history   *CoreHistory
	wave      *MemoryWave
	particles *ParticleSystem
	gradient  theme.Gradient
	keys      KeyMap

	last    metrics.Sample
	running bool
}

// NewModel creates a running model with zero-filled histories and no
// particles.
func NewModel(cfg ModelConfig) *Model {
	width, height := max(cfg.Width, 0), max(cfg.Height, 0)

	gradient := cfg.Gradient
	if gradient == nil {
		gradient = theme.Default.Gradient()
	}
	keys := DefaultKeys
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	return &Model{
		width:     width,
		height:    height,
		version:   version,
		history:   NewCoreHistory(cfg.Cores, width),
		wave:      NewMemoryWave(width),
		particles: NewParticleSystem(width, height, cfg.Particles, rng),
		gradient:  gradient,
		keys:      keys,
		running:   true,
	}
}

// NewRand returns a PCG generator for the given seed; 0 picks a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Observe folds a metric sample into the histories.
func (m *Model) Observe(s metrics.Sample) {
	m.history.PushSample(s.CPU)
	m.wave.Push(s.MemoryFraction())
	m.last = s
}

// Step advances the particle system by one tick.
func (m *Model) Step() {
	m.particles.Update()
}

// ToggleParticles flips particle mode, clearing particles when turned off.
func (m *Model) ToggleParticles() bool {
	return m.particles.Toggle()
}

// Running reports whether the quit key has been pressed.
func (m *Model) Running() bool {
	return m.running
}

// Size returns the screen size the model was built for.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

// History returns the per-core CPU windows.
func (m *Model) History() *CoreHistory {
	return m.history
}

// Wave returns the memory window.
func (m *Model) Wave() *MemoryWave {
	return m.wave
}

// Particles returns the particle system.
func (m *Model) Particles() *ParticleSystem {
	return m.particles
}
