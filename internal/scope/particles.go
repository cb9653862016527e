package scope

import "math/rand/v2"

const (
	// Gravity is added to a particle's vertical velocity every tick.
	Gravity = 0.1
	// LifeDecay is subtracted from a particle's life every tick, giving a
	// nominal lifetime of 50 ticks regardless of the frame interval.
	LifeDecay = 0.02
	// SpawnChance is the per-tick probability of spawning one particle.
	SpawnChance = 0.3
)

// ParticleGlyphs are the shapes a particle may take.
var ParticleGlyphs = []rune{'●', '○', '◆', '◇', '★', '☆'}

// Particle is a short-lived glyph falling under gravity.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Glyph  rune
}

// step advances one tick: position first, then velocity.
func (p *Particle) step() {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= LifeDecay
	p.VY += Gravity
}

func (p *Particle) alive(width, height int) bool {
	return p.Life > 0 &&
		p.X >= 0 && p.X < float64(width) &&
		p.Y >= 0 && p.Y < float64(height)
}

// ParticleSystem owns the live particles for a fixed screen area.
type ParticleSystem struct {
	width, height int
	enabled       bool
	particles     []Particle
	rng           *rand.Rand
}

// NewParticleSystem creates an empty system. rng drives spawning and must
// not be nil.
func NewParticleSystem(width, height int, enabled bool, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		width:   width,
		height:  height,
		enabled: enabled,
		rng:     rng,
	}
}

// Update ages every particle, drops the dead ones and, when enabled,
// spawns a new one with probability SpawnChance.
func (s *ParticleSystem) Update() {
	n := 0
	for i := range s.particles {
		p := s.particles[i]
		p.step()
		if p.alive(s.width, s.height) {
			s.particles[n] = p
			n++
		}
	}
	s.particles = s.particles[:n]

	if s.enabled && s.width > 0 && s.height > 0 && s.rng.Float64() < SpawnChance {
		s.Spawn(s.random())
	}
}

func (s *ParticleSystem) random() Particle {
	return Particle{
		X:     s.rng.Float64() * float64(s.width),
		Y:     0,
		VX:    s.rng.Float64() - 0.5,
		VY:    0.1 + s.rng.Float64()*0.4,
		Life:  1.0,
		Glyph: ParticleGlyphs[s.rng.IntN(len(ParticleGlyphs))],
	}
}

// Spawn adds p to the system as is.
func (s *ParticleSystem) Spawn(p Particle) {
	s.particles = append(s.particles, p)
}

// SetEnabled turns spawning on or off. Turning it off also removes every
// live particle.
func (s *ParticleSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.particles = s.particles[:0]
	}
}

// Toggle flips spawning and reports the new state.
func (s *ParticleSystem) Toggle() bool {
	s.SetEnabled(!s.enabled)
	return s.enabled
}

// Enabled reports whether spawning is on.
func (s *ParticleSystem) Enabled() bool {
	return s.enabled
}

// Particles returns the live particles. The slice is only valid until the
// next Update.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}
