package constellation

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Field is one particle simulation bound to one surface.
// It is not safe for concurrent use; hosts that deliver events from other
// goroutines go through a Runner.
type Field struct {
	cfg Config
	rng *rand.Rand

	width, height int
	particles     []Particle
	cursor        Cursor
}

// NewField creates an empty field. Call Resize to give it a surface.
// A nil rng seeds a private source from the clock.
func NewField(cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Field{cfg: cfg, rng: rng}
}

// Config returns the field configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// Size returns the current surface size.
func (f *Field) Size() (int, int) {
	return f.width, f.height
}

// Resize binds the field to a width x height surface and regenerates the
// whole particle set. Particles of the previous surface are discarded.
func (f *Field) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height

	n := ParticleCount(width, height, f.cfg.AreaPerParticle)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = f.newParticle()
	}
	// replace, never grow in place
	f.particles = particles
}

// Reconfigure swaps the configuration and regenerates particles for the
// current surface.
func (f *Field) Reconfigure(cfg Config) {
	f.cfg = cfg
	f.Resize(f.width, f.height)
}

func (f *Field) newParticle() Particle {
	w, h := float64(f.width), float64(f.height)
	return Particle{
		X:       f.rng.Float64() * w,
		Y:       f.rng.Float64() * h,
		VX:      (f.rng.Float64() - 0.5) * 2 * f.cfg.MaxSpeed,
		VY:      (f.rng.Float64() - 0.5) * 2 * f.cfg.MaxSpeed,
		Radius:  f.cfg.MinRadius + f.rng.Float64()*(f.cfg.MaxRadius-f.cfg.MinRadius),
		Color:   f.pickColor(),
		Opacity: f.cfg.MinOpacity + f.rng.Float64()*(f.cfg.MaxOpacity-f.cfg.MinOpacity),
	}
}

func (f *Field) pickColor() color.RGBA {
	if f.rng.Float64() > 0.7 {
		return f.cfg.Palette[0]
	}
	if f.rng.Float64() > 0.5 {
		return f.cfg.Palette[1]
	}
	return f.cfg.Palette[2]
}

// SetCursor records the pointer position in surface coordinates.
func (f *Field) SetCursor(x, y float64) {
	f.cursor = Cursor{X: x, Y: y, Valid: true}
}

// ClearCursor forgets the pointer. Later frames apply no repulsion at all.
func (f *Field) ClearCursor() {
	f.cursor = Cursor{}
}

// Cursor returns the current cursor state.
func (f *Field) Cursor() Cursor {
	return f.cursor
}

// Count returns the number of live particles.
func (f *Field) Count() int {
	return len(f.particles)
}

// Particles returns a copy of the particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Update advances every particle by one frame: cursor repulsion, velocity,
// then wraparound.
func (f *Field) Update() {
	w, h := float64(f.width), float64(f.height)
	for i := range f.particles {
		p := &f.particles[i]

		if f.cursor.Valid {
			dx := f.cursor.X - p.X
			dy := f.cursor.Y - p.Y
			force := RepulsionFactor(math.Hypot(dx, dy), f.cfg.InteractionRadius)
			if force > 0 {
				p.X -= dx * force * f.cfg.RepulsionStrength
				p.Y -= dy * force * f.cfg.RepulsionStrength
			}
		}

		p.X = wrap(p.X+p.VX, w)
		p.Y = wrap(p.Y+p.VY, h)
	}
}

// Draw renders the current frame: clear, particles, then connections.
// A nil canvas leaves the field inert.
func (f *Field) Draw(c Canvas) {
	if c == nil {
		return
	}
	c.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		c.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Opacity)
	}
	f.ForEachConnection(func(a, b *Particle, alpha float64) {
		c.StrokeLine(a.X, a.Y, b.X, b.Y, f.cfg.ConnectionWidth, f.cfg.ConnectionColor, alpha)
	})
}

// Step runs one full frame.
func (f *Field) Step(c Canvas) {
	f.Update()
	f.Draw(c)
}

// ForEachConnection calls fn for every unordered pair of particles closer
// than the connection distance, with the line alpha for that pair.
//
// Pairs are compared naively, O(n^2) per frame. The area heuristic keeps n
// small; a denser field needs a spatial grid here.
func (f *Field) ForEachConnection(fn func(a, b *Particle, alpha float64)) {
	threshold := f.cfg.ConnectionDistance
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= threshold {
				continue
			}
			fn(a, b, ConnectionAlpha(d, threshold, f.cfg.ConnectionAlpha))
		}
	}
}
