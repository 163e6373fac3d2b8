// Package constellation implements the animated particle field drawn behind
// the exhibit hero section.
//
// A Field owns a set of drifting particles sized to a rectangular surface.
// Each frame the particles are pushed away from the cursor, advanced by their
// velocity and wrapped around the surface edges; nearby particles are joined
// by faint lines. Rendering goes through the Canvas interface so the same
// field can be drawn into an ebiten image, a PNG or a terminal.
package constellation

import "image/color"

// Particle is a single point of the field.
// Particles are recreated on every resize and never outlive the surface they
// were generated for.
type Particle struct {
	X, Y    float64    // Position in surface units, within [0, width) x [0, height)
	VX, VY  float64    // Constant velocity per frame
	Radius  float64    // Circle radius
	Color   color.RGBA // One of the three palette colors
	Opacity float64    // Fill alpha in [MinOpacity, MaxOpacity]
}

// Cursor is the last known pointer position inside the surface.
// Valid is false while the pointer is outside.
type Cursor struct {
	X, Y  float64
	Valid bool
}

// Config holds the tunables of a field.
type Config struct {
	// InteractionRadius is the distance within which the cursor repels particles.
	InteractionRadius float64
	// RepulsionStrength scales the per-frame cursor displacement.
	RepulsionStrength float64

	// ConnectionDistance is the distance below which two particles are joined.
	ConnectionDistance float64
	// ConnectionAlpha is the line alpha at distance 0.
	ConnectionAlpha float64
	// ConnectionWidth is the stroke width of a connection line.
	ConnectionWidth float64
	// ConnectionColor is the accent color of connection lines.
	ConnectionColor color.RGBA

	// AreaPerParticle is the surface area that yields one particle.
	AreaPerParticle float64

	// MaxSpeed bounds each velocity component to [-MaxSpeed, MaxSpeed).
	MaxSpeed float64

	MinRadius, MaxRadius   float64
	MinOpacity, MaxOpacity float64

	// Palette holds exactly three colors: the accent (picked 30% of the time)
	// and two secondaries sharing the rest evenly.
	Palette [3]color.RGBA
}

// Defaults of the hero constellation.
const (
	DefaultInteractionRadius  = 150.0
	DefaultRepulsionStrength  = 0.02
	DefaultConnectionDistance = 120.0
	DefaultConnectionAlpha    = 0.15
	DefaultConnectionWidth    = 0.5
	DefaultAreaPerParticle    = 8000.0
	DefaultMaxSpeed           = 0.25
)

// DefaultConfig returns the configuration of the hero constellation.
func DefaultConfig() Config {
	cyan := color.RGBA{R: 0x00, G: 0xf5, B: 0xff, A: 0xff}
	return Config{
		InteractionRadius:  DefaultInteractionRadius,
		RepulsionStrength:  DefaultRepulsionStrength,
		ConnectionDistance: DefaultConnectionDistance,
		ConnectionAlpha:    DefaultConnectionAlpha,
		ConnectionWidth:    DefaultConnectionWidth,
		ConnectionColor:    cyan,
		AreaPerParticle:    DefaultAreaPerParticle,
		MaxSpeed:           DefaultMaxSpeed,
		MinRadius:          1,
		MaxRadius:          3,
		MinOpacity:         0.3,
		MaxOpacity:         0.8,
		Palette: [3]color.RGBA{
			cyan,
			{R: 0xd4, G: 0xa8, B: 0x53, A: 0xff}, // gold
			{R: 0x9d, G: 0x00, B: 0xff, A: 0xff}, // violet
		},
	}
}
