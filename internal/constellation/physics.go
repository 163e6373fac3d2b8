package constellation

import "math"

// ParticleCount returns how many particles a width x height surface holds:
// one per areaPerParticle units of area, rounded down.
// Non-positive sizes or densities yield zero.
func ParticleCount(width, height int, areaPerParticle float64) int {
	if width <= 0 || height <= 0 || areaPerParticle <= 0 {
		return 0
	}
	return int(math.Floor(float64(width) * float64(height) / areaPerParticle))
}

// RepulsionFactor returns the cursor force factor at the given distance:
// 1 at the cursor, falling linearly to 0 at radius, and 0 beyond.
func RepulsionFactor(distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return (radius - distance) / radius
}

// ConnectionAlpha returns the line alpha for two particles at distance d:
// maxAlpha at 0, falling linearly to 0 at threshold. Pairs at or beyond the
// threshold are not connected and get 0.
func ConnectionAlpha(d, threshold, maxAlpha float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return maxAlpha * (1 - d/threshold)
}

// wrap maps v into [0, size).
func wrap(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size rounds to size
	if v >= size {
		v = 0
	}
	return v
}
