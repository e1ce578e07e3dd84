// Package sparklenav computes glint angle and specular reflection geometry
// from sun/satellite zenith and azimuth angles, grounded on
// original_source/abisparkle/sparklenav.py.
package sparklenav

import "math"

// GlintAngle returns the angular distance between the satellite vector and
// the sun vector mirrored in the horizontal plane at a pixel (0 for exact
// specular geometry), given angles in radians.
func GlintAngle(sunAz, sunZa, satAz, satZa float64) float64 {
	return math.Acos(math.Cos(sunZa)*math.Cos(satZa) - math.Sin(sunZa)*math.Sin(satZa)*math.Cos(sunAz-satAz))
}

// Reflection holds the specular half-angle, reflector tilt, and reflector
// azimuth for a flat reflector that would redirect sunlight toward the
// satellite at a given pixel.
type Reflection struct {
	Omega float64 // specular half-angle
	Beta  float64 // reflector tilt from horizontal
	Gamma float64 // reflector azimuth
}

// unitVector returns the unit vector for a given zenith/azimuth pair, using
// the convention (sin za * cos az, sin za * sin az, cos za).
func unitVector(za, az float64) (x, y, z float64) {
	sinZa := math.Sin(za)
	return sinZa * math.Cos(az), sinZa * math.Sin(az), math.Cos(za)
}

// CalcReflections computes the per-pixel reflection geometry from sun and
// satellite zenith/azimuth angles, all in radians.
func CalcReflections(sunAz, sunZa, satAz, satZa float64) Reflection {
	sx, sy, sz := unitVector(sunZa, sunAz)
	rx, ry, rz := unitVector(satZa, satAz)

	dot := sx*rx + sy*ry + sz*rz
	omega := math.Acos(dot) / 2

	beta := math.Acos((sz + rz) / (2 * math.Cos(omega)))

	gamma := math.Mod(math.Atan2(sy+ry, sx+rx)+2*math.Pi, 2*math.Pi)

	return Reflection{Omega: omega, Beta: beta, Gamma: gamma}
}
