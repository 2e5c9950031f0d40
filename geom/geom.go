// Package geom provides the spherical-earth geometry primitives
// (LLH, IJK, XYZ) that projections and the polar algorithm runtime
// convert through, plus the 4/3-earth-model attenuation height used
// by the echo-top family of algorithms.
package geom

import "math"

// EarthRadiusKM is the mean spherical earth radius used for all
// conversions in this package.
const EarthRadiusKM = 6371.2

// LLH is a geographic point: latitude and longitude in degrees,
// height in kilometers above the spherical earth model.
type LLH struct {
	LatDegs float64
	LonDegs float64
	HeightKMs float64
}

// XYZ is an absolute earth-centered Cartesian point, in kilometers.
type XYZ struct {
	X, Y, Z float64
}

// IJK is a 3-D Cartesian displacement in kilometers, relative to the
// spherical earth model at some reference LLH.
type IJK struct {
	I, J, K float64
}

// ToXYZ converts a geographic point to earth-centered Cartesian
// coordinates via a single spherical projection.
func (p LLH) ToXYZ() XYZ {
	latRad := p.LatDegs * math.Pi / 180.0
	lonRad := p.LonDegs * math.Pi / 180.0
	r := EarthRadiusKM + p.HeightKMs
	cosLat := math.Cos(latRad)
	return XYZ{
		X: r * cosLat * math.Cos(lonRad),
		Y: r * cosLat * math.Sin(lonRad),
		Z: r * math.Sin(latRad),
	}
}

// ToLLH inverts ToXYZ, recovering the geographic point.
func (p XYZ) ToLLH() LLH {
	r := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	latRad := math.Asin(p.Z / r)
	lonRad := math.Atan2(p.Y, p.X)
	return LLH{
		LatDegs:   latRad * 180.0 / math.Pi,
		LonDegs:   lonRad * 180.0 / math.Pi,
		HeightKMs: r - EarthRadiusKM,
	}
}

// Sub returns the Cartesian displacement from o to p (p - o), expressed
// as an IJK in kilometers.
func (p LLH) Sub(o LLH) IJK {
	a := p.ToXYZ()
	b := o.ToXYZ()
	return IJK{I: a.X - b.X, J: a.Y - b.Y, K: a.Z - b.Z}
}

// Plus displaces a geographic point by a Cartesian offset and
// reprojects back to LLH.
func (p LLH) Plus(d IJK) LLH {
	x := p.ToXYZ()
	return XYZ{X: x.X + d.I, Y: x.Y + d.J, Z: x.Z + d.K}.ToLLH()
}

// Norm returns the Euclidean length of the displacement, in kilometers.
func (d IJK) Norm() float64 {
	return math.Sqrt(d.I*d.I + d.J*d.J + d.K*d.K)
}

// Dot returns the dot product of two displacements.
func (d IJK) Dot(o IJK) float64 {
	return d.I*o.I + d.J*o.J + d.K*o.K
}

// AttenuationHeightKM computes the height above ground of a radar
// beam given the station height, ground range, and elevation angle,
// under the standard 4/3-earth-radius propagation model.
func AttenuationHeightKM(stationHeightKMs, groundRangeKMs, elevDegs float64) float64 {
	effectiveRadius := (4.0 / 3.0) * EarthRadiusKM
	elevRad := elevDegs * math.Pi / 180.0
	h := math.Sqrt(groundRangeKMs*groundRangeKMs+effectiveRadius*effectiveRadius+
		2*groundRangeKMs*effectiveRadius*math.Sin(elevRad)) - effectiveRadius
	return stationHeightKMs + h
}
