package projection

import (
	"math"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// DefaultAccuracy is the bins-per-degree resolution used when a caller
// does not need a coarser table: 1000 bins/degree, matching the
// lookup table's documented 0.001-degree resolution.
const DefaultAccuracy = 1000

// RadialSetProjection is an O(1) azimuth/range lookup over one
// RadialSet: a flat `azBin -> radialIndex` table built once at
// construction, then queried with one multiply, one modulo, and two
// array loads per lookup.
type RadialSetProjection struct {
	rs       *datatype.RadialSet
	accuracy int
	numBins  int
	table    []int32

	azimuth, gateWidth, primary datatype.Array
}

// NewRadialSetProjection builds the lookup table for rs at the given
// bins-per-degree accuracy (pass projection.DefaultAccuracy absent a
// specific reason to choose otherwise).
func NewRadialSetProjection(rs *datatype.RadialSet, accuracy int) *RadialSetProjection {
	if accuracy <= 0 {
		accuracy = DefaultAccuracy
	}
	p := &RadialSetProjection{
		rs:       rs,
		accuracy: accuracy,
		numBins:  360 * accuracy,
	}
	p.table = make([]int32, p.numBins)
	for i := range p.table {
		p.table[i] = -1
	}

	azimuthNode, _ := rs.GetNode("Azimuth")
	beamWidthNode, _ := rs.GetNode("BeamWidth")
	gateWidthNode, _ := rs.GetNode("GateWidth")
	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	p.azimuth = azimuthNode.Array()
	beamWidth := beamWidthNode.Array()
	p.gateWidth = gateWidthNode.Array()
	p.primary = primaryNode.Array()

	n := rs.NumRadials()
	for i := 0; i < n; i++ {
		minBin, maxBin := p.radialBinRange(i, beamWidth)
		p.assignRange(minBin, maxBin, i)
	}
	// Gap-fill pass: extend a radial's trailing edge into a small gap
	// before the next radial's leading edge (radar sector joins).
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		_, thisMaxBin := p.radialBinRange(i, beamWidth)
		nextMinBin, _ := p.radialBinRange(next, beamWidth)
		gap := nextMinBin - thisMaxBin
		if next == 0 {
			gap += p.numBins
		}
		if gap > 0 && gap < accuracy {
			p.assignRange(thisMaxBin, thisMaxBin+gap, i)
		}
	}
	return p
}

func (p *RadialSetProjection) radialBinRange(i int, beamWidth datatype.Array) (minBin, maxBin int) {
	az := normalizeDegs(p.azimuth.GetF64(i))
	w := beamWidth.GetF64(i)
	minBin = int(math.Floor(float64(p.accuracy) * az))
	maxBin = int(math.Round(float64(p.accuracy) * (az + w)))
	return
}

// assignRange writes radial index idx to every bin in [minBin,
// maxBin), wrapping past numBins, without overwriting a bin some
// earlier radial already claimed (scan-order tie-break).
func (p *RadialSetProjection) assignRange(minBin, maxBin, idx int) {
	for b := minBin; b < maxBin; b++ {
		bin := ((b % p.numBins) + p.numBins) % p.numBins
		if p.table[bin] == -1 {
			p.table[bin] = int32(idx)
		}
	}
}

func normalizeDegs(d float64) float64 {
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}

// AzRangeToRadialGate resolves an (azimuth, slant-range) pair to the
// (radial, gate) index pair that covers it, or ok=false if the point
// falls outside every radial's sweep or outside the gate range.
func (p *RadialSetProjection) AzRangeToRadialGate(azDegs, rangeMeters float64) (radial, gate int, ok bool) {
	azBin := int(math.Floor(normalizeDegs(azDegs) * float64(p.accuracy)))
	azBin = ((azBin % p.numBins) + p.numBins) % p.numBins

	r := p.table[azBin]
	if r < 0 {
		return 0, 0, false
	}
	radial = int(r)

	distToFirstGateM := p.rs.DistToFirstGateM
	gw := p.gateWidth.GetF64(radial)
	if gw <= 0 || rangeMeters < distToFirstGateM {
		return 0, 0, false
	}
	g := int(math.Floor((rangeMeters - distToFirstGateM) / gw))
	if g < 0 || g >= p.rs.NumGates() {
		return 0, 0, false
	}
	return radial, g, true
}

// GetValueAtAzRange resolves (azDegs, rangeMeters) and returns the
// primary array's value there, or DataUnavailable with ok=false
// when no radial/gate covers the point.
func (p *RadialSetProjection) GetValueAtAzRange(azDegs, rangeMeters float64) (value float64, ok bool) {
	radial, gate, found := p.AzRangeToRadialGate(azDegs, rangeMeters)
	if !found {
		return datatype.DataUnavailable, false
	}
	return p.primary.GetF64(radial*p.rs.NumGates() + gate), true
}

// ValueAt implements DataProjection by converting a lat/lon into a
// bearing and great-circle range from the radar's own location, then
// delegating to GetValueAtAzRange.
func (p *RadialSetProjection) ValueAt(latDegs, lonDegs float64) float64 {
	azDegs, rangeMeters := bearingRange(p.rs.Location.LatDegs, p.rs.Location.LonDegs, latDegs, lonDegs)
	v, ok := p.GetValueAtAzRange(azDegs, rangeMeters)
	if !ok {
		return datatype.DataUnavailable
	}
	return v
}

// CoverageFull reports a bounding box sized to the radial set's
// maximum range, matching the source's typical full-scan render.
func (p *RadialSetProjection) CoverageFull() BoundingBox {
	maxRangeKM := (p.rs.DistToFirstGateM + float64(p.rs.NumGates())*p.gateWidth.GetF64(0)) / 1000.0
	halfWidthDegs := maxRangeKM / 111.0
	return p.CoverageCenterDegree(halfWidthDegs, 512, 512, p.rs.Location.LatDegs, p.rs.Location.LonDegs)
}

// CoverageCenterDegree returns a square bounding box of the given
// half-width (in degrees) centered on (centerLatDegs, centerLonDegs).
func (p *RadialSetProjection) CoverageCenterDegree(halfWidthDegs float64, rows, cols int, centerLatDegs, centerLonDegs float64) BoundingBox {
	deltaLat := -2 * halfWidthDegs / float64(rows)
	deltaLon := 2 * halfWidthDegs / float64(cols)
	return BoundingBox{
		Rows: rows, Cols: cols,
		TopLatDegs:   centerLatDegs + halfWidthDegs,
		LeftLonDegs:  centerLonDegs - halfWidthDegs,
		DeltaLatDegs: deltaLat,
		DeltaLonDegs: deltaLon,
	}
}

// bearingRange computes the initial bearing (degrees, clockwise from
// north) and great-circle distance (meters) from (lat0,lon0) to
// (lat1,lon1) using the standard spherical-earth formulas.
func bearingRange(lat0, lon0, lat1, lon1 float64) (bearingDegs, rangeMeters float64) {
	const earthRadiusM = 6371200.0
	toRad := math.Pi / 180.0
	phi1, phi2 := lat0*toRad, lat1*toRad
	dPhi := (lat1 - lat0) * toRad
	dLambda := (lon1 - lon0) * toRad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	rangeMeters = earthRadiusM * c

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	bearingDegs = normalizeDegs(math.Atan2(y, x) / toRad)
	return
}
