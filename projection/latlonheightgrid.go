package projection

import (
	"math"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// LatLonHeightGridProjection is a nearest-cell lookup over one height
// level of a LatLonHeightGrid, with longitude wraparound: a query
// outside the grid's lon range but within one 360-degree wrap of it
// still resolves.
type LatLonHeightGridProjection struct {
	g            *datatype.LatLonHeightGrid
	heightIndex  int
	primary      datatype.Array
	topLatDegs   float64
	leftLonDegs  float64
}

// NewLatLonHeightGridProjection binds a projection to one height
// level (by index into the grid's Height axis) of g.
func NewLatLonHeightGridProjection(g *datatype.LatLonHeightGrid, heightIndex int) *LatLonHeightGridProjection {
	primaryNode, _ := g.GetNode(datatype.PrimaryName)
	return &LatLonHeightGridProjection{
		g:           g,
		heightIndex: heightIndex,
		primary:     primaryNode.Array(),
		topLatDegs:  g.Location.LatDegs,
		leftLonDegs: g.Location.LonDegs,
	}
}

// ValueAt rounds (latDegs, lonDegs) to the nearest grid cell. A
// longitude outside [leftLon, leftLon+lonSpacing*numLon) is wrapped by
// +/-360 once before being rejected as out of range; latitude outside
// the grid's range always returns DataUnavailable.
func (p *LatLonHeightGridProjection) ValueAt(latDegs, lonDegs float64) float64 {
	numLat := p.g.NumLat()
	numLon := p.g.NumLon()

	latRow := int(math.Round((p.topLatDegs - latDegs) / p.g.LatSpacingDegs))
	if latRow < 0 || latRow >= numLat {
		return datatype.DataUnavailable
	}

	lonCol := p.resolveLonCol(lonDegs, numLon)
	if lonCol < 0 {
		return datatype.DataUnavailable
	}

	idx := (p.heightIndex*numLat+latRow)*numLon + lonCol
	return p.primary.GetF64(idx)
}

func (p *LatLonHeightGridProjection) resolveLonCol(lonDegs float64, numLon int) int {
	for _, wrapped := range []float64{lonDegs, lonDegs + 360, lonDegs - 360} {
		col := int(math.Round((wrapped - p.leftLonDegs) / p.g.LonSpacingDegs))
		if col >= 0 && col < numLon {
			return col
		}
	}
	return -1
}

// CoverageFull reports the grid's own natural bounds.
func (p *LatLonHeightGridProjection) CoverageFull() BoundingBox {
	return BoundingBox{
		Rows: p.g.NumLat(), Cols: p.g.NumLon(),
		TopLatDegs:   p.topLatDegs,
		LeftLonDegs:  p.leftLonDegs,
		DeltaLatDegs: -p.g.LatSpacingDegs,
		DeltaLonDegs: p.g.LonSpacingDegs,
	}
}

// CoverageCenterDegree returns a square bounding box of the given
// half-width (degrees) centered on the requested point.
func (p *LatLonHeightGridProjection) CoverageCenterDegree(halfWidthDegs float64, rows, cols int, centerLatDegs, centerLonDegs float64) BoundingBox {
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
