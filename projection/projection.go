// Package projection binds a DataGrid layer to geographic space:
// point lookup, bounding-box coverage for a dense rectangular render,
// and an O(1) azimuth/range lookup table for polar data. Projections
// borrow their owning DataGrid's buffers by reference and do not copy
// them; callers must keep the DataGrid alive for the projection's
// lifetime and must not resize it while a projection is in use.
package projection

import "math"

// BoundingBox describes a dense lat/lon render target: row/col counts
// and the top-left corner plus per-cell spacing (lon positive east,
// lat negative going down row-major, matching image row order).
type BoundingBox struct {
	Rows, Cols                 int
	TopLatDegs, LeftLonDegs    float64
	DeltaLatDegs, DeltaLonDegs float64
}

// DataProjection is the common read interface every concrete
// projection implements: a point query plus the three coverage modes
// a tile renderer needs.
type DataProjection interface {
	ValueAt(latDegs, lonDegs float64) float64
	CoverageFull() BoundingBox
	CoverageCenterDegree(halfWidthDegs float64, rows, cols int, centerLatDegs, centerLonDegs float64) BoundingBox
}

// CoverageTile computes the bounding box for one OpenStreetMap/TMS
// tile-pixel grid: tile width in degrees is 360/2^zoom, pixels are
// square so ΔlatDegs mirrors ΔlonDegs with the opposite sign.
func CoverageTile(zoom, rows, cols int, centerLatDegs, centerLonDegs float64) BoundingBox {
	tileWidthDegs := 360.0 / math.Pow(2, float64(zoom))
	deltaLon := tileWidthDegs / float64(cols)
	deltaLat := -deltaLon
	return BoundingBox{
		Rows: rows, Cols: cols,
		TopLatDegs:   centerLatDegs + float64(rows)/2*deltaLon,
		LeftLonDegs:  centerLonDegs - float64(cols)/2*deltaLon,
		DeltaLatDegs: deltaLat,
		DeltaLonDegs: deltaLon,
	}
}

// TileLonDegs returns the west edge longitude of TMS tile (x, zoom).
func TileLonDegs(x, zoom int) float64 {
	return float64(x)*360.0/math.Pow(2, float64(zoom)) - 180.0
}

// TileLatDegs returns the north edge latitude of TMS tile (y, zoom),
// using the standard Web Mercator inverse.
func TileLatDegs(y, zoom int) float64 {
	n := math.Pi - 2.0*math.Pi*float64(y)/math.Pow(2, float64(zoom))
	return 180.0 / math.Pi * math.Atan(math.Sinh(n))
}
