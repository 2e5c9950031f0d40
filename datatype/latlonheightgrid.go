package datatype

import (
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

// LatLonHeightGrid is a 3-D rectilinear grid (height x lat x lon)
// used for gridded NWP/derived products such as MRMS mosaics.
type LatLonHeightGrid struct {
	*DataGrid

	LatSpacingDegs float64
	LonSpacingDegs float64
}

// NewLatLonHeightGrid creates a LatLonHeightGrid with the given axis
// sizes, filling the 1-D Height array with heightsKMs (len must equal
// numHeights).
func NewLatLonHeightGrid(typeName string, t rtime.Time, loc geom.LLH, latSpacingDegs, lonSpacingDegs float64, heightsKMs []float64, numLat, numLon int) *LatLonHeightGrid {
	numHeights := len(heightsKMs)
	grid := NewDataGrid(typeName, t, loc, []DimensionEntry{
		{Name: "Height", Size: numHeights},
		{Name: "Lat", Size: numLat},
		{Name: "Lon", Size: numLon},
	})
	llg := &LatLonHeightGrid{
		DataGrid:       grid,
		LatSpacingDegs: latSpacingDegs,
		LonSpacingDegs: lonSpacingDegs,
	}
	grid.AddArray(PrimaryName, "dimensionless", Float, []int{0, 1, 2}, MissingData)
	heightNode, _ := grid.AddArray("Height", "Kilometers", Double, []int{0})
	for i, h := range heightsKMs {
		heightNode.Array().SetF64(i, h)
	}
	return llg
}

// NumHeights, NumLat, NumLon report the three axis sizes.
func (g *LatLonHeightGrid) NumHeights() int { return g.Dims[0].Size }
func (g *LatLonHeightGrid) NumLat() int     { return g.Dims[1].Size }
func (g *LatLonHeightGrid) NumLon() int     { return g.Dims[2].Size }
