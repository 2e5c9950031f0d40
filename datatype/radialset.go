package datatype

import (
	"math"

	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

// RadialSet is a polar 2-D scan (radials x gates) at one elevation
// angle. It embeds a DataGrid and adds the fixed fields every polar
// product needs: the elevation angle and its cached trig, the
// distance to the first gate, and the mandatory per-radial arrays.
type RadialSet struct {
	*DataGrid

	ElevationDegs     float64
	elevCos, elevTan  float64
	DistToFirstGateM  float64
	VCP               int
}

// NewRadialSet creates a RadialSet with numRadials x numGates shape
// and allocates the mandatory Azimuth/BeamWidth/GateWidth per-radial
// arrays plus a dense float32 primary.
func NewRadialSet(typeName string, t rtime.Time, loc geom.LLH, elevationDegs, distToFirstGateM float64, numRadials, numGates int) *RadialSet {
	grid := NewDataGrid(typeName, t, loc, []DimensionEntry{
		{Name: "Radial", Size: numRadials},
		{Name: "Gate", Size: numGates},
	})
	rs := &RadialSet{
		DataGrid:         grid,
		ElevationDegs:    elevationDegs,
		DistToFirstGateM: distToFirstGateM,
	}
	rs.setElevation(elevationDegs)
	grid.AddArray(PrimaryName, "dimensionless", Float, []int{0, 1}, MissingData)
	grid.AddArray("Azimuth", "Degrees", Float, []int{0})
	grid.AddArray("BeamWidth", "Degrees", Float, []int{0})
	grid.AddArray("GateWidth", "Meters", Float, []int{0})
	return rs
}

func (rs *RadialSet) setElevation(degs float64) {
	rs.ElevationDegs = degs
	rad := degs * math.Pi / 180.0
	rs.elevCos = math.Cos(rad)
	rs.elevTan = math.Tan(rad)
}

// ElevationCos returns the cached cosine of the elevation angle.
func (rs *RadialSet) ElevationCos() float64 { return rs.elevCos }

// ElevationTan returns the cached tangent of the elevation angle.
func (rs *RadialSet) ElevationTan() float64 { return rs.elevTan }

// NumRadials returns the radial-axis size.
func (rs *RadialSet) NumRadials() int { return rs.Dims[0].Size }

// NumGates returns the gate-axis size.
func (rs *RadialSet) NumGates() int { return rs.Dims[1].Size }

// AddTerrainArrays allocates the optional terrain-blockage arrays
// (cumulative blockage, partial blockage, beam-bottom-hit), indexed
// the same way as the primary.
func (rs *RadialSet) AddTerrainArrays() {
	rs.AddArray("TerrainCumulativeBeamBlockage", "Percent", Float, []int{0, 1})
	rs.AddArray("TerrainPartialBeamBlockage", "Percent", Float, []int{0, 1})
	rs.AddArray("TerrainBeamBottomHit", "dimensionless", Byte, []int{0, 1})
}
