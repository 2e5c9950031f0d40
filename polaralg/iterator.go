// Package polaralg implements the polar algorithm runtime: a
// radial/gate iterator with per-radial cached geometry, the
// elevation-ceiling/radar-latch/virtual-volume bookkeeping every
// algorithm shares, and the three echo-top algorithms built on top of
// it.
package polaralg

import "github.com/retoomey/RAPIO-sub003/datatype"

// RadialMeta is the per-radial geometry a RadialSetIterator computes
// once per radial and hands to every gate callback for that radial.
type RadialMeta struct {
	Radial        int
	CenterAzDegs  float64
	GateWidthM    float64
	FirstGateM    float64
}

// GateContext is passed to HandleGate for each (radial, gate) pair.
type GateContext struct {
	RadialMeta
	Gate             int
	SlantRangeCenterM float64
}

// Callback receives the iterator lifecycle: once per radial set
// (begin/end), once per radial (implicitly, via the meta embedded in
// each GateContext), and once per gate.
type Callback interface {
	HandleBeginLoop(rs *datatype.RadialSet)
	HandleGate(ctx GateContext) (value float64, write bool)
	HandleEndLoop(rs *datatype.RadialSet)
}

// RadialSetIterator visits every (radial, gate) pair of a RadialSet in
// row-major order, caching each radial's azimuth/gate-width/first-gate
// geometry exactly once. It holds direct references to the
// RadialSet's backing arrays and is invalidated by any resize.
type RadialSetIterator struct {
	rs         *datatype.RadialSet
	azimuth    datatype.Array
	beamWidth  datatype.Array
	gateWidth  datatype.Array
	outputName string
}

// NewRadialSetIterator binds an iterator to rs, writing callback
// results back to the named array (datatype.PrimaryName for the usual
// case of replacing the primary moment in place).
func NewRadialSetIterator(rs *datatype.RadialSet, outputName string) *RadialSetIterator {
	azimuthNode, _ := rs.GetNode("Azimuth")
	beamWidthNode, _ := rs.GetNode("BeamWidth")
	gateWidthNode, _ := rs.GetNode("GateWidth")
	return &RadialSetIterator{
		rs:         rs,
		azimuth:    azimuthNode.Array(),
		beamWidth:  beamWidthNode.Array(),
		gateWidth:  gateWidthNode.Array(),
		outputName: outputName,
	}
}

// Run drives cb across every (radial, gate) pair in row-major order,
// calling HandleBeginLoop before the first radial and HandleEndLoop
// after the last.
func (it *RadialSetIterator) Run(cb Callback) {
	outputNode, _ := it.rs.GetNode(it.outputName)
	output := outputNode.Array()

	numRadials := it.rs.NumRadials()
	numGates := it.rs.NumGates()
	firstGateM := it.rs.DistToFirstGateM

	cb.HandleBeginLoop(it.rs)
	for r := 0; r < numRadials; r++ {
		meta := RadialMeta{
			Radial:       r,
			CenterAzDegs: it.azimuth.GetF64(r) + it.beamWidth.GetF64(r)/2.0,
			GateWidthM:   it.gateWidth.GetF64(r),
			FirstGateM:   firstGateM,
		}
		for g := 0; g < numGates; g++ {
			ctx := GateContext{
				RadialMeta:        meta,
				Gate:              g,
				SlantRangeCenterM: firstGateM + (float64(g)+0.5)*meta.GateWidthM,
			}
			value, write := cb.HandleGate(ctx)
			if write {
				output.SetF64(r*numGates+g, value)
			}
		}
	}
	cb.HandleEndLoop(it.rs)
}
