package projection

import (
	"testing"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

func buildUniformRadialSet(numRadials, numGates int, gateWidthM float64) *datatype.RadialSet {
	loc := geom.LLH{LatDegs: 35.0, LonDegs: -97.0, HeightKMs: 0.4}
	rs := datatype.NewRadialSet("Reflectivity", rtime.Now(), loc, 0.5, 1000.0, numRadials, numGates)
	azimuthNode, _ := rs.GetNode("Azimuth")
	beamWidthNode, _ := rs.GetNode("BeamWidth")
	gateWidthNode, _ := rs.GetNode("GateWidth")
	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	azimuth := azimuthNode.Array()
	beamWidth := beamWidthNode.Array()
	gateWidth := gateWidthNode.Array()
	primary := primaryNode.Array()

	for r := 0; r < numRadials; r++ {
		azimuth.SetF64(r, float64(r))
		beamWidth.SetF64(r, 1.0)
		gateWidth.SetF64(r, gateWidthM)
		for g := 0; g < numGates; g++ {
			primary.SetF64(r*numGates+g, float64(r*numGates+g))
		}
	}
	return rs
}

func TestAzLookupScenario3(t *testing.T) {
	rs := buildUniformRadialSet(360, 10, 250.0)
	proj := NewRadialSetProjection(rs, 1000)

	radial, gate, ok := proj.AzRangeToRadialGate(0.5, 1000.0+0.5*250.0)
	if !ok || radial != 0 || gate != 0 {
		t.Fatalf("got (radial=%d, gate=%d, ok=%v), want (0,0,true)", radial, gate, ok)
	}

	radial, _, ok = proj.AzRangeToRadialGate(359.9999, 1000.0+0.5*250.0)
	if !ok || radial != 359 {
		t.Fatalf("got radial=%d, ok=%v, want 359", radial, ok)
	}
}

func TestProjectionInversionInterior(t *testing.T) {
	rs := buildUniformRadialSet(36, 20, 250.0)
	proj := NewRadialSetProjection(rs, 1000)

	for radial := 0; radial < 36; radial++ {
		for gate := 0; gate < 20; gate++ {
			centerAz := float64(radial) + 0.5
			centerRange := 1000.0 + (float64(gate)+0.5)*250.0
			gotRadial, gotGate, ok := proj.AzRangeToRadialGate(centerAz, centerRange)
			if !ok || gotRadial != radial || gotGate != gate {
				t.Fatalf("radial=%d gate=%d: got (%d,%d,%v)", radial, gate, gotRadial, gotGate, ok)
			}
		}
	}
}

func TestAzRangeToRadialGateRejectsBeforeFirstGate(t *testing.T) {
	rs := buildUniformRadialSet(36, 20, 250.0)
	proj := NewRadialSetProjection(rs, 1000)
	if _, _, ok := proj.AzRangeToRadialGate(0.5, 500.0); ok {
		t.Fatal("expected rejection for range before first gate")
	}
}
