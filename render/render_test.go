package render

import (
	"image/color"
	"testing"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/projection"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

func TestReflectivitySchemesCoverMissingAsTransparent(t *testing.T) {
	for name, fn := range ReflectivitySchemes {
		got := fn(datatype.MissingData)
		want := color.NRGBA{0, 0, 0, 0}
		if got != want {
			t.Fatalf("scheme %s: missing value = %v, want transparent", name, got)
		}
	}
}

func TestDbzColorNOAABands(t *testing.T) {
	lowDark := dbzColorNOAA(0.0)
	if lowDark != transparent {
		t.Fatalf("below-5dbz = %v, want transparent", lowDark)
	}
	mid := dbzColorNOAA(22.0)
	high := dbzColorNOAA(62.0)
	if mid == high {
		t.Fatal("expected distinct colors across dBZ bands")
	}
}

func TestVelColorRadarscopeClampsRange(t *testing.T) {
	below := velColorRadarscope(-500)
	above := velColorRadarscope(500)
	lowBand := velColorRadarscope(-140)
	highBand := velColorRadarscope(140)
	if below != lowBand {
		t.Fatalf("out-of-range-low = %v, want clamp to %v", below, lowBand)
	}
	if above != highBand {
		t.Fatalf("out-of-range-high = %v, want clamp to %v", above, highBand)
	}
}

func TestTileProducesRequestedDimensions(t *testing.T) {
	rs := datatype.NewRadialSet("Reflectivity", rtime.Now(), geom.LLH{LatDegs: 35.0, LonDegs: -97.0, HeightKMs: 0.4}, 0.5, 0, 4, 4)
	proj := projection.NewRadialSetProjection(rs, projection.DefaultAccuracy)
	bbox := projection.CoverageTile(8, 16, 16, 35.0, -97.0)

	img := Tile(proj, bbox, ReflectivitySchemes["noaa"])
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("tile size = %dx%d, want 16x16", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPolarImageProducesSquareCanvas(t *testing.T) {
	rs := datatype.NewRadialSet("Reflectivity", rtime.Now(), geom.LLH{}, 0.5, 0, 8, 10)
	azNode, _ := rs.GetNode("Azimuth")
	bwNode, _ := rs.GetNode("BeamWidth")
	gwNode, _ := rs.GetNode("GateWidth")
	az := azNode.Array()
	bw := bwNode.Array()
	gw := gwNode.Array()
	for i := 0; i < 8; i++ {
		az.SetF64(i, float64(i)*45.0)
		bw.SetF64(i, 45.0)
		gw.SetF64(i, 250.0)
	}

	img := PolarImage(rs, PolarImageOptions{
		SizePx:    256,
		RangeKMs:  50,
		ColorFunc: ReflectivitySchemes["noaa"],
	})
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Fatalf("canvas = %dx%d, want 256x256", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
