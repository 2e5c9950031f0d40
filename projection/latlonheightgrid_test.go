package projection

import (
	"testing"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

func buildUniformGrid() *datatype.LatLonHeightGrid {
	loc := geom.LLH{LatDegs: 40.0, LonDegs: -100.0, HeightKMs: 0}
	g := datatype.NewLatLonHeightGrid("Mosaic", rtime.Now(), loc, 0.1, 0.1, []float64{0.5, 1.0}, 5, 5)
	primaryNode, _ := g.GetNode(datatype.PrimaryName)
	primary := primaryNode.Array()
	for h := 0; h < 2; h++ {
		for lat := 0; lat < 5; lat++ {
			for lon := 0; lon < 5; lon++ {
				idx := (h*5+lat)*5 + lon
				primary.SetF64(idx, float64(h*100+lat*10+lon))
			}
		}
	}
	return g
}

func TestLatLonHeightGridProjectionNearestCell(t *testing.T) {
	g := buildUniformGrid()
	proj := NewLatLonHeightGridProjection(g, 0)

	v := proj.ValueAt(40.0, -100.0)
	if v != 0 {
		t.Fatalf("ValueAt(origin) = %v, want 0", v)
	}
	v = proj.ValueAt(39.8, -99.8)
	if v != 22 {
		t.Fatalf("ValueAt(row2,col2) = %v, want 22", v)
	}
}

func TestLatLonHeightGridProjectionLongitudeWraparound(t *testing.T) {
	loc := geom.LLH{LatDegs: 40.0, LonDegs: 179.9}
	g := datatype.NewLatLonHeightGrid("Mosaic", rtime.Now(), loc, 0.1, 0.1, []float64{0.5}, 3, 3)
	primaryNode, _ := g.GetNode(datatype.PrimaryName)
	primary := primaryNode.Array()
	for i := 0; i < 9; i++ {
		primary.SetF64(i, float64(i))
	}
	proj := NewLatLonHeightGridProjection(g, 0)

	// -180.1 wraps to 179.9, the grid's own left edge.
	v := proj.ValueAt(40.0, -180.1)
	if v != 0 {
		t.Fatalf("wrapped ValueAt = %v, want 0", v)
	}
}

func TestLatLonHeightGridProjectionOutOfLatRange(t *testing.T) {
	g := buildUniformGrid()
	proj := NewLatLonHeightGridProjection(g, 0)
	if v := proj.ValueAt(90.0, -100.0); datatype.IsGood(v) {
		t.Fatalf("ValueAt(out of range) = %v, want DataUnavailable", v)
	}
}
