package datatype

import (
	"testing"

	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

func newGrid2D(sizeX, sizeY int, values []float64) *DataGrid {
	g := NewDataGrid("Test", rtime.Now(), geom.LLH{}, []DimensionEntry{
		{Name: "x", Size: sizeX},
		{Name: "y", Size: sizeY},
	})
	g.AddArray(PrimaryName, "dimensionless", Double, []int{0, 1})
	p, _ := g.GetNode(PrimaryName)
	for i, v := range values {
		p.Array().SetF64(i, v)
	}
	return g
}

func TestSparse2DSingleValue(t *testing.T) {
	// 4x4 grid, all missing except [1][2] = 42.0
	values := make([]float64, 16)
	for i := range values {
		values[i] = MissingData
	}
	values[1*4+2] = 42.0
	g := newGrid2D(4, 4, values)

	if err := g.PreWriteSparse2D(); err != nil {
		t.Fatalf("PreWriteSparse2D: %v", err)
	}

	pc, _ := g.GetNode("pixel_count")
	px, _ := g.GetNode("pixel_x")
	py, _ := g.GetNode("pixel_y")
	primary, _ := g.GetNode(PrimaryName)

	if pc.Array().Len() != 1 {
		t.Fatalf("expected 1 pixel, got %d", pc.Array().Len())
	}
	if px.Array().GetF64(0) != 1 || py.Array().GetF64(0) != 2 {
		t.Fatalf("expected pixel at (1,2), got (%v,%v)", px.Array().GetF64(0), py.Array().GetF64(0))
	}
	if primary.Array().GetF64(0) != 42.0 {
		t.Fatalf("expected value 42.0, got %v", primary.Array().GetF64(0))
	}
	if pc.Array().GetF64(0) != 1 {
		t.Fatalf("expected count 1, got %v", pc.Array().GetF64(0))
	}

	if err := g.PostReadUnsparse2D(); err != nil {
		t.Fatalf("PostReadUnsparse2D: %v", err)
	}
	restored, _ := g.GetNode(PrimaryName)
	for i, want := range values {
		if got := restored.Array().GetF64(i); got != want {
			t.Fatalf("restored[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestSparseRunMerge(t *testing.T) {
	// 1x4 grid: [5, 5, 5, Missing]
	g := newGrid2D(1, 4, []float64{5, 5, 5, MissingData})
	if err := g.PreWriteSparse2D(); err != nil {
		t.Fatalf("PreWriteSparse2D: %v", err)
	}
	pc, _ := g.GetNode("pixel_count")
	px, _ := g.GetNode("pixel_x")
	py, _ := g.GetNode("pixel_y")
	primary, _ := g.GetNode(PrimaryName)

	if pc.Array().Len() != 1 {
		t.Fatalf("expected one run, got %d entries", pc.Array().Len())
	}
	if px.Array().GetF64(0) != 0 || py.Array().GetF64(0) != 0 {
		t.Fatalf("expected run starting at (0,0), got (%v,%v)", px.Array().GetF64(0), py.Array().GetF64(0))
	}
	if primary.Array().GetF64(0) != 5 {
		t.Fatalf("expected value 5, got %v", primary.Array().GetF64(0))
	}
	if pc.Array().GetF64(0) != 3 {
		t.Fatalf("expected run count 3, got %v", pc.Array().GetF64(0))
	}
}

func TestUnsparseRestoreIsNoOpOnOtherArrays(t *testing.T) {
	values := []float64{5, 5, 5, MissingData}
	g := newGrid2D(1, 4, values)
	g.AddArray("Azimuth", "Degrees", Float, []int{0}, 10.0)
	if err := g.PreWriteSparse2D(); err != nil {
		t.Fatalf("PreWriteSparse2D: %v", err)
	}
	g.UnsparseRestore()

	if g.TypeName != "Test" {
		t.Fatalf("expected type name restored to Test, got %s", g.TypeName)
	}
	restored, ok := g.GetNode(PrimaryName)
	if !ok {
		t.Fatalf("primary missing after UnsparseRestore")
	}
	for i, want := range values {
		if got := restored.Array().GetF64(i); got != want {
			t.Fatalf("primary[%d] = %v want %v", i, got, want)
		}
	}
	az, ok := g.GetNode("Azimuth")
	if !ok || az.Array().GetF64(0) != 10.0 {
		t.Fatalf("Azimuth array was disturbed by UnsparseRestore")
	}
}

func TestAddArrayDimensionIndexOutOfRange(t *testing.T) {
	g := NewDataGrid("Test", rtime.Now(), geom.LLH{}, []DimensionEntry{{Name: "x", Size: 4}})
	_, err := g.AddArray("bad", "", Double, []int{5})
	if !Is(err, ErrDimensionIndexOutOfRange) {
		t.Fatalf("expected ErrDimensionIndexOutOfRange, got %v", err)
	}
}

func TestChangeArrayNameCollision(t *testing.T) {
	g := NewDataGrid("Test", rtime.Now(), geom.LLH{}, []DimensionEntry{{Name: "x", Size: 4}})
	g.AddArray("a", "", Double, []int{0})
	g.AddArray("b", "", Double, []int{0})
	err := g.ChangeArrayName("a", "b")
	if !Is(err, ErrNameCollision) {
		t.Fatalf("expected ErrNameCollision, got %v", err)
	}
}

func TestResizeIdempotence(t *testing.T) {
	a := NewTypedArray[float64]([]int{4, 4})
	before := a.Len()
	a.Resize([]int{4, 4})
	if a.Len() != before {
		t.Fatalf("resize to same shape changed element count: %d -> %d", before, a.Len())
	}
}
