package polaralg

import (
	"testing"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

type countingCallback struct {
	visited []GateContext
}

func (c *countingCallback) HandleBeginLoop(rs *datatype.RadialSet) {}
func (c *countingCallback) HandleEndLoop(rs *datatype.RadialSet)   {}
func (c *countingCallback) HandleGate(ctx GateContext) (float64, bool) {
	c.visited = append(c.visited, ctx)
	return 0, false
}

func TestIteratorCoverageRowMajor(t *testing.T) {
	rs := datatype.NewRadialSet("Reflectivity", rtime.Now(), geom.LLH{}, 0.5, 0, 5, 7)
	it := NewRadialSetIterator(rs, datatype.PrimaryName)
	cb := &countingCallback{}
	it.Run(cb)

	if len(cb.visited) != 5*7 {
		t.Fatalf("visited %d gates, want %d", len(cb.visited), 5*7)
	}
	idx := 0
	for r := 0; r < 5; r++ {
		for g := 0; g < 7; g++ {
			if cb.visited[idx].Radial != r || cb.visited[idx].Gate != g {
				t.Fatalf("visit %d = (radial=%d,gate=%d), want (%d,%d)", idx, cb.visited[idx].Radial, cb.visited[idx].Gate, r, g)
			}
			idx++
		}
	}
}

func TestIteratorWritesBackToNamedArray(t *testing.T) {
	rs := datatype.NewRadialSet("Reflectivity", rtime.Now(), geom.LLH{}, 0.5, 0, 2, 2)
	it := NewRadialSetIterator(rs, datatype.PrimaryName)
	it.Run(writeAllCallback{value: 7.0})

	primaryNode, _ := rs.GetNode(datatype.PrimaryName)
	primary := primaryNode.Array()
	for i := 0; i < primary.Len(); i++ {
		if primary.GetF64(i) != 7.0 {
			t.Fatalf("index %d = %v, want 7.0", i, primary.GetF64(i))
		}
	}
}

type writeAllCallback struct{ value float64 }

func (w writeAllCallback) HandleBeginLoop(rs *datatype.RadialSet) {}
func (w writeAllCallback) HandleEndLoop(rs *datatype.RadialSet)   {}
func (w writeAllCallback) HandleGate(ctx GateContext) (float64, bool) {
	return w.value, true
}
