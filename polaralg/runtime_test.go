package polaralg

import (
	"testing"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
	"github.com/retoomey/RAPIO-sub003/volume"
)

type recordingProcessor struct {
	calls int
	sizes []int
}

func (p *recordingProcessor) ProcessVolume(incoming rtime.Time, elevationDegs float64, v *volume.VolumeOfN) (*datatype.RadialSet, error) {
	p.calls++
	p.sizes = append(p.sizes, v.Size())
	return nil, nil
}

func newTestRadialSet(elevationDegs float64, t rtime.Time) *datatype.RadialSet {
	return datatype.NewRadialSet("Reflectivity", t, geom.LLH{}, elevationDegs, 0, 2, 2)
}

func TestIngestRejectsAboveCeiling(t *testing.T) {
	proc := &recordingProcessor{}
	alg := NewPolarAlgorithm(10.0, proc)

	rs := newTestRadialSet(19.5, rtime.Now())
	out, err := alg.Ingest("KTLX", "Reflectivity", "19.5", rs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Fatal("expected nil output for above-ceiling record")
	}
	if proc.calls != 0 {
		t.Fatalf("processor called %d times, want 0", proc.calls)
	}
}

func TestIngestLatchesFirstRadarTypePair(t *testing.T) {
	proc := &recordingProcessor{}
	alg := NewPolarAlgorithm(20.0, proc)

	base := rtime.Now()
	rs1 := newTestRadialSet(0.5, base)
	if _, err := alg.Ingest("KTLX", "Reflectivity", "00.5", rs1); err != nil {
		t.Fatal(err)
	}

	// Different radar: should be silently dropped, not latched over.
	rs2 := newTestRadialSet(0.5, base.Plus(rtime.Seconds(60)))
	out, err := alg.Ingest("KFWS", "Reflectivity", "00.5", rs2)
	if err != nil {
		t.Fatal(err)
	}
	if out != nil || proc.calls != 1 {
		t.Fatalf("expected drop of mismatched radar, calls=%d out=%v", proc.calls, out)
	}

	// Different type, same radar: also dropped.
	rs3 := newTestRadialSet(0.5, base.Plus(rtime.Seconds(120)))
	if _, err := alg.Ingest("KTLX", "Velocity", "00.5", rs3); err != nil {
		t.Fatal(err)
	}
	if proc.calls != 1 {
		t.Fatalf("expected mismatched type dropped, calls=%d", proc.calls)
	}

	// Same radar/type: accepted.
	rs4 := newTestRadialSet(1.5, base.Plus(rtime.Seconds(180)))
	if _, err := alg.Ingest("KTLX", "Reflectivity", "01.5", rs4); err != nil {
		t.Fatal(err)
	}
	if proc.calls != 2 {
		t.Fatalf("expected second matching record accepted, calls=%d", proc.calls)
	}
}

func TestIngestKeysVolumesByRadarAndType(t *testing.T) {
	proc := &recordingProcessor{}
	alg := NewPolarAlgorithm(20.0, proc)

	base := rtime.Now()
	rs1 := newTestRadialSet(0.5, base)
	if _, err := alg.Ingest("KTLX", "Reflectivity", "00.5", rs1); err != nil {
		t.Fatal(err)
	}
	rs2 := newTestRadialSet(1.5, base.Plus(rtime.Seconds(60)))
	if _, err := alg.Ingest("KTLX", "Reflectivity", "01.5", rs2); err != nil {
		t.Fatal(err)
	}

	if len(alg.volumes) != 1 {
		t.Fatalf("volumes map has %d keys, want 1", len(alg.volumes))
	}
	v, ok := alg.volumes["KTLX_Reflectivity"]
	if !ok {
		t.Fatal("expected volume keyed KTLX_Reflectivity")
	}
	if v.Size() != 2 {
		t.Fatalf("volume size = %d, want 2", v.Size())
	}
	if proc.sizes[0] != 1 || proc.sizes[1] != 2 {
		t.Fatalf("processor saw sizes %v, want [1 2]", proc.sizes)
	}
}
