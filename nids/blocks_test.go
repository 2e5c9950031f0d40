package nids

import (
	"bytes"
	"testing"

	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

func TestMessageHeaderRoundTrip(t *testing.T) {
	h := &MessageHeader{
		MessageCode:   32,
		JulianDate:    19299,
		SecondsOfDay:  3600,
		MessageLength: 1234,
		SourceID:      1,
		DestinationID: 2,
		BlockCount:    3,
	}
	var buf bytes.Buffer
	if err := h.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 18 {
		t.Fatalf("message header length = %d, want 18", buf.Len())
	}
	got, err := ReadMessageHeader(&buf)
	if err != nil {
		t.Fatalf("ReadMessageHeader: %v", err)
	}
	if *got != *h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestProductDescriptionRoundTrip(t *testing.T) {
	p := &ProductDescription{
		Location:    geom.LLH{LatDegs: 35.333, LonDegs: -97.278, HeightKMs: 0.417},
		ProductCode: 32,
		OpMode:      2,
		VCP:         212,
		SeqNumber:   7,
		VolScanNum:  5,
		VolScanTime: rtime.FromEpochSeconds(1667390400, 0),
		GenTime:     rtime.FromEpochSeconds(1667390410, 0),
		NumMaps:     0,
	}
	p.SetElevationDegs(1.5)

	var buf bytes.Buffer
	if err := p.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadProductDescription(&buf)
	if err != nil {
		t.Fatalf("ReadProductDescription: %v", err)
	}

	if got.ProductCode != p.ProductCode || got.VCP != p.VCP || got.SeqNumber != p.SeqNumber {
		t.Fatalf("scalar field mismatch: got %+v", got)
	}
	if d := got.ElevationDegs() - 1.5; d > 0.05 || d < -0.05 {
		t.Fatalf("ElevationDegs() = %v, want ~1.5", got.ElevationDegs())
	}
	if d := got.Location.LatDegs - p.Location.LatDegs; d > 0.001 || d < -0.001 {
		t.Fatalf("LatDegs round trip mismatch: got %v, want %v", got.Location.LatDegs, p.Location.LatDegs)
	}
	if !got.VolScanTime.Equal(p.VolScanTime) {
		t.Fatalf("VolScanTime round trip mismatch: got %v, want %v", got.VolScanTime, p.VolScanTime)
	}
}

func TestDividerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDivider(&buf); err != nil {
		t.Fatalf("writeDivider: %v", err)
	}
	if err := readDivider(&buf); err != nil {
		t.Fatalf("readDivider: %v", err)
	}
}

func TestReadDividerRejectsWrongMarker(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00, 0x05})
	if err := readDivider(buf); err == nil {
		t.Fatal("expected error for non-divider bytes")
	}
}
