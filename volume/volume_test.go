package volume

import (
	"testing"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

func radialAt(elevDegs float64, t rtime.Time) *datatype.RadialSet {
	return datatype.NewRadialSet("Reflectivity", t, geom.LLH{}, elevDegs, 0, 1, 1)
}

func TestVolumeOfNOrdersAscendingAndReplaces(t *testing.T) {
	v := NewVolumeOfN()
	base := rtime.FromEpochSeconds(1000, 0)
	v.Add(Entry{Subtype: "01.5", Time: base, Data: radialAt(1.5, base)})
	v.Add(Entry{Subtype: "00.5", Time: base, Data: radialAt(0.5, base)})
	v.Add(Entry{Subtype: "19.5", Time: base, Data: radialAt(19.5, base)})

	got := v.Entries()
	want := []string{"00.5", "01.5", "19.5"}
	if len(got) != len(want) {
		t.Fatalf("Size = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Subtype != w {
			t.Fatalf("entries[%d].Subtype = %q, want %q", i, got[i].Subtype, w)
		}
	}

	replacement := radialAt(1.5, base.Plus(rtime.Seconds(60)))
	v.Add(Entry{Subtype: "01.5", Time: base.Plus(rtime.Seconds(60)), Data: replacement})
	if v.Size() != 3 {
		t.Fatalf("Size after replace = %d, want 3 (no duplicate)", v.Size())
	}
	got = v.Entries()
	if got[1].Data != replacement {
		t.Fatal("replacement did not take effect in place")
	}
}

func TestVolumeOfNPurgeMonotonicity(t *testing.T) {
	v := NewVolumeOfN()
	times := []int64{100, 200, 300, 400, 500}
	for i, ts := range times {
		tm := rtime.FromEpochSeconds(ts, 0)
		v.Add(Entry{Subtype: string(rune('a' + i)), Time: tm, Data: radialAt(float64(i), tm)})
	}
	v.Purge(rtime.Seconds(150))
	// newest = 500; window 150 keeps t >= 350 -> only 400 and 500.
	got := v.Entries()
	if len(got) != 2 {
		t.Fatalf("after purge, Size = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Time.EpochSeconds() < 400 {
			t.Fatalf("purge kept entry older than window: %v", e.Time)
		}
	}
}

func TestVolumeOf1ReplacesOnlyWhenNewer(t *testing.T) {
	v := NewVolumeOf1()
	older := rtime.FromEpochSeconds(100, 0)
	newer := rtime.FromEpochSeconds(200, 0)

	first := radialAt(0.5, older)
	v.Add(Entry{Time: older, Data: first})
	if v.Entries()[0].Data != first {
		t.Fatal("first add did not take")
	}

	stale := radialAt(0.5, older)
	v.Add(Entry{Time: older, Data: stale})
	if v.Entries()[0].Data != first {
		t.Fatal("equal-time add should not replace")
	}

	fresh := radialAt(0.5, newer)
	v.Add(Entry{Time: newer, Data: fresh})
	if v.Entries()[0].Data != fresh {
		t.Fatal("newer add should replace")
	}
}

func TestGetSpreadReturnsNilAtBoundaries(t *testing.T) {
	v := NewVolumeOfN()
	base := rtime.Now()
	tilts := []float64{0.5, 1.5, 2.5, 3.5}
	for _, e := range tilts {
		v.Add(Entry{Subtype: elevSubtype(e), Time: base, Data: radialAt(e, base)})
	}

	lower2, lower, upper, upper2 := v.GetSpread(2.0)
	if lower2 == nil || lower2.ElevationDegs != 0.5 {
		t.Fatalf("lower2 = %v, want elevation 0.5", lower2)
	}
	if lower == nil || lower.ElevationDegs != 1.5 {
		t.Fatalf("lower = %v, want elevation 1.5", lower)
	}
	if upper == nil || upper.ElevationDegs != 2.5 {
		t.Fatalf("upper = %v, want elevation 2.5", upper)
	}
	if upper2 == nil || upper2.ElevationDegs != 3.5 {
		t.Fatalf("upper2 = %v, want elevation 3.5", upper2)
	}

	// Below everything: both lowers nil.
	lower2, lower, upper, upper2 = v.GetSpread(-1.0)
	if lower2 != nil || lower != nil {
		t.Fatalf("expected nil lower neighbors below range, got %v %v", lower2, lower)
	}
	if upper == nil || upper2 == nil {
		t.Fatal("expected upper neighbors present below range")
	}

	// Above everything: both uppers nil.
	lower2, lower, upper, upper2 = v.GetSpread(100.0)
	if upper != nil || upper2 != nil {
		t.Fatalf("expected nil upper neighbors above range, got %v %v", upper, upper2)
	}
	if lower == nil || lower2 == nil {
		t.Fatal("expected lower neighbors present above range")
	}
}

func elevSubtype(e float64) string {
	if e < 10 {
		return "0" + ftoa1(e)
	}
	return ftoa1(e)
}

func ftoa1(e float64) string {
	whole := int(e)
	frac := int((e - float64(whole)) * 10)
	digits := "0123456789"
	return string(rune('0'+whole)) + "." + string(digits[frac])
}
