package rtime

import (
	"testing"
	"time"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name                            string
		y, mo, d, h, mi, s              int
		frac                            float64
	}{
		{"whole second", 2022, 9, 2, 0, 4, 28, 0},
		{"fractional", 2026, 7, 30, 12, 0, 0, 0.5},
		{"near full second", 1999, 12, 31, 23, 59, 59, 0.999999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New(tt.y, time.Month(tt.mo), tt.d, tt.h, tt.mi, tt.s, tt.frac)
			if tm.Year() != tt.y || int(tm.Month()) != tt.mo || tm.Day() != tt.d ||
				tm.Hour() != tt.h || tm.Minute() != tt.mi || tm.Second() != tt.s {
				t.Fatalf("field round trip failed: got y=%d mo=%d d=%d h=%d mi=%d s=%d",
					tm.Year(), int(tm.Month()), tm.Day(), tm.Hour(), tm.Minute(), tm.Second())
			}
			if diff := tm.Fractional() - tt.frac; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("fractional round trip failed: got %v want %v", tm.Fractional(), tt.frac)
			}
		})
	}
}

func TestEpochArithmeticPreservesFractional(t *testing.T) {
	tm := FromEpochSeconds(1667390400, 0.25)
	advanced := tm.Plus(Seconds(10))
	if diff := advanced.Fractional() - 0.25; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("fractional not preserved across duration add: got %v", advanced.Fractional())
	}
	if advanced.EpochSeconds() != tm.EpochSeconds()+10 {
		t.Fatalf("epoch seconds not advanced correctly: got %d want %d", advanced.EpochSeconds(), tm.EpochSeconds()+10)
	}
}

func TestSubProducesDuration(t *testing.T) {
	a := FromEpochSeconds(1667390400, 0)
	b := FromEpochSeconds(1667390410, 0)
	d := b.Sub(a)
	if d.SecondsValue() != 10 {
		t.Fatalf("expected 10s duration, got %v", d.SecondsValue())
	}
}
