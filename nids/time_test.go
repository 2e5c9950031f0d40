package nids

import "testing"

func TestTimeFromNIDSKnownEpoch(t *testing.T) {
	// Julian day 19299, seconds 3600 -> (19299-1)*86400 + 3600 = 1,667,350,800.
	got := TimeFromNIDS(19299, 3600)
	want := int64(1667350800)
	if got.EpochSeconds() != want {
		t.Fatalf("EpochSeconds() = %d, want %d", got.EpochSeconds(), want)
	}
}

func TestNIDSFromTimeRoundTrip(t *testing.T) {
	cases := []struct {
		julian int
		secs   int
	}{
		{1, 0},
		{19299, 3600},
		{60000, 86399},
	}
	for _, c := range cases {
		tm := TimeFromNIDS(c.julian, c.secs)
		gotJulian, gotSecs := NIDSFromTime(tm)
		if gotJulian != c.julian || gotSecs != c.secs {
			t.Fatalf("round trip (%d,%d) = (%d,%d)", c.julian, c.secs, gotJulian, gotSecs)
		}
	}
}
