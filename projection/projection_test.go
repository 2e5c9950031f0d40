package projection

import "testing"

func TestTileLonDegsAtOrigin(t *testing.T) {
	// zoom 1 has 2 tiles across 360 degrees; tile 1 starts at 0.
	got := TileLonDegs(1, 1)
	if got != 0 {
		t.Fatalf("TileLonDegs(1,1) = %v, want 0", got)
	}
}

func TestTileLatDegsAtEquator(t *testing.T) {
	// zoom 1, y=1 is the southern tile row; its north edge sits at the equator.
	got := TileLatDegs(1, 1)
	if got > 0.01 || got < -0.01 {
		t.Fatalf("TileLatDegs(1,1) = %v, want ~0", got)
	}
}

func TestCoverageTileSquarePixels(t *testing.T) {
	bbox := CoverageTile(4, 256, 256, 35.0, -97.0)
	if bbox.DeltaLatDegs != -bbox.DeltaLonDegs {
		t.Fatalf("expected square pixels, got deltaLat=%v deltaLon=%v", bbox.DeltaLatDegs, bbox.DeltaLonDegs)
	}
}
