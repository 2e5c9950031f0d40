// Package render turns decoded products into images: a set of
// per-moment color scales and two rasterizers, one for a full polar
// sweep (draw2d arcs, labeled) and one for a single web-map tile
// (per-pixel nearest query against a projection).
package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// ColorFunc maps a decoded value to the color a pixel/arc should be
// painted. A value that fails datatype.IsGood (missing, unavailable,
// range-folded) always maps to fully transparent, regardless of
// scheme, so callers never special-case it.
type ColorFunc func(value float64) color.Color

// transparent is returned for any value a scheme has no business
// coloring (out of its domain, or one of the missing sentinels).
var transparent = color.NRGBA{0x00, 0x00, 0x00, 0x00}

func guarded(f func(float64) color.Color) ColorFunc {
	return func(v float64) color.Color {
		if !datatype.IsGood(v) {
			return transparent
		}
		return f(v)
	}
}

// ReflectivitySchemes maps scheme name to a ColorFunc over dBZ.
var ReflectivitySchemes = map[string]ColorFunc{
	"noaa":          guarded(dbzColorNOAA),
	"scope":         guarded(dbzColorScope),
	"scope-classic": guarded(dbzColorScopeClassic),
	"classic":       guarded(dbzColorClassic),
}

// VelocitySchemes maps scheme name to a ColorFunc over knots.
var VelocitySchemes = map[string]ColorFunc{
	"noaa": guarded(velColorRadarscope),
}

// SchemesFor returns the color scheme table for a product's physical
// unit, falling back to the reflectivity table (dBZ-like bands are
// the common case for the other NIDS products -- echo tops, VIL,
// composite reflectivity, precip accumulation all read the same way).
func SchemesFor(unit string) map[string]ColorFunc {
	switch unit {
	case "kt", "kts", "knots", "m/s":
		return VelocitySchemes
	default:
		return ReflectivitySchemes
	}
}

func dbzColorClassic(dbz float64) color.Color {
	switch {
	case dbz < 5.0:
		return colornames.Black
	case dbz < 10.0:
		return color.NRGBA{0x9C, 0x9C, 0x9C, 0xFF}
	case dbz < 15.0:
		return color.NRGBA{0x76, 0x76, 0x76, 0xFF}
	case dbz < 20.0:
		return color.NRGBA{0xFF, 0xAA, 0xAA, 0xFF}
	case dbz < 25.0:
		return color.NRGBA{0xEE, 0x8C, 0x8C, 0xFF}
	case dbz < 30.0:
		return color.NRGBA{0xC9, 0x70, 0x70, 0xFF}
	case dbz < 35.0:
		return color.NRGBA{0x00, 0xFB, 0x90, 0xFF}
	case dbz < 40.0:
		return color.NRGBA{0x00, 0xBB, 0x00, 0xFF}
	case dbz < 45.0:
		return color.NRGBA{0xFF, 0xFF, 0x70, 0xFF}
	case dbz < 50.0:
		return color.NRGBA{0xD0, 0xD0, 0x60, 0xFF}
	case dbz < 55.0:
		return color.NRGBA{0xFF, 0x60, 0x60, 0xFF}
	case dbz < 60.0:
		return color.NRGBA{0xDA, 0x00, 0x00, 0xFF}
	case dbz < 65.0:
		return color.NRGBA{0xAE, 0x00, 0x00, 0xFF}
	case dbz < 70.0:
		return color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
	case dbz < 75.0:
		return color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
	return color.NRGBA{0xE7, 0x00, 0xFF, 0xFF}
}

func dbzColorNOAA(dbz float64) color.Color {
	switch {
	case dbz < 5.0:
		return transparent
	case dbz < 10.0:
		return color.NRGBA{0x40, 0xe8, 0xe3, 0xFF}
	case dbz < 15.0:
		return color.NRGBA{0x26, 0xa4, 0xfa, 0xFF}
	case dbz < 20.0:
		return color.NRGBA{0x00, 0x30, 0xed, 0xFF}
	case dbz < 25.0:
		return color.NRGBA{0x49, 0xfb, 0x3e, 0xFF}
	case dbz < 30.0:
		return color.NRGBA{0x36, 0xc2, 0x2e, 0xFF}
	case dbz < 35.0:
		return color.NRGBA{0x27, 0x8c, 0x1e, 0xFF}
	case dbz < 40.0:
		return color.NRGBA{0xfe, 0xf5, 0x43, 0xFF}
	case dbz < 45.0:
		return color.NRGBA{0xeb, 0xb4, 0x33, 0xFF}
	case dbz < 50.0:
		return color.NRGBA{0xf6, 0x95, 0x2e, 0xFF}
	case dbz < 55.0:
		return color.NRGBA{0xf8, 0x0a, 0x26, 0xFF}
	case dbz < 60.0:
		return color.NRGBA{0xcb, 0x05, 0x16, 0xFF}
	case dbz < 65.0:
		return color.NRGBA{0xa9, 0x08, 0x13, 0xFF}
	case dbz < 70.0:
		return color.NRGBA{0xee, 0x34, 0xfa, 0xFF}
	case dbz < 75.0:
		return color.NRGBA{0x91, 0x61, 0xc4, 0xFF}
	}
	return color.NRGBA{0xff, 0xff, 0xFF, 0xFF}
}

func dbzColorScopeClassic(dbz float64) color.Color {
	switch {
	case dbz < 5.0:
		return colornames.Black
	case dbz < 10.0:
		return color.NRGBA{0x02, 0x0d, 0x02, 0xFF}
	case dbz < 15.0:
		return color.NRGBA{0x04, 0x23, 0x03, 0xFF}
	case dbz < 20.0:
		return color.NRGBA{0x11, 0x52, 0x0d, 0xFF}
	case dbz < 25.0:
		return color.NRGBA{0x33, 0xba, 0x2b, 0xFF}
	case dbz < 30.0:
		return color.NRGBA{0x43, 0xeb, 0x39, 0xFF}
	case dbz < 35.0:
		return color.NRGBA{0xff, 0xFB, 0x45, 0xFF}
	case dbz < 40.0:
		return color.NRGBA{0xf5, 0xcb, 0x39, 0xFF}
	case dbz < 45.0:
		return color.NRGBA{0xFb, 0xab, 0x32, 0xFF}
	case dbz < 50.0:
		return color.NRGBA{0xfa, 0x83, 0x2a, 0xFF}
	case dbz < 55.0:
		return color.NRGBA{0xbb, 0x03, 0x13, 0xFF}
	case dbz < 60.0:
		return color.NRGBA{0xf7, 0x06, 0x1d, 0xFF}
	case dbz < 65.0:
		return color.NRGBA{0xf9, 0x64, 0x69, 0xFF}
	case dbz < 70.0:
		return color.NRGBA{0xfa, 0x97, 0xcc, 0xFF}
	case dbz < 75.0:
		return color.NRGBA{0xf7, 0x34, 0xf9, 0xFF}
	}
	return color.NRGBA{0xff, 0xff, 0xFF, 0xFF}
}

func dbzColorScope(dbz float64) color.Color {
	if dbz < 0 || int(dbz) >= len(scopeRamp) {
		return colornames.Black
	}
	return scopeRamp[int(dbz)]
}

var scopeRamp = []color.Color{
	color.NRGBA{0x03, 0x03, 0x03, 0xff},
	color.NRGBA{0x09, 0x0A, 0x0A, 0xff},
	color.NRGBA{0x0F, 0x11, 0x14, 0xff},
	color.NRGBA{0x12, 0x15, 0x1A, 0xff},
	color.NRGBA{0x14, 0x19, 0x20, 0xff},
	color.NRGBA{0x16, 0x1B, 0x26, 0xff},
	color.NRGBA{0x16, 0x1D, 0x2C, 0xff},
	color.NRGBA{0x16, 0x1E, 0x31, 0xff},
	color.NRGBA{0x17, 0x21, 0x3A, 0xff},
	color.NRGBA{0x19, 0x25, 0x3F, 0xff},
	color.NRGBA{0x17, 0x21, 0x3A, 0xff},
	color.NRGBA{0x1D, 0x2D, 0x47, 0xff},
	color.NRGBA{0x23, 0x37, 0x52, 0xff},
	color.NRGBA{0x28, 0x41, 0x5C, 0xff},
	color.NRGBA{0x2E, 0x4C, 0x67, 0xff},
	color.NRGBA{0x34, 0x58, 0x72, 0xff},
	color.NRGBA{0x37, 0x5E, 0x77, 0xff},
	color.NRGBA{0x42, 0x73, 0x8A, 0xff},
	color.NRGBA{0x46, 0x7B, 0x90, 0xff},
	color.NRGBA{0x4E, 0x8C, 0x9D, 0xff},
	color.NRGBA{0x39, 0x9F, 0x5D, 0xff},
	color.NRGBA{0x2F, 0xA2, 0x3E, 0xff},
	color.NRGBA{0x2C, 0x9B, 0x3A, 0xff},
	color.NRGBA{0x25, 0x86, 0x2D, 0xff},
	color.NRGBA{0x20, 0x78, 0x25, 0xff},
	color.NRGBA{0x1E, 0x72, 0x21, 0xff},
	color.NRGBA{0x16, 0x59, 0x13, 0xff},
	color.NRGBA{0x14, 0x53, 0x11, 0xff},
	color.NRGBA{0x32, 0x71, 0x15, 0xff},
	color.NRGBA{0x5C, 0x92, 0x1C, 0xff},
	color.NRGBA{0xA6, 0xC7, 0x2A, 0xff},
	color.NRGBA{0xC1, 0xD9, 0x2F, 0xff},
	color.NRGBA{0xF6, 0xF9, 0x38, 0xff},
	color.NRGBA{0xF1, 0xF3, 0x37, 0xff},
	color.NRGBA{0xED, 0xEC, 0x35, 0xff},
	color.NRGBA{0xE0, 0xDA, 0x31, 0xff},
	color.NRGBA{0xD6, 0xCD, 0x2E, 0xff},
	color.NRGBA{0xC8, 0xBB, 0x2A, 0xff},
	color.NRGBA{0xC8, 0xBB, 0x2A, 0xff},
	color.NRGBA{0xBB, 0xAA, 0x26, 0xff},
	color.NRGBA{0xF4, 0x81, 0x25, 0xff},
	color.NRGBA{0xEA, 0x79, 0x24, 0xff},
	color.NRGBA{0xE1, 0x73, 0x22, 0xff},
	color.NRGBA{0xD8, 0x6D, 0x20, 0xff},
	color.NRGBA{0xCF, 0x67, 0x1F, 0xff},
	color.NRGBA{0xC6, 0x60, 0x1E, 0xff},
	color.NRGBA{0xC2, 0x5D, 0x1D, 0xff},
	color.NRGBA{0xB4, 0x54, 0x1B, 0xff},
	color.NRGBA{0xB0, 0x51, 0x1A, 0xff},
	color.NRGBA{0xA3, 0x48, 0x19, 0xff},
	color.NRGBA{0xF1, 0x0C, 0x20, 0xff},
	color.NRGBA{0xE1, 0x0D, 0x1E, 0xff},
	color.NRGBA{0xDA, 0x10, 0x1D, 0xff},
}

func velColorRadarscope(vel float64) color.Color {
	colors := velRamp
	i := scaleInt(vel, 140, -140, float64(len(colors)-1), 0)
	if i < 0 {
		i = 0
	}
	if i >= len(colors) {
		i = len(colors) - 1
	}
	return colors[i]
}

var velRamp = []color.Color{
	color.NRGBA{0x69, 0x1A, 0xC1, 0xff},
	color.NRGBA{0x15, 0x1F, 0x93, 0xff},
	color.NRGBA{0x23, 0x6F, 0xB3, 0xff},
	color.NRGBA{0x41, 0xDA, 0xDB, 0xff},
	color.NRGBA{0x66, 0xE1, 0xE2, 0xff},
	color.NRGBA{0x9E, 0xE8, 0xEA, 0xff},
	color.NRGBA{0x57, 0xFA, 0x63, 0xff},
	color.NRGBA{0x31, 0xE3, 0x2B, 0xff},
	color.NRGBA{0x24, 0xAA, 0x1F, 0xff},
	color.NRGBA{0x19, 0x76, 0x13, 0xff},
	color.NRGBA{0x63, 0x4F, 0x50, 0xff},
	color.NRGBA{0x6e, 0x2e, 0x39, 0xff},
	color.NRGBA{0x7F, 0x03, 0x0C, 0xff},
	color.NRGBA{0xB6, 0x07, 0x16, 0xff},
	color.NRGBA{0xF3, 0x22, 0x45, 0xff},
	color.NRGBA{0xF6, 0x50, 0x8A, 0xff},
	color.NRGBA{0xFB, 0x8B, 0xBF, 0xff},
	color.NRGBA{0xFD, 0xDE, 0x93, 0xff},
	color.NRGBA{0xFC, 0xB4, 0x70, 0xff},
	color.NRGBA{0xFA, 0x81, 0x4B, 0xff},
	color.NRGBA{0xDD, 0x60, 0x3C, 0xff},
}

// scaleInt scales value from [oldMin,oldMax] to [newMin,newMax].
func scaleInt(value, oldMax, oldMin, newMax, newMin float64) int {
	oldRange := oldMax - oldMin
	newRange := newMax - newMin
	return int(((value-oldMin)*newRange)/oldRange + newMin)
}
