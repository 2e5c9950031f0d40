package polaralg

import (
	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/geom"
	"github.com/retoomey/RAPIO-sub003/projection"
	"github.com/retoomey/RAPIO-sub003/volume"
)

// ReflectivityThresholdDBZ is the "good echo" cutoff every echo-top
// algorithm tests a gate's value against.
const ReflectivityThresholdDBZ = 18.0

// belowThresholdDBZ is substituted for a missing upper-tilt (T_a) value when
// interpolating a crossing elevation, per the Lak 2014 formula.
const belowThresholdDBZ = -14.0

// TiltSample is one intersecting tilt's reflectivity and elevation at
// a fixed (azimuth, range) used by the echo-top algorithms.
type TiltSample struct {
	ElevationDegs float64
	BeamWidthDegs float64
	ValueDBZ      float64
	Available     bool // false if no tilt geometrically intersects here
}

// TraditionalEchoTop scans tilts top-down (as ordered in samples,
// lowest elevation first) and returns the height of the first tilt
// whose value is good and at or above ReflectivityThresholdDBZ.
// stationHeightKMs and rangeKMs locate the gate; returns
// (heightKM, true) on a hit, or (DataUnavailable/MissingData, false)
// per the missing-propagation rule.
func TraditionalEchoTop(samples []TiltSample, stationHeightKMs, rangeKMs float64) (float64, bool) {
	anyAvailable := false
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		if !s.Available {
			continue
		}
		anyAvailable = true
		if datatype.IsGood(s.ValueDBZ) && s.ValueDBZ >= ReflectivityThresholdDBZ {
			elev := s.ElevationDegs + s.BeamWidthDegs/2.0
			h := geom.AttenuationHeightKM(stationHeightKMs, rangeKMs, elev)
			return h, true
		}
	}
	if !anyAvailable {
		return datatype.DataUnavailable, false
	}
	return datatype.MissingData, false
}

// InterpolatedEchoTop implements the Lak 2014 algorithm: find the
// highest tilt at or above threshold (T_b), then linearly interpolate
// the crossing elevation against the next tilt up (T_a). If T_b is
// the last tilt in samples, the crossing is simply half a beamwidth
// above it. A T_a that is unavailable or not good still supplies its
// elevation, with belowThresholdDBZ in place of its value.
func InterpolatedEchoTop(samples []TiltSample, stationHeightKMs, rangeKMs float64) (float64, bool) {
	highestGoodIdx := -1
	anyAvailable := false
	for i, s := range samples {
		if !s.Available {
			continue
		}
		anyAvailable = true
		if datatype.IsGood(s.ValueDBZ) && s.ValueDBZ >= ReflectivityThresholdDBZ {
			highestGoodIdx = i
		}
	}
	if highestGoodIdx == -1 {
		if !anyAvailable {
			return datatype.DataUnavailable, false
		}
		return datatype.MissingData, false
	}

	tb := samples[highestGoodIdx]
	if highestGoodIdx == len(samples)-1 {
		crossingElev := tb.ElevationDegs + tb.BeamWidthDegs/2.0
		return geom.AttenuationHeightKM(stationHeightKMs, rangeKMs, crossingElev), true
	}

	ta := samples[highestGoodIdx+1]
	za := ta.ValueDBZ
	if !ta.Available || !datatype.IsGood(za) {
		za = belowThresholdDBZ
	}
	zb := tb.ValueDBZ
	crossingElev := (ReflectivityThresholdDBZ-za)*(tb.ElevationDegs-ta.ElevationDegs)/(zb-za) + tb.ElevationDegs
	return geom.AttenuationHeightKM(stationHeightKMs, rangeKMs, crossingElev), true
}

// VerticalColumnCoverage sums each intersecting tilt's beam-depth
// contribution across the column, coalescing overlapping adjacent
// spans (union of vertical coverage), and returns the normalized
// weight in [0, 1] against fullColumnDepthKM.
func VerticalColumnCoverage(spans [][2]float64, fullColumnDepthKM float64) float64 {
	if len(spans) == 0 || fullColumnDepthKM <= 0 {
		return 0
	}
	merged := mergeSpans(spans)
	var total float64
	for _, s := range merged {
		total += s[1] - s[0]
	}
	weight := total / fullColumnDepthKM
	if weight > 1 {
		weight = 1
	}
	return weight
}

func mergeSpans(spans [][2]float64) [][2]float64 {
	sorted := append([][2]float64(nil), spans...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j][0] < sorted[j-1][0]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	var merged [][2]float64
	for _, s := range sorted {
		if len(merged) == 0 || s[0] > merged[len(merged)-1][1] {
			merged = append(merged, s)
			continue
		}
		if s[1] > merged[len(merged)-1][1] {
			merged[len(merged)-1][1] = s[1]
		}
	}
	return merged
}

// SampleColumn reads the TiltSample at (azDegs, rangeKMs) from every
// projection in tilts (ordered lowest elevation first), leaving
// Available=false for any tilt whose RadialSetProjection has no
// coverage at that point.
func SampleColumn(tilts []*projection.RadialSetProjection, elevations, beamWidths []float64, azDegs, rangeKMs float64) []TiltSample {
	samples := make([]TiltSample, len(tilts))
	for i, proj := range tilts {
		v, ok := proj.GetValueAtAzRange(azDegs, rangeKMs*1000.0)
		samples[i] = TiltSample{
			ElevationDegs: elevations[i],
			BeamWidthDegs: beamWidths[i],
			ValueDBZ:      v,
			Available:     ok,
		}
	}
	return samples
}

// columnFromVolumeSpread is a convenience entry point for a
// VolumeProcessor: it pulls the four-entry vertical spread for
// targetElevDegs out of v and reduces it to a two-tilt TiltSample
// pair suitable for InterpolatedEchoTop (lower, upper).
func columnFromVolumeSpread(v *volume.VolumeOfN, targetElevDegs, azDegs, rangeKMs float64) []TiltSample {
	_, lower, upper, _ := v.GetSpread(targetElevDegs)
	var samples []TiltSample
	for _, rs := range []*datatype.RadialSet{lower, upper} {
		if rs == nil {
			samples = append(samples, TiltSample{Available: false})
			continue
		}
		proj := projection.NewRadialSetProjection(rs, projection.DefaultAccuracy)
		value, ok := proj.GetValueAtAzRange(azDegs, rangeKMs*1000.0)
		beamWidthNode, _ := rs.GetNode("BeamWidth")
		samples = append(samples, TiltSample{
			ElevationDegs: rs.ElevationDegs,
			BeamWidthDegs: beamWidthNode.Array().GetF64(0),
			ValueDBZ:      value,
			Available:     ok,
		})
	}
	return samples
}
