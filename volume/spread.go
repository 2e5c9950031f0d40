package volume

import (
	"sort"

	"github.com/retoomey/RAPIO-sub003/datatype"
)

// GetSpread returns the two nearest RadialSets below targetElevDegs
// and the two nearest above, each nil if no such neighbor exists. The
// search works against a head-and-tail-padded view of the ordered
// entries (two nil RadialSets at each end) so the four returns are
// plain index arithmetic with no special-casing at the boundaries —
// vertical-interpolation algorithms (the echo-top crossing formula in
// particular) need exactly this four-point neighborhood.
func (v *VolumeOfN) GetSpread(targetElevDegs float64) (lower2, lower, upper, upper2 *datatype.RadialSet) {
	n := len(v.entries)
	padded := make([]*datatype.RadialSet, n+4)
	for i, e := range v.entries {
		padded[i+2] = e.Data
	}

	i := sort.Search(n, func(i int) bool {
		return v.entries[i].Data.ElevationDegs > targetElevDegs
	})
	pi := i + 2

	return padded[pi-2], padded[pi-1], padded[pi], padded[pi+1]
}
