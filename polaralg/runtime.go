package polaralg

import (
	"fmt"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/rtime"
	"github.com/retoomey/RAPIO-sub003/volume"
)

// VolumeProcessor is the domain-specific hook a PolarAlgorithm drives
// once per accepted record: given the virtual volume the record just
// joined, produce (or update) the derived output product.
type VolumeProcessor interface {
	ProcessVolume(incoming rtime.Time, elevationDegs float64, v *volume.VolumeOfN) (*datatype.RadialSet, error)
}

// PolarAlgorithm is the shared runtime every polar algorithm (echo
// top, VCC, ...) rides on top of: an elevation ceiling, a
// first-record radar/type latch, and a map of virtual volumes keyed
// by "<radarName>_<typeName>".
type PolarAlgorithm struct {
	CeilingDegs float64
	Processor   VolumeProcessor

	radarName string
	typeName  string
	latched   bool
	volumes   map[string]*volume.VolumeOfN
}

// NewPolarAlgorithm builds a runtime that only accepts records at or
// below ceilingDegs elevation, dispatching accepted ones to processor.
func NewPolarAlgorithm(ceilingDegs float64, processor VolumeProcessor) *PolarAlgorithm {
	return &PolarAlgorithm{
		CeilingDegs: ceilingDegs,
		Processor:   processor,
		volumes:     map[string]*volume.VolumeOfN{},
	}
}

// Ingest accepts one incoming RadialSet. It is silently dropped if its
// elevation exceeds the ceiling, or if the algorithm has already
// latched onto a different (radarName, typeName) pair.
func (a *PolarAlgorithm) Ingest(radarName, typeName, subtype string, rs *datatype.RadialSet) (*datatype.RadialSet, error) {
	if rs.ElevationDegs > a.CeilingDegs {
		return nil, nil
	}
	if !a.latched {
		a.radarName = radarName
		a.typeName = typeName
		a.latched = true
	} else if radarName != a.radarName || typeName != a.typeName {
		return nil, nil
	}

	key := fmt.Sprintf("%s_%s", radarName, typeName)
	v, ok := a.volumes[key]
	if !ok {
		v = volume.NewVolumeOfN()
		a.volumes[key] = v
	}
	v.Add(volume.Entry{Subtype: subtype, Time: rs.DataTime, Data: rs})

	return a.Processor.ProcessVolume(rs.DataTime, rs.ElevationDegs, v)
}
