// Package volume implements the virtual-volume collections that a
// polar algorithm keys its history on: an ascending-by-subtype ordered
// collection (VolumeOfN) and a single-latest collection (VolumeOf1),
// plus the padded neighbor search (getSpread) vertical-interpolation
// algorithms rely on.
package volume

import (
	"sort"

	"github.com/retoomey/RAPIO-sub003/datatype"
	"github.com/retoomey/RAPIO-sub003/rtime"
)

// Entry is one member of a virtual volume: a RadialSet tagged with the
// subtype string the volume orders or replaces on (conventionally the
// elevation angle zero-padded to a fixed width, e.g. "00.5", "19.5",
// so subtype-ascending string order matches elevation-ascending order
// -- GetSpread relies on that agreement).
type Entry struct {
	Subtype string
	Time    rtime.Time
	Data    *datatype.RadialSet
}

// Volume is the shared read interface both collection variants
// implement: ordered access to members and a time-window purge.
type Volume interface {
	Entries() []Entry
	Purge(window rtime.Duration)
	Size() int
}

// VolumeOfN keeps one entry per distinct subtype, ordered ascending by
// subtype string; inserting a subtype already present replaces that
// entry in place rather than appending a duplicate.
type VolumeOfN struct {
	entries []Entry
}

// NewVolumeOfN returns an empty ordered volume.
func NewVolumeOfN() *VolumeOfN { return &VolumeOfN{} }

// Add inserts e in subtype-ascending order, replacing any existing
// entry with the same subtype.
func (v *VolumeOfN) Add(e Entry) {
	i := sort.Search(len(v.entries), func(i int) bool { return v.entries[i].Subtype >= e.Subtype })
	if i < len(v.entries) && v.entries[i].Subtype == e.Subtype {
		v.entries[i] = e
		return
	}
	v.entries = append(v.entries, Entry{})
	copy(v.entries[i+1:], v.entries[i:])
	v.entries[i] = e
}

// Entries returns the members in ascending-subtype order.
func (v *VolumeOfN) Entries() []Entry { return v.entries }

// Size returns the member count.
func (v *VolumeOfN) Size() int { return len(v.entries) }

// Purge drops every entry whose time is more than window before the
// newest-observed time in the volume.
func (v *VolumeOfN) Purge(window rtime.Duration) {
	if len(v.entries) == 0 {
		return
	}
	newest := v.entries[0].Time
	for _, e := range v.entries {
		if e.Time.After(newest) {
			newest = e.Time
		}
	}
	kept := v.entries[:0]
	for _, e := range v.entries {
		if newest.Sub(e.Time).Milliseconds() <= window.Milliseconds() {
			kept = append(kept, e)
		}
	}
	v.entries = kept
}

// VolumeOf1 holds exactly one entry: the most recently timestamped one
// seen. A newer observation replaces it; an older-or-equal one is
// dropped.
type VolumeOf1 struct {
	entry Entry
	have  bool
}

// NewVolumeOf1 returns an empty single-entry volume.
func NewVolumeOf1() *VolumeOf1 { return &VolumeOf1{} }

// Add replaces the held entry only if e is strictly newer.
func (v *VolumeOf1) Add(e Entry) {
	if !v.have || e.Time.After(v.entry.Time) {
		v.entry = e
		v.have = true
	}
}

// Entries returns a single-element slice, or empty if nothing was added.
func (v *VolumeOf1) Entries() []Entry {
	if !v.have {
		return nil
	}
	return []Entry{v.entry}
}

// Size returns 1 if an entry is held, else 0.
func (v *VolumeOf1) Size() int {
	if v.have {
		return 1
	}
	return 0
}

// Purge drops the held entry if it falls outside window relative to
// itself — a no-op, since a single-entry volume is always its own
// newest; kept for interface symmetry with VolumeOfN.
func (v *VolumeOf1) Purge(window rtime.Duration) {}
