package engine

import (
	"slices"

	"github.com/lixenwraith/tilequest/core"
	"github.com/zyedidia/generic/mapset"
)

// CeilingRegistry groups ceiling coordinates by roof so a whole roof can be hidden at once
type CeilingRegistry struct {
	groups map[CeilingGroupID]mapset.Set[core.Point]
}

func newCeilingRegistry() *CeilingRegistry {
	return &CeilingRegistry{
		groups: make(map[CeilingGroupID]mapset.Set[core.Point]),
	}
}

// add records p as part of roof id; caller guarantees id >= 0
func (r *CeilingRegistry) add(id CeilingGroupID, p core.Point) {
	set, ok := r.groups[id]
	if !ok {
		set = mapset.New[core.Point]()
		r.groups[id] = set
	}
	set.Put(p)
}

// Contains reports whether p belongs to roof id
func (r *CeilingRegistry) Contains(id CeilingGroupID, p core.Point) bool {
	set, ok := r.groups[id]
	return ok && set.Has(p)
}

// Size returns the number of tiles in roof id
func (r *CeilingRegistry) Size(id CeilingGroupID) int {
	set, ok := r.groups[id]
	if !ok {
		return 0
	}
	return set.Size()
}

// Group returns the tiles of roof id in row-major order
func (r *CeilingRegistry) Group(id CeilingGroupID) []core.Point {
	set, ok := r.groups[id]
	if !ok {
		return nil
	}
	points := make([]core.Point, 0, set.Size())
	set.Each(func(p core.Point) {
		points = append(points, p)
	})
	slices.SortFunc(points, func(a, b core.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return points
}

// GroupIDs returns all registered roof ids in ascending order
func (r *CeilingRegistry) GroupIDs() []CeilingGroupID {
	ids := make([]CeilingGroupID, 0, len(r.groups))
	for id := range r.groups {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
