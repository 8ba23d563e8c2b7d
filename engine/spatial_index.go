package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/tilequest/core"
)

// SpatialIndex owns entity positions. Collidables and ceilings are keyed separately so a roof
// can sit above an occupied cell; both maps are only mutated here and never desynchronize.
type SpatialIndex struct {
	extent     core.Point
	entities   map[EntityID]*Entity
	collidable map[core.Point]*Entity // At most one Player/Static/Movable per cell
	ceilings   map[core.Point]*Entity // At most one Ceiling per cell
	roofs      *CeilingRegistry
}

// NewSpatialIndex creates an empty index bounded by extent (inclusive)
func NewSpatialIndex(extent core.Point) *SpatialIndex {
	return &SpatialIndex{
		extent:     extent,
		entities:   make(map[EntityID]*Entity),
		collidable: make(map[core.Point]*Entity),
		ceilings:   make(map[core.Point]*Entity),
		roofs:      newCeilingRegistry(),
	}
}

// InBounds reports whether p lies in [0, extent] on both axes
func (si *SpatialIndex) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X <= si.extent.X && p.Y >= 0 && p.Y <= si.extent.Y
}

// Insert places e at e.Position. Rejections are logged and leave the index unchanged
func (si *SpatialIndex) Insert(e *Entity) error {
	if err := si.checkInsert(e); err != nil {
		log.Printf("spatial: insert %s %d at %v: %v", e.Kind, e.ID, e.Position, err)
		return err
	}

	si.entities[e.ID] = e
	if e.Kind == KindCeiling {
		si.ceilings[e.Position] = e
		si.roofs.add(e.CeilingGroup, e.Position)
	} else {
		si.collidable[e.Position] = e
	}
	return nil
}

func (si *SpatialIndex) checkInsert(e *Entity) error {
	if !si.InBounds(e.Position) {
		return ErrOutOfBounds
	}
	if _, exists := si.entities[e.ID]; exists {
		return fmt.Errorf("entity %d already indexed: %w", e.ID, ErrOccupiedCell)
	}
	if e.Kind == KindCeiling {
		if e.CeilingGroup < 0 {
			return ErrInvalidCeilingGroup
		}
		if other, ok := si.ceilings[e.Position]; ok {
			return fmt.Errorf("ceiling %d: %w", other.ID, ErrOccupiedCell)
		}
		return nil
	}
	if other, ok := si.collidable[e.Position]; ok {
		return fmt.Errorf("%s %d: %w", other.Kind, other.ID, ErrOccupiedCell)
	}
	return nil
}

// Lookup returns the collidable entity at p
func (si *SpatialIndex) Lookup(p core.Point) (*Entity, bool) {
	e, ok := si.collidable[p]
	return e, ok
}

// IsOccupied reports whether a collidable entity holds p
func (si *SpatialIndex) IsOccupied(p core.Point) bool {
	_, ok := si.collidable[p]
	return ok
}

// CeilingAt returns the ceiling tile at p
func (si *SpatialIndex) CeilingAt(p core.Point) (*Entity, bool) {
	e, ok := si.ceilings[p]
	return e, ok
}

// Entity returns an indexed entity by id
func (si *SpatialIndex) Entity(id EntityID) (*Entity, bool) {
	e, ok := si.entities[id]
	return e, ok
}

// Roofs exposes the ceiling grouping for read access
func (si *SpatialIndex) Roofs() *CeilingRegistry {
	return si.roofs
}

// Move relocates a collidable entity. Succeeds iff newPos is in bounds and unoccupied;
// the old key is removed and the new one written in the same call.
func (si *SpatialIndex) Move(id EntityID, newPos core.Point) bool {
	e, ok := si.entities[id]
	if !ok || !e.Kind.Collidable() {
		return false
	}
	if !si.InBounds(newPos) {
		return false
	}
	if _, occupied := si.collidable[newPos]; occupied {
		return false
	}

	delete(si.collidable, e.Position)
	e.Position = newPos
	si.collidable[newPos] = e
	return true
}

// Len returns the number of collidable and ceiling entities
func (si *SpatialIndex) Len() (collidable, ceilings int) {
	return len(si.collidable), len(si.ceilings)
}
