package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/tilequest/core"
)

// World owns every entity and the spatial index. Created once at bootstrap,
// then mutated only by the game loop goroutine.
type World struct {
	Spatial *SpatialIndex
	Ground  core.Glyph

	nextEntityID EntityID
	playerID     EntityID
}

// NewWorld creates an empty world bounded by extent (inclusive)
func NewWorld(extent core.Point, ground core.Glyph) *World {
	return &World{
		Spatial:      NewSpatialIndex(extent),
		Ground:       ground,
		nextEntityID: 1,
	}
}

// Player returns the avatar, or nil before one has been spawned
func (w *World) Player() *Entity {
	if w.playerID == 0 {
		return nil
	}
	e, _ := w.Spatial.Entity(w.playerID)
	return e
}

// spawn indexes a built entity. The player slot is claimed only on success
func (w *World) spawn(e *Entity) error {
	if e.Kind == KindPlayer && w.playerID != 0 {
		err := fmt.Errorf("entity %d: %w", e.ID, ErrDuplicatePlayer)
		log.Printf("world: %v", err)
		return err
	}
	if err := w.Spatial.Insert(e); err != nil {
		return err
	}
	if e.Kind == KindPlayer {
		w.playerID = e.ID
		w.RefreshOverhead()
	}
	return nil
}

// RefreshOverhead caches the roof group above the avatar, NoCeilingGroup when in the open
func (w *World) RefreshOverhead() {
	p := w.Player()
	if p == nil {
		return
	}
	if c, ok := w.Spatial.CeilingAt(p.Position); ok {
		p.Overhead = c.CeilingGroup
	} else {
		p.Overhead = NoCeilingGroup
	}
}

// reserveEntityID allocates a new entity ID; IDs of rejected spawns are not reused
func (w *World) reserveEntityID() EntityID {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}
