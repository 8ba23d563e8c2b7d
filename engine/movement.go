package engine

import (
	"log"

	"github.com/lixenwraith/tilequest/core"
)

// MoveResult reports how a move resolved
type MoveResult uint8

const (
	MoveRejected MoveResult = iota // Nothing changed
	MoveStepped                    // Mover entered an empty cell
	MovePushed                     // A movable was shoved one cell and the mover took its place
)

// Accepted reports whether the mover changed position
func (r MoveResult) Accepted() bool {
	return r != MoveRejected
}

// MoveEntity steps a collidable entity one cell in dir, pushing at most one movable block.
// All-or-nothing: either every affected entity relocates or none does.
func (w *World) MoveEntity(id EntityID, dir core.Point) MoveResult {
	if !core.IsCardinal(dir) {
		return MoveRejected
	}
	mover, ok := w.Spatial.Entity(id)
	if !ok || !mover.Kind.Collidable() {
		return MoveRejected
	}

	target := mover.Position.Add(dir)
	if !w.Spatial.InBounds(target) {
		return MoveRejected
	}

	occupant, occupied := w.Spatial.Lookup(target)
	if !occupied {
		if !w.Spatial.Move(id, target) {
			return MoveRejected
		}
		return MoveStepped
	}

	if occupant.Kind != KindMovable {
		return MoveRejected
	}

	beyond := target.Add(dir)
	if !w.Spatial.InBounds(beyond) || w.Spatial.IsOccupied(beyond) {
		return MoveRejected
	}

	// Block first, so the mover's target is vacant
	if !w.Spatial.Move(occupant.ID, beyond) {
		return MoveRejected
	}
	if !w.Spatial.Move(id, target) {
		// Unreachable while single-threaded; undo to keep the push atomic
		if !w.Spatial.Move(occupant.ID, target) {
			log.Printf("movement: failed to restore block %d to %v", occupant.ID, target)
		}
		return MoveRejected
	}
	return MovePushed
}
