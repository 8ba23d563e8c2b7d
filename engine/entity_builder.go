package engine

import "github.com/lixenwraith/tilequest/core"

// EntityBuilder provides a fluent interface for constructing entities before they are
// committed to the world via Spawn().
//
// Example usage:
//
//	id, err := world.NewEntity(KindStatic, core.Point{X: 3, Y: 3}).
//	    WithGlyph(glyph).
//	    WithInteraction(dialogue).
//	    Spawn()
type EntityBuilder struct {
	world  *World
	entity *Entity
	built  bool
}

// NewEntity reserves an ID and starts building an entity of the given kind at p
func (w *World) NewEntity(kind Kind, p core.Point) *EntityBuilder {
	return &EntityBuilder{
		world: w,
		entity: &Entity{
			ID:           w.reserveEntityID(),
			Kind:         kind,
			Position:     p,
			CeilingGroup: NoCeilingGroup,
			Overhead:     NoCeilingGroup,
		},
	}
}

// WithName sets a display name used by panels and logs
func (eb *EntityBuilder) WithName(name string) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Name = name
	return eb
}

// WithGlyph sets the rune and color drawn for the entity
func (eb *EntityBuilder) WithGlyph(g core.Glyph) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Glyph = g
	return eb
}

// WithStats attaches a stat block (Static and Player)
func (eb *EntityBuilder) WithStats(s *Stats) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Stats = s
	return eb
}

// WithInteraction appends an interaction (Static and Player)
func (eb *EntityBuilder) WithInteraction(in Interaction) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Interactions = append(eb.entity.Interactions, in)
	return eb
}

// InCeilingGroup assigns the roof a ceiling tile belongs to
func (eb *EntityBuilder) InCeilingGroup(id CeilingGroupID) *EntityBuilder {
	eb.mustOpen()
	eb.entity.CeilingGroup = id
	return eb
}

// Spawn commits the entity to the world. A rejected entity is logged and discarded
func (eb *EntityBuilder) Spawn() (EntityID, error) {
	eb.mustOpen()
	eb.built = true
	if err := eb.world.spawn(eb.entity); err != nil {
		return 0, err
	}
	return eb.entity.ID, nil
}

func (eb *EntityBuilder) mustOpen() {
	if eb.built {
		panic("entity already spawned - cannot modify after Spawn()")
	}
}
