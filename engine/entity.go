package engine

import "github.com/lixenwraith/tilequest/core"

// EntityID is a stable entity identity, allocated once and never reused
type EntityID uint64

// Kind discriminates entity behavior
type Kind uint8

const (
	KindPlayer  Kind = iota // The avatar; exactly one per world
	KindStatic              // Impassable, may carry interactions
	KindMovable             // Pushable block
	KindCeiling             // Visual occluder, never collides
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindStatic:
		return "static"
	case KindMovable:
		return "movable"
	case KindCeiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// Collidable reports whether the kind lives in the movement-blocking index
func (k Kind) Collidable() bool {
	return k != KindCeiling
}

// CeilingGroupID identifies one roof
type CeilingGroupID int

// NoCeilingGroup marks an ungrouped ceiling, or no roof overhead for the player
const NoCeilingGroup CeilingGroupID = -1

// Stats is the optional combat stat block of statics and the player
type Stats struct {
	Attack    int
	Defense   int
	Agility   int
	MaxHealth int
	Health    int
}

// NewStats returns a stat block at full health
func NewStats(attack, defense, agility, maxHealth int) *Stats {
	return &Stats{
		Attack:    attack,
		Defense:   defense,
		Agility:   agility,
		MaxHealth: maxHealth,
		Health:    maxHealth,
	}
}

// Entity is a game object. Position is owned by the SpatialIndex and only changes through it
type Entity struct {
	ID       EntityID
	Kind     Kind
	Name     string
	Position core.Point
	Glyph    core.Glyph

	// Static and Player only
	Stats            *Stats
	Interactions     []Interaction
	InteractionIndex int

	// Ceiling only
	CeilingGroup CeilingGroupID

	// Player only: the roof group currently above the avatar
	Overhead CeilingGroupID
}

// PendingInteraction returns the interaction under the entity's cursor
func (e *Entity) PendingInteraction() (*Interaction, bool) {
	if e.InteractionIndex < 0 || e.InteractionIndex >= len(e.Interactions) {
		return nil, false
	}
	return &e.Interactions[e.InteractionIndex], true
}

// HasPendingInteraction reports whether the entity can be interacted with
func (e *Entity) HasPendingInteraction() bool {
	_, ok := e.PendingInteraction()
	return ok
}

// agility treats a missing stat block as zero
func (e *Entity) agility() int {
	if e.Stats == nil {
		return 0
	}
	return e.Stats.Agility
}
