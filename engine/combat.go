package engine

import (
	"log"

	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
)

// FleeOutcome records the result of the last Run attempt
type FleeOutcome uint8

const (
	FleeNone FleeOutcome = iota
	FleeEscaped
	FleeFailed
)

// CombatState is the cursor and bookkeeping of the active encounter
type CombatState struct {
	Selection int
	// PendingRetaliations counts enemy moves queued by failed escapes. Recorded only;
	// there is no damage model to resolve them against yet.
	PendingRetaliations int
	LastFlee            FleeOutcome
}

// CombatView is the read-only snapshot the renderer draws
type CombatView struct {
	Enemy               string
	Health              int
	MaxHealth           int
	Options             [constants.CombatOptionCount]string
	Selected            int
	PendingRetaliations int
	LastFlee            FleeOutcome
}

func (g *GameContext) handleCombat(cmd core.Command) {
	enemy, _, ok := g.activeTarget(InteractionCombat)
	if !ok {
		g.abortInteraction("combat target missing")
		return
	}

	switch cmd {
	case core.CmdLeft:
		g.Combat.Selection = clampIndex(g.Combat.Selection-1, constants.CombatOptionCount)
	case core.CmdRight:
		g.Combat.Selection = clampIndex(g.Combat.Selection+1, constants.CombatOptionCount)
	case core.CmdConfirm:
		switch g.Combat.Selection {
		case constants.CombatOptionFight:
			// TODO: damage exchange and victory/defeat once a combat formula is designed
			log.Printf("combat: fight against %s (%d) has no resolution", enemy.Name, enemy.ID)
		case constants.CombatOptionRun:
			g.attemptFlee(enemy)
		}
	}
}

func (g *GameContext) attemptFlee(enemy *Entity) {
	player := g.World.Player()
	if player == nil {
		g.abortInteraction("combat without player")
		return
	}
	if g.FleeSucceeds(player, enemy) {
		g.returnToExploration()
		g.Combat.LastFlee = FleeEscaped
		return
	}
	g.Combat.LastFlee = FleeFailed
	g.Combat.PendingRetaliations++
	log.Printf("combat: escape from %s failed, %d retaliation(s) queued", enemy.Name, g.Combat.PendingRetaliations)
}

// FleeSucceeds fails only when the actor is no faster than the enemy and the roll
// exceeds the threshold. A faster actor escapes without rolling.
func (g *GameContext) FleeSucceeds(actor, enemy *Entity) bool {
	if actor.agility() > enemy.agility() {
		return true
	}
	return g.Roll() <= constants.FleeFailThreshold
}

// CombatView returns the encounter for display; false outside Combat mode
func (g *GameContext) CombatView() (CombatView, bool) {
	if g.Mode != core.ModeCombat {
		return CombatView{}, false
	}
	enemy, _, ok := g.activeTarget(InteractionCombat)
	if !ok {
		return CombatView{}, false
	}
	v := CombatView{
		Enemy:               enemy.Name,
		Options:             constants.CombatMenuLabels,
		Selected:            clampIndex(g.Combat.Selection, constants.CombatOptionCount),
		PendingRetaliations: g.Combat.PendingRetaliations,
		LastFlee:            g.Combat.LastFlee,
	}
	if enemy.Stats != nil {
		v.Health = enemy.Stats.Health
		v.MaxHealth = enemy.Stats.MaxHealth
	}
	return v, true
}
