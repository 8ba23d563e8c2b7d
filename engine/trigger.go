package engine

import "github.com/lixenwraith/tilequest/core"

// TriggerInteraction scans the eight cells around the avatar in row-major order and
// activates the first pending interaction found. Returns false if nothing was triggered
func (g *GameContext) TriggerInteraction() bool {
	if g.Mode != core.ModeExploration {
		return false
	}
	player := g.World.Player()
	if player == nil {
		return false
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := player.Position.Add(core.Point{X: dx, Y: dy})
			e, ok := g.World.Spatial.Lookup(p)
			if !ok {
				continue
			}
			in, ok := e.PendingInteraction()
			if !ok {
				continue
			}

			g.Active = ActiveInteraction{Position: p, Index: e.InteractionIndex}
			switch in.Kind {
			case InteractionDialogue:
				g.Mode = core.ModeDialogue
				g.Dialogue = DialogueState{}
			case InteractionCombat:
				g.Mode = core.ModeCombat
				g.Combat = CombatState{}
			}
			return true
		}
	}
	return false
}
