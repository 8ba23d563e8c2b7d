package engine

import (
	"log"

	"github.com/lixenwraith/tilequest/core"
)

// DialogueState is the cursor into the active conversation
type DialogueState struct {
	Node   int
	Choice int
}

// DialogueView is the read-only snapshot the renderer draws
type DialogueView struct {
	Speaker  string
	Text     string
	Choices  []string
	Selected int
}

func (g *GameContext) handleDialogue(cmd core.Command) {
	owner, in, ok := g.activeTarget(InteractionDialogue)
	if !ok {
		g.abortInteraction("dialogue target missing")
		return
	}
	nodes := in.Dialogue.Nodes
	if g.Dialogue.Node < 0 || g.Dialogue.Node >= len(nodes) {
		g.abortInteraction("dialogue node out of range")
		return
	}
	node := &nodes[g.Dialogue.Node]
	count := len(node.Choices)

	switch cmd {
	case core.CmdLeft:
		if count > 0 {
			g.Dialogue.Choice = clampIndex(g.Dialogue.Choice-1, count)
		}
	case core.CmdRight:
		if count > 0 {
			g.Dialogue.Choice = clampIndex(g.Dialogue.Choice+1, count)
		}
	case core.CmdConfirm:
		if count == 0 {
			g.finishDialogue(owner)
			return
		}
		choice := clampIndex(g.Dialogue.Choice, count)
		jump := node.Jumps[choice]
		if jump < 0 {
			g.finishDialogue(owner)
			return
		}
		if jump >= len(nodes) {
			log.Printf("dialogue: %s node %d choice %d jumps to %d of %d", owner.Name, g.Dialogue.Node, choice, jump, len(nodes))
			g.abortInteraction("dialogue jump out of range")
			return
		}
		g.Dialogue.Node = jump
		g.Dialogue.Choice = 0
	}
}

// finishDialogue closes the conversation, moving the owner on to its next interaction
// when one exists; the last interaction stays repeatable
func (g *GameContext) finishDialogue(owner *Entity) {
	if g.Active.Index == owner.InteractionIndex && owner.InteractionIndex+1 < len(owner.Interactions) {
		owner.InteractionIndex++
	}
	g.returnToExploration()
}

// DialogueView returns the current node for display; false outside Dialogue mode
func (g *GameContext) DialogueView() (DialogueView, bool) {
	if g.Mode != core.ModeDialogue {
		return DialogueView{}, false
	}
	owner, in, ok := g.activeTarget(InteractionDialogue)
	if !ok || g.Dialogue.Node < 0 || g.Dialogue.Node >= len(in.Dialogue.Nodes) {
		return DialogueView{}, false
	}
	node := in.Dialogue.Nodes[g.Dialogue.Node]
	return DialogueView{
		Speaker:  owner.Name,
		Text:     node.Text,
		Choices:  node.Choices,
		Selected: clampIndex(g.Dialogue.Choice, len(node.Choices)),
	}, true
}
