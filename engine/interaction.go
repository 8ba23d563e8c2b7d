package engine

import (
	"fmt"

	"github.com/lixenwraith/tilequest/core"
)

// InteractionKind tags the payload carried by an Interaction
type InteractionKind uint8

const (
	InteractionDialogue InteractionKind = iota
	InteractionCombat
)

func (k InteractionKind) String() string {
	switch k {
	case InteractionDialogue:
		return "dialogue"
	case InteractionCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// EndDialogue is the jump target that closes the conversation. Any negative jump does the same
const EndDialogue = -1

// DialogueNode is one screen of dialogue. Jumps[i] is the node index reached by Choices[i]
type DialogueNode struct {
	Text    string
	Choices []string
	Jumps   []int
}

// Dialogue is an ordered list of nodes; node 0 is the entry point
type Dialogue struct {
	Nodes []DialogueNode
}

// Interaction is attached to an entity. Dialogue is nil for combat, which uses the owner's stats
type Interaction struct {
	Kind     InteractionKind
	Dialogue *Dialogue
}

// NewDialogue validates the node graph and wraps it as an interaction
func NewDialogue(nodes ...DialogueNode) (Interaction, error) {
	if len(nodes) == 0 {
		return Interaction{}, ErrEmptyDialogue
	}
	for i, n := range nodes {
		if len(n.Choices) != len(n.Jumps) {
			return Interaction{}, fmt.Errorf("node %d has %d choices and %d jumps: %w",
				i, len(n.Choices), len(n.Jumps), ErrChoiceMismatch)
		}
		for _, j := range n.Jumps {
			if j >= len(nodes) {
				return Interaction{}, fmt.Errorf("node %d jumps to %d of %d: %w", i, j, len(nodes), ErrJumpOutOfRange)
			}
		}
	}
	return Interaction{Kind: InteractionDialogue, Dialogue: &Dialogue{Nodes: nodes}}, nil
}

// NewCombat returns a combat interaction against the owning entity
func NewCombat() Interaction {
	return Interaction{Kind: InteractionCombat}
}

// ActiveInteraction points at the interaction currently driving Dialogue or Combat mode
type ActiveInteraction struct {
	Position core.Point
	Index    int
}
