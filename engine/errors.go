package engine

import "errors"

// Sentinel errors. None of them are fatal: callers log and skip the operation
var (
	ErrOccupiedCell        = errors.New("cell already occupied")
	ErrOutOfBounds         = errors.New("coordinate out of bounds")
	ErrInvalidCeilingGroup = errors.New("ceiling has no group id")
	ErrMissingInteraction  = errors.New("active interaction not found")
	ErrDuplicatePlayer     = errors.New("player already exists")
	ErrChoiceMismatch      = errors.New("choice labels and jump targets differ in length")
	ErrJumpOutOfRange      = errors.New("dialogue jump target out of range")
	ErrEmptyDialogue       = errors.New("dialogue has no nodes")
)
