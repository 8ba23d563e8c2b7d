package constants

// Combat menu entries, in cursor order
const (
	CombatOptionFight = 0
	CombatOptionRun   = 1
	CombatOptionCount = 2
)

// Flee check: with agility not above the enemy's, a roll in [1, FleeRollMax]
// above FleeFailThreshold fails the escape
const (
	FleeRollMax       = 100
	FleeFailThreshold = 35
)

// CombatMenuLabels are displayed in cursor order
var CombatMenuLabels = [CombatOptionCount]string{"Fight", "Run"}
