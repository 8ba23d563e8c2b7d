package engine

import (
	"github.com/lixenwraith/tilequest/core"
)

// Test glyphs, distinct per kind so rendered frames are easy to assert on
var (
	TestPlayerGlyph  = core.Glyph{Rune: '@', Color: core.RGB{R: 255}}
	TestGroundGlyph  = core.Glyph{Rune: '.', Color: core.RGB{G: 255}}
	TestWallGlyph    = core.Glyph{Rune: '#', Color: core.RGBWhite}
	TestBlockGlyph   = core.Glyph{Rune: '1', Color: core.RGBWhite}
	TestCeilingGlyph = core.Glyph{Rune: '^', Color: core.RGB{R: 120, G: 60}}
)

// NewTestGameContext creates a session over an empty world of the given extent with the
// player spawned at playerAt, default viewport and margins, and a roller that never fails a flee
func NewTestGameContext(extent, playerAt core.Point) *GameContext {
	cfg := DefaultConfig()
	cfg.Extent = extent

	world := NewWorld(extent, TestGroundGlyph)
	if _, err := world.NewEntity(KindPlayer, playerAt).
		WithName("player").
		WithGlyph(TestPlayerGlyph).
		WithStats(NewStats(5, 5, 5, 20)).
		Spawn(); err != nil {
		panic(err)
	}

	ctx := NewGameContext(cfg, world)
	ctx.Roll = func() int { return 1 }
	return ctx
}
