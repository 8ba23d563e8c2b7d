// Package level decodes the embedded starting map and inserts it into a session.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tilequest/core"
	"github.com/lixenwraith/tilequest/engine"
)

//go:embed world.yaml
var embeddedWorld []byte

var (
	ErrNoPlayer     = errors.New("level: player is required")
	ErrInvalidRune  = errors.New("level: glyph must be exactly one rune")
	ErrInvalidColor = errors.New("level: color must have three channels")
	ErrInvalidPoint = errors.New("level: coordinate must have two components")
	ErrInvalidJump  = errors.New("level: dialogue jump out of range")
)

// Level is the decoded map definition
type Level struct {
	Ground   GlyphDef     `yaml:"ground"`
	Player   *ActorDef    `yaml:"player"`
	Movables []BlockDef   `yaml:"movables"`
	NPCs     []NPCDef     `yaml:"npcs"`
	Enemies  []ActorDef   `yaml:"enemies"`
	Walls    []RectDef    `yaml:"walls"`
	Ceilings []CeilingDef `yaml:"ceilings"`
}

// GlyphDef is a single-rune glyph with an RGB color
type GlyphDef struct {
	Rune  string `yaml:"rune"`
	Color []int  `yaml:"color"`
}

type StatsDef struct {
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Agility int `yaml:"agility"`
	Health  int `yaml:"health"`
}

// ActorDef describes the player or an enemy
type ActorDef struct {
	GlyphDef `yaml:",inline"`
	Name     string    `yaml:"name"`
	At       []int     `yaml:"at"`
	Stats    *StatsDef `yaml:"stats"`
}

type BlockDef struct {
	GlyphDef `yaml:",inline"`
	At       []int `yaml:"at"`
}

// NPCDef carries one or more dialogues, played in order
type NPCDef struct {
	GlyphDef  `yaml:",inline"`
	Name      string      `yaml:"name"`
	At        []int       `yaml:"at"`
	Dialogues [][]NodeDef `yaml:"dialogues"`
}

type NodeDef struct {
	Text    string      `yaml:"text"`
	Choices []ChoiceDef `yaml:"choices"`
}

// ChoiceDef is a labeled jump; next -1 ends the dialogue
type ChoiceDef struct {
	Label string `yaml:"label"`
	Next  int    `yaml:"next"`
}

// RectDef spans [from, to] inclusive. Gaps are cells left open (doors in walls)
type RectDef struct {
	GlyphDef `yaml:",inline"`
	From     []int   `yaml:"from"`
	To       []int   `yaml:"to"`
	Gaps     [][]int `yaml:"gaps"`
}

type CeilingDef struct {
	RectDef `yaml:",inline"`
	Group   int `yaml:"group"`
}

// Default decodes the embedded starting map
func Default() (*Level, error) {
	return Load(embeddedWorld)
}

// Load decodes and validates a level definition
func Load(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("level: decode: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if l.Player == nil {
		return ErrNoPlayer
	}
	if err := l.Ground.validate(); err != nil {
		return fmt.Errorf("ground: %w", err)
	}
	if err := l.Player.validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	for i := range l.Movables {
		if err := l.Movables[i].GlyphDef.validate(); err != nil {
			return fmt.Errorf("movable %d: %w", i, err)
		}
		if _, err := toPoint(l.Movables[i].At); err != nil {
			return fmt.Errorf("movable %d: %w", i, err)
		}
	}
	for i := range l.NPCs {
		if err := l.NPCs[i].validate(); err != nil {
			return fmt.Errorf("npc %q: %w", l.NPCs[i].Name, err)
		}
	}
	for i := range l.Enemies {
		if err := l.Enemies[i].validate(); err != nil {
			return fmt.Errorf("enemy %q: %w", l.Enemies[i].Name, err)
		}
	}
	for i := range l.Walls {
		if err := l.Walls[i].validate(); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
	}
	for i := range l.Ceilings {
		if err := l.Ceilings[i].RectDef.validate(); err != nil {
			return fmt.Errorf("ceiling %d: %w", i, err)
		}
	}
	return nil
}

func (g GlyphDef) validate() error {
	if utf8.RuneCountInString(g.Rune) != 1 {
		return fmt.Errorf("%q: %w", g.Rune, ErrInvalidRune)
	}
	if len(g.Color) != 3 {
		return ErrInvalidColor
	}
	return nil
}

func (a *ActorDef) validate() error {
	if err := a.GlyphDef.validate(); err != nil {
		return err
	}
	_, err := toPoint(a.At)
	return err
}

func (n *NPCDef) validate() error {
	if err := n.GlyphDef.validate(); err != nil {
		return err
	}
	if _, err := toPoint(n.At); err != nil {
		return err
	}
	for d, nodes := range n.Dialogues {
		for i, node := range nodes {
			for _, c := range node.Choices {
				if c.Next != engine.EndDialogue && (c.Next < 0 || c.Next >= len(nodes)) {
					return fmt.Errorf("dialogue %d node %d jump %d: %w", d, i, c.Next, ErrInvalidJump)
				}
			}
		}
	}
	return nil
}

func (r *RectDef) validate() error {
	if err := r.GlyphDef.validate(); err != nil {
		return err
	}
	if _, err := toPoint(r.From); err != nil {
		return err
	}
	if _, err := toPoint(r.To); err != nil {
		return err
	}
	for _, g := range r.Gaps {
		if _, err := toPoint(g); err != nil {
			return err
		}
	}
	return nil
}

// cells lists the rectangle's cells minus its gaps
func (r *RectDef) cells(outline bool) []core.Point {
	from, _ := toPoint(r.From)
	to, _ := toPoint(r.To)
	gaps := make(map[core.Point]bool, len(r.Gaps))
	for _, g := range r.Gaps {
		p, _ := toPoint(g)
		gaps[p] = true
	}

	var cells []core.Point
	for _, p := range rectCells(from, to, outline) {
		if !gaps[p] {
			cells = append(cells, p)
		}
	}
	return cells
}

func toPoint(v []int) (core.Point, error) {
	if len(v) != 2 {
		return core.Point{}, ErrInvalidPoint
	}
	return core.Point{X: v[0], Y: v[1]}, nil
}

// glyph converts a validated definition
func (g GlyphDef) glyph() core.Glyph {
	r, _ := utf8.DecodeRuneInString(g.Rune)
	return core.Glyph{Rune: r, Color: core.RGB{R: channel(g.Color[0]), G: channel(g.Color[1]), B: channel(g.Color[2])}}
}

func channel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

func (s *StatsDef) stats() *engine.Stats {
	if s == nil {
		return nil
	}
	return engine.NewStats(s.Attack, s.Defense, s.Agility, s.Health)
}

// rectCells lists the cells of [from, to] in row-major order, perimeter only when outline is set
func rectCells(from, to core.Point, outline bool) []core.Point {
	x0, x1 := min(from.X, to.X), max(from.X, to.X)
	y0, y1 := min(from.Y, to.Y), max(from.Y, to.Y)

	var cells []core.Point
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if outline && x != x0 && x != x1 && y != y0 && y != y1 {
				continue
			}
			cells = append(cells, core.Point{X: x, Y: y})
		}
	}
	return cells
}

// Build inserts the level into the world: player, movables, NPCs, enemies, walls, ceilings.
// A rejected entity is logged and skipped; the returned count is the number spawned.
// Fails only if the player could not be placed.
func (l *Level) Build(w *engine.World) (int, error) {
	spawned := 0
	spawn := func(what string, b *engine.EntityBuilder) {
		if _, err := b.Spawn(); err != nil {
			log.Printf("level: skipping %s: %v", what, err)
			return
		}
		spawned++
	}

	w.Ground = l.Ground.glyph()

	at, _ := toPoint(l.Player.At)
	spawn("player", w.NewEntity(engine.KindPlayer, at).
		WithName(l.Player.Name).
		WithGlyph(l.Player.glyph()).
		WithStats(l.Player.Stats.stats()))

	for i, m := range l.Movables {
		at, _ := toPoint(m.At)
		spawn(fmt.Sprintf("movable %d", i), w.NewEntity(engine.KindMovable, at).WithGlyph(m.glyph()))
	}

	for _, n := range l.NPCs {
		at, _ := toPoint(n.At)
		b := w.NewEntity(engine.KindStatic, at).WithName(n.Name).WithGlyph(n.glyph())
		for _, nodes := range n.Dialogues {
			in, err := engine.NewDialogue(dialogueNodes(nodes)...)
			if err != nil {
				log.Printf("level: npc %q dialogue dropped: %v", n.Name, err)
				continue
			}
			b.WithInteraction(in)
		}
		spawn("npc "+n.Name, b)
	}

	for _, e := range l.Enemies {
		at, _ := toPoint(e.At)
		spawn("enemy "+e.Name, w.NewEntity(engine.KindStatic, at).
			WithName(e.Name).
			WithGlyph(e.glyph()).
			WithStats(e.Stats.stats()).
			WithInteraction(engine.NewCombat()))
	}

	for i := range l.Walls {
		r := &l.Walls[i]
		for _, p := range r.cells(true) {
			spawn(fmt.Sprintf("wall %d at %v", i, p), w.NewEntity(engine.KindStatic, p).WithGlyph(r.glyph()))
		}
	}

	for i := range l.Ceilings {
		c := &l.Ceilings[i]
		for _, p := range c.cells(false) {
			spawn(fmt.Sprintf("ceiling %d at %v", c.Group, p), w.NewEntity(engine.KindCeiling, p).
				WithGlyph(c.glyph()).
				InCeilingGroup(engine.CeilingGroupID(c.Group)))
		}
	}

	if w.Player() == nil {
		return spawned, ErrNoPlayer
	}
	w.RefreshOverhead()
	return spawned, nil
}

// dialogueNodes converts labeled choices to the engine's parallel arrays
func dialogueNodes(defs []NodeDef) []engine.DialogueNode {
	nodes := make([]engine.DialogueNode, len(defs))
	for i, d := range defs {
		nodes[i].Text = d.Text
		for _, c := range d.Choices {
			nodes[i].Choices = append(nodes[i].Choices, c.Label)
			nodes[i].Jumps = append(nodes[i].Jumps, c.Next)
		}
	}
	return nodes
}
