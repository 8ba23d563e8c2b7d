package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilequest/audio"
	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
	"github.com/lixenwraith/tilequest/engine"
	"github.com/lixenwraith/tilequest/input"
	"github.com/lixenwraith/tilequest/level"
	"github.com/lixenwraith/tilequest/render"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if logFile := setupLogging(os.Getenv(debugEnv) != ""); logFile != nil {
		defer logFile.Close()
	}

	// Bootstrap before touching the terminal so level errors print normally
	lvl, err := level.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	cfg := engine.DefaultConfig()
	world := engine.NewWorld(cfg.Extent, core.GlyphBlank)
	spawned, err := lvl.Build(world)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build level: %v\n", err)
		os.Exit(1)
	}
	log.Printf("level: %d entities spawned", spawned)

	ctx := engine.NewGameContext(cfg, world)

	// Audio failure is fatal: the speaker is part of the startup contract
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize audio: %v\n", err)
		os.Exit(1)
	}
	defer sound.Cleanup()
	ctx.Audio = sound

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)

	src := input.NewSource(screen)
	src.Start()
	defer src.Stop()

	renderer := render.NewTerminalRenderer(screen)
	run(ctx, src, renderer, func() { screen.Sync() })
	log.Printf("=== tilequest exited after %d frames ===", ctx.GetFrameNumber())
}

// run is the fixed-rate game loop: one command per tick, then a full redraw
func run(ctx *engine.GameContext, src *input.Source, renderer *render.TerminalRenderer, sync func()) {
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	renderer.RenderFrame(ctx)
	for range ticker.C {
		if !ctx.HandleCommand(src.Poll()) {
			return
		}
		if src.Resized() {
			sync()
		}
		ctx.IncrementFrameNumber()
		renderer.RenderFrame(ctx)
	}
}
