package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilequest/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   tcell.Event
		want core.Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.CmdUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.CmdDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.CmdLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), core.CmdRight},
		{"vi k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), core.CmdUp},
		{"vi l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), core.CmdRight},
		{"wasd a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), core.CmdLeft},
		{"wasd upper S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), core.CmdDown},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.CmdConfirm},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.CmdConfirm},
		{"e", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), core.CmdConfirm},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.CmdQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.CmdQuit},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.CmdQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.CmdNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), core.CmdNone},
		{"resize", tcell.NewEventResize(80, 24), core.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Translate(tt.ev))
		})
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	return screen
}

// pollUntil drains the source until a non-None command arrives or the deadline passes
func pollUntil(t *testing.T, s *Source) core.Command {
	t.Helper()
	var got core.Command
	require.Eventually(t, func() bool {
		got = s.Poll()
		return got != core.CmdNone
	}, time.Second, time.Millisecond)
	return got
}

func TestSource_PumpsKeysInOrder(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewSource(screen)
	src.Start()
	defer src.Stop()

	screen.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, core.CmdUp, pollUntil(t, src))
	assert.Equal(t, core.CmdRight, pollUntil(t, src))
	assert.Equal(t, core.CmdConfirm, pollUntil(t, src))
}

func TestSource_PollDoesNotBlock(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewSource(screen)
	done := make(chan core.Command, 1)
	go func() { done <- src.Poll() }()

	select {
	case cmd := <-done:
		assert.Equal(t, core.CmdNone, cmd)
	case <-time.After(time.Second):
		t.Fatal("Poll blocked on an empty queue")
	}
}

func TestSource_ResizeFlag(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewSource(screen)
	src.eventCh <- tcell.NewEventResize(100, 40)
	src.eventCh <- tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)

	assert.False(t, src.Resized())
	assert.Equal(t, core.CmdNone, src.Poll())
	assert.True(t, src.Resized())
	assert.False(t, src.Resized(), "flag cleared after read")
	assert.Equal(t, core.CmdDown, src.Poll())
}

func TestSource_StopIsIdempotent(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Fini()

	src := NewSource(screen)
	src.Stop()
	src.Start()
	src.Stop()
	src.Stop()
}
