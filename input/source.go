package input

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilequest/constants"
	"github.com/lixenwraith/tilequest/core"
)

// EventPoller is the slice of tcell.Screen the pump needs
type EventPoller interface {
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
}

// Source pumps terminal events on a background goroutine and hands them to the game loop
// one command per Poll. The pump touches nothing but its channel.
type Source struct {
	poller EventPoller
	table  *KeyTable

	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	resized atomic.Bool

	mu      sync.Mutex
	running bool
}

// NewSource creates a stopped source reading from poller with the default key table
func NewSource(poller EventPoller) *Source {
	return &Source{
		poller:  poller,
		table:   DefaultKeyTable(),
		eventCh: make(chan tcell.Event, constants.InputQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the pump goroutine
func (s *Source) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	core.Go(s.pollLoop)
}

// pollLoop reads events until stopped or the screen is finalized
func (s *Source) pollLoop() {
	defer close(s.doneCh)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.poller.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop signals the pump and waits for it to exit
func (s *Source) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	// Synthetic event unblocks PollEvent
	_ = s.poller.PostEvent(tcell.NewEventInterrupt(nil))
	<-s.doneCh
}

// Poll returns the next pending command without blocking, CmdNone when the queue is empty
func (s *Source) Poll() core.Command {
	select {
	case ev := <-s.eventCh:
		if _, ok := ev.(*tcell.EventResize); ok {
			s.resized.Store(true)
			return core.CmdNone
		}
		return s.table.Translate(ev)
	default:
		return core.CmdNone
	}
}

// Resized reports and clears a pending terminal resize
func (s *Source) Resized() bool {
	return s.resized.Swap(false)
}
