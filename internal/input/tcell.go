package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/asteroid-shooter/internal/loop"
)

// TcellSource adapts tcell events to per-tick game input. It implements
// loop.InputSource.
type TcellSource struct {
	events chan tcell.Event
	state  keyState

	done     chan struct{}
	doneOnce sync.Once

	mu     sync.Mutex
	aim    AimFunc
	resize func(w, h int)
}

// NewTcellSource polls screen for events in the background. Mouse motion
// reporting is enabled on the screen. The poller exits when the screen is
// finalised or the source is closed.
func NewTcellSource(screen tcell.Screen) *TcellSource {
	s := &TcellSource{
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivery of further events.
func (s *TcellSource) Close() {
	s.doneOnce.Do(func() { close(s.done) })
}

// SetAimFunc installs the cell-to-playfield mapping for the pointer.
func (s *TcellSource) SetAimFunc(fn AimFunc) {
	s.mu.Lock()
	s.aim = fn
	s.mu.Unlock()
}

// OnResize registers a callback for terminal resize events.
func (s *TcellSource) OnResize(fn func(w, h int)) {
	s.mu.Lock()
	s.resize = fn
	s.mu.Unlock()
}

// ReadInput drains pending events (non-blocking) and returns the input
// state for this tick.
func (s *TcellSource) ReadInput() loop.Input {
	now := time.Now()
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.state.quit = true
				return s.state.snapshot(now)
			}
			s.Handle(ev, now)
		default:
			return s.state.snapshot(now)
		}
	}
}

// Handle applies a single event to the key state.
func (s *TcellSource) Handle(ev tcell.Event, now time.Time) {
	s.mu.Lock()
	aim, resize := s.aim, s.resize
	s.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			s.state.left = now
		case tcell.KeyRight:
			s.state.right = now
		case tcell.KeyEnter:
			s.state.start = true
		case tcell.KeyCtrlC, tcell.KeyEscape:
			s.state.quit = true
		case tcell.KeyRune:
			r := ev.Rune()
			if r < 0x80 {
				s.state.applyByte(byte(r), now)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.state.mouseFire = ev.Buttons()&tcell.Button1 != 0
		s.state.pointTo(aim, x, y)
	case *tcell.EventResize:
		if resize != nil {
			w, h := ev.Size()
			resize(w, h)
		}
	}
}
