package input

import (
	"io"
	"sync"
	"time"

	"github.com/tomz197/asteroid-shooter/internal/loop"
)

// Terminal modes for pointer aiming: report all motion, SGR encoded.
const (
	EnableMouse  = "\x1b[?1003h\x1b[?1006h"
	DisableMouse = "\x1b[?1006l\x1b[?1003l"
)

// Stream delivers input bytes via a channel and tracks key state across
// reads. It implements loop.InputSource.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Incomplete escape sequence carried to the next read
	closed  bool

	done     chan struct{} // Closed by Close; the reader stops delivering
	doneOnce sync.Once

	mu  sync.Mutex
	aim AimFunc
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted. Call Close when the stream is
// no longer read so the goroutine can exit on its next read.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 256),
		done: make(chan struct{}),
	}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			select {
			case <-s.done:
				return
			default:
			}
			for _, b := range buf[:n] {
				select {
				case s.ch <- b:
				case <-s.done:
					return
				}
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Close stops delivery of further input. A reader blocked on a full buffer
// returns at once; one blocked in Read returns after that Read completes.
func (s *Stream) Close() {
	s.doneOnce.Do(func() { close(s.done) })
}

// SetAimFunc installs the cell-to-playfield mapping for the pointer.
func (s *Stream) SetAimFunc(fn AimFunc) {
	s.mu.Lock()
	s.aim = fn
	s.mu.Unlock()
}

// ReadInput drains all available bytes (non-blocking) and returns the
// input state for this tick.
func (s *Stream) ReadInput() loop.Input {
	now := time.Now()
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.pending = s.parse(buf, now)
	if s.closed {
		s.state.quit = true
	}
	return s.state.snapshot(now)
}

// parse applies buf to the key state and returns any trailing bytes that
// form an incomplete escape sequence.
func (s *Stream) parse(buf []byte, now time.Time) []byte {
	s.mu.Lock()
	aim := s.aim
	s.mu.Unlock()

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			s.state.applyByte(b, now)
			continue
		}

		// Lone ESC at the end of a read might be the start of a sequence
		if i+1 >= len(buf) {
			if !s.closed {
				return append([]byte(nil), buf[i:]...)
			}
			continue
		}
		if buf[i+1] != '[' {
			continue
		}
		if i+2 >= len(buf) {
			if !s.closed {
				return append([]byte(nil), buf[i:]...)
			}
			break
		}

		switch buf[i+2] {
		case 'C': // Right arrow
			s.state.right = now
			i += 2
		case 'D': // Left arrow
			s.state.left = now
			i += 2
		case 'A', 'B': // Up/down arrows do nothing
			i += 2
		case '<':
			n, ev, ok := parseSGRMouse(buf[i:])
			if n == 0 {
				if !s.closed {
					return append([]byte(nil), buf[i:]...)
				}
				i += 2
				continue
			}
			if ok {
				s.applyMouse(ev, aim)
			}
			i += n - 1
		default:
			i++
		}
	}
	return nil
}

// applyMouse moves the aim and tracks the left button.
func (s *Stream) applyMouse(ev mouseEvent, aim AimFunc) {
	switch ev.action {
	case mousePress:
		if ev.button == mouseLeft {
			s.state.mouseFire = true
		}
	case mouseRelease:
		s.state.mouseFire = false
	}
	s.state.pointTo(aim, ev.x, ev.y)
}
