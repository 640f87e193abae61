// Package input turns a raw terminal byte stream into key press and release
// events. Terminals only report presses (and auto-repeats), so a key counts
// as held until it has not been seen for the hold duration.
package input

import (
	"bufio"
	"io"
	"time"
)

// DefaultHold is how long a key is considered held after its last byte.
const DefaultHold = 30 * time.Millisecond

// Key is a terminal key the game cares about.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyQuit
	KeyEscape
	numKeys
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySpace:
		return "space"
	case KeyEnter:
		return "enter"
	case KeyQuit:
		return "quit"
	case KeyEscape:
		return "escape"
	}
	return "unknown"
}

// Event is a key edge.
type Event struct {
	Key  Key
	Down bool
}

// Stream delivers input bytes via a channel and tracks which keys are held.
type Stream struct {
	ch     chan byte
	hold   time.Duration
	seen   [numKeys]time.Time
	held   [numKeys]bool
	closed bool
	buf    []byte
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// A non-positive hold selects DefaultHold.
func StartStream(r io.Reader, hold time.Duration) *Stream {
	s := newStream(hold)
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
	}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Poll drains all available bytes (non-blocking) and returns the key edges
// they produce at time now: a press for every key newly seen, a release for
// every held key not seen within the hold duration.
func (s *Stream) Poll(now time.Time) []Event {
	s.buf = s.buf[:0]
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}
	return s.apply(s.buf, now, nil)
}

// apply parses buf into key sightings and appends the resulting edges.
func (s *Stream) apply(buf []byte, now time.Time, events []Event) []Event {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI or SS3 arrow keys: ESC [ A or ESC O A
		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if k, ok := arrowKey(buf[i+2]); ok {
				events = s.see(k, now, events)
				i += 2
				continue
			}
		}

		if k, ok := byteKey(b); ok {
			events = s.see(k, now, events)
		}
	}

	for k := Key(0); k < numKeys; k++ {
		if s.held[k] && now.Sub(s.seen[k]) >= s.hold {
			s.held[k] = false
			events = append(events, Event{Key: k, Down: false})
		}
	}
	return events
}

func (s *Stream) see(k Key, now time.Time, events []Event) []Event {
	s.seen[k] = now
	if s.held[k] {
		return events
	}
	s.held[k] = true
	return append(events, Event{Key: k, Down: true})
}

// Held reports whether k is currently held.
func (s *Stream) Held(k Key) bool {
	return s.held[k]
}

// Reset forgets every held key without producing release events.
func (s *Stream) Reset() {
	s.held = [numKeys]bool{}
	s.seen = [numKeys]time.Time{}
}

func arrowKey(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	case 'a', 'A', 'j', 'J':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case 'w', 'W', 'i', 'I':
		return KeyUp, true
	case 's', 'S', 'k', 'K':
		return KeyDown, true
	case ' ':
		return KeySpace, true
	case '\n', '\r':
		return KeyEnter, true
	case '\x1b':
		return KeyEscape, true
	}
	return 0, false
}
