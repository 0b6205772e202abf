// Package input turns raw terminal bytes into discrete key events.
package input

import (
	"bufio"
	"context"
)

// Key is a discrete key press the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyRestart
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRestart:
		return "restart"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	done    chan struct{} // Closed when the reader goroutine exits
	closed  bool
	pending []byte // Incomplete escape sequence carried to the next read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits when r ends, or once ctx is canceled and
// nobody drains the stream anymore.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// Done is closed when the reader goroutine has exited.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadKeys drains all available bytes from the stream (non-blocking) and
// returns the key presses in arrival order. A closed stream yields KeyQuit.
func ReadKeys(s *Stream) []Key {
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

	keys, rest := ParseKeys(buf)
	if !s.closed {
		s.pending = rest
	}
	if s.closed {
		keys = append(keys, KeyQuit)
	}
	return keys
}

// ParseKeys decodes buf into keys. Arrow keys arrive as CSI sequences
// (ESC [ C, or ESC [ 1 ; 5 C with modifiers) or, in application cursor
// mode, as SS3 sequences (ESC O C). An escape sequence cut off at the end
// of buf is returned as rest so it can be completed by the next read.
func ParseKeys(buf []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		if buf[i] != '\x1b' {
			if k := keyForByte(buf[i]); k != KeyNone {
				keys = append(keys, k)
			}
			continue
		}

		n, k, ok := parseEscape(buf[i:])
		if !ok {
			return keys, append([]byte(nil), buf[i:]...)
		}
		if k != KeyNone {
			keys = append(keys, k)
		}
		i += n - 1
	}
	return keys, nil
}

// parseEscape decodes the escape sequence at the start of seq. It returns
// the number of bytes consumed, or ok=false if seq ends mid-sequence.
func parseEscape(seq []byte) (n int, k Key, ok bool) {
	if len(seq) < 2 {
		return 0, KeyNone, false
	}

	switch seq[1] {
	case '[':
		// Parameter and intermediate bytes (0x20-0x3F) up to a final byte.
		for j := 2; j < len(seq); j++ {
			c := seq[j]
			switch {
			case c >= 0x40 && c <= 0x7e:
				return j + 1, arrowKey(c), true
			case c < 0x20 || c > 0x3f:
				// Malformed: drop what was read and decode c on its own.
				return j, KeyNone, true
			}
		}
		return 0, KeyNone, false
	case 'O':
		if len(seq) < 3 {
			return 0, KeyNone, false
		}
		return 3, arrowKey(seq[2]), true
	}

	// A lone escape only consumes itself.
	return 1, KeyNone, true
}

// arrowKey maps the final byte of an arrow key sequence.
func arrowKey(final byte) Key {
	switch final {
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}

// keyForByte maps single-byte keys.
func keyForByte(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		return KeyQuit
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ':
		return KeyRestart
	}
	return KeyNone
}
