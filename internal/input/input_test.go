package input

import (
	"bufio"
	"context"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     []Key
		wantRest string
	}{
		{name: "arrows", in: "\x1b[D\x1b[C", want: []Key{KeyLeft, KeyRight}},
		{name: "letters", in: "aDhl", want: []Key{KeyLeft, KeyRight, KeyLeft, KeyRight}},
		{name: "restart and quit", in: " q", want: []Key{KeyRestart, KeyQuit}},
		{name: "ctrl c", in: "\x03", want: []Key{KeyQuit}},
		{name: "up and down arrows ignored", in: "\x1b[A\x1b[B", want: nil},
		{name: "unknown bytes ignored", in: "xyz1", want: nil},
		{name: "lone escape before key", in: "\x1bq", want: []Key{KeyQuit}},
		{name: "truncated escape", in: "a\x1b[", want: []Key{KeyLeft}, wantRest: "\x1b["},
		{name: "trailing escape", in: "\x1b", want: nil, wantRest: "\x1b"},
		{name: "shift left", in: "\x1b[1;2D", want: []Key{KeyLeft}},
		{name: "ctrl left", in: "\x1b[1;5D", want: []Key{KeyLeft}},
		{name: "ctrl right", in: "\x1b[1;5C", want: []Key{KeyRight}},
		{name: "application mode arrows", in: "\x1bOD\x1bOC", want: []Key{KeyLeft, KeyRight}},
		{name: "other sequence then key", in: "\x1b[3~d", want: []Key{KeyRight}},
		{name: "function key ignored", in: "\x1bOP", want: nil},
		{name: "truncated modified arrow", in: "d\x1b[1;5", want: []Key{KeyRight}, wantRest: "\x1b[1;5"},
		{name: "truncated application arrow", in: "\x1bO", want: nil, wantRest: "\x1bO"},
		{name: "malformed sequence", in: "\x1b[1\x03", want: []Key{KeyQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest := ParseKeys([]byte(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("keys = %v, want %v", got, tt.want)
			}
			if string(rest) != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestReadKeysCompletesSplitSequence(t *testing.T) {
	s := &Stream{ch: make(chan byte, 8)}

	s.ch <- '\x1b'
	s.ch <- '['
	if keys := ReadKeys(s); len(keys) != 0 {
		t.Fatalf("expected no keys for partial sequence, got %v", keys)
	}

	s.ch <- 'D'
	keys := ReadKeys(s)
	if !slices.Equal(keys, []Key{KeyLeft}) {
		t.Fatalf("keys = %v, want [left]", keys)
	}
}

func TestStreamClosesWithQuit(t *testing.T) {
	s := StartStream(context.Background(), bufio.NewReader(strings.NewReader("d")))

	var keys []Key
	deadline := time.Now().Add(2 * time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		keys = append(keys, ReadKeys(s)...)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("stream did not close after EOF")
	}
	if !slices.Contains(keys, KeyRight) {
		t.Errorf("keys = %v, want right before quit", keys)
	}
	if keys[len(keys)-1] != KeyQuit {
		t.Errorf("last key = %v, want quit", keys[len(keys)-1])
	}
}

func TestStreamStopsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// More input than the channel buffers, and nobody reading it.
	s := StartStream(ctx, bufio.NewReader(strings.NewReader(strings.Repeat("d", 1024))))
	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still blocked after cancel")
	}
}

func TestKeyString(t *testing.T) {
	if KeyRestart.String() != "restart" || KeyNone.String() != "none" {
		t.Errorf("unexpected key names %q %q", KeyRestart, KeyNone)
	}
}
