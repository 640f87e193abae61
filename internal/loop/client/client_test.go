package client

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/scores"
)

type fakeTerm struct {
	cols, rows int
}

func (f *fakeTerm) size() (int, int, error) {
	return f.cols, f.rows, nil
}

func newTestClient(t *testing.T, in io.Reader, out io.Writer, term *fakeTerm) *Client {
	t.Helper()
	ledger := scores.NewLedger(nil, 0)
	if err := ledger.Add("ace", 900); err != nil {
		t.Fatal(err)
	}
	return New(in, out, Options{
		Settings: config.Default(),
		Ledger:   ledger,
		Player:   "tester",
		Rand:     rand.New(rand.NewSource(1)),
		Clock:    loop.NewManualClock(time.Unix(0, 0)),
		TermSize: term.size,
		Renderer: lipgloss.NewRenderer(io.Discard),
	})
}

func TestClientFieldFollowsTerminal(t *testing.T) {
	term := &fakeTerm{cols: 100, rows: 40}
	c := newTestClient(t, strings.NewReader(""), io.Discard, term)

	if f := c.Game().Field(); f != (object.Field{Width: 800, Height: 640}) {
		t.Fatalf("initial field = %+v", f)
	}

	term.cols, term.rows = 80, 24
	c.updateScreen()
	if f := c.Game().Field(); f != (object.Field{Width: 640, Height: 384}) {
		t.Errorf("field after resize = %+v", f)
	}
}

func TestClientTitleThenPlay(t *testing.T) {
	c := newTestClient(t, strings.NewReader(""), io.Discard, &fakeTerm{cols: 100, rows: 40})

	c.handleInput([]input.Event{{Key: input.KeySpace, Down: true}})
	if c.screen != ScreenTitle {
		t.Fatal("space left the title screen")
	}
	if len(c.Game().Ship().Projectiles) != 0 {
		t.Fatal("fired from the title screen")
	}

	c.handleInput([]input.Event{{Key: input.KeyEnter, Down: true}})
	if c.screen != ScreenPlaying {
		t.Fatal("enter did not start the game")
	}

	c.handleInput([]input.Event{
		{Key: input.KeySpace, Down: true},
		{Key: input.KeyLeft, Down: true},
	})
	if len(c.Game().Ship().Projectiles) != 1 {
		t.Errorf("projectiles = %d, expected 1", len(c.Game().Ship().Projectiles))
	}

	c.handleInput([]input.Event{{Key: input.KeyQuit, Down: true}})
	if c.running {
		t.Error("quit key did not stop the client")
	}
}

func TestClientDrawFrame(t *testing.T) {
	var out bytes.Buffer
	c := newTestClient(t, strings.NewReader(""), &out, &fakeTerm{cols: 100, rows: 40})

	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}
	title := out.String()
	for _, want := range []string{"P O L Y R O I D S", "Press Enter to start", "ace: 900"} {
		if !strings.Contains(title, want) {
			t.Errorf("title screen lacks %q", want)
		}
	}

	c.start()
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatal(err)
	}
	frame := out.String()
	for _, want := range []string{"Score: 0", "Lives: 5", "Top scores", "ace: 900"} {
		if !strings.Contains(frame, want) {
			t.Errorf("game frame lacks %q", want)
		}
	}
	if !strings.HasPrefix(frame, "\033[H\033[2J") {
		t.Error("screen change did not clear the terminal")
	}
}

func TestClientRunEndsWithInput(t *testing.T) {
	var out bytes.Buffer
	c := newTestClient(t, strings.NewReader("\r"), &out, &fakeTerm{cols: 60, rows: 20})

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the input ended")
	}

	if !strings.HasPrefix(out.String(), "\033[?25l") || !strings.Contains(out.String(), "\033[?25h") {
		t.Error("cursor was not hidden and restored")
	}
}

func TestClientRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := newTestClient(t, pr, io.Discard, &fakeTerm{cols: 60, rows: 20})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
