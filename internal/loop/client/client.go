// Package client drives one game on one terminal: it feeds key edges into
// the simulation, steps it and draws its snapshots.
package client

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/scores"
)

// Options configures a client.
type Options struct {
	Settings config.Settings
	Ledger   *scores.Ledger
	Player   string
	Logger   *log.Logger
	Rand     object.Rand
	Clock    loop.Clock
	TermSize draw.TermSizeFunc
	Renderer *lipgloss.Renderer
}

// Client handles rendering and input for a single terminal.
type Client struct {
	game     *loop.Game
	stream   *input.Stream
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	renderer *Renderer
	termSize draw.TermSizeFunc
	logger   *log.Logger

	frameTime time.Duration
	screen    Screen
	overlay   overlayState
	running   bool
}

// New creates a client reading keys from r and drawing to w.
func New(r io.Reader, w io.Writer, opts Options) *Client {
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutSize
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg := opts.Settings
	if cfg.Client.FrameRate <= 0 {
		cfg.Client.FrameRate = 30
	}
	cols, rows, err := opts.TermSize()
	if err != nil {
		opts.Logger.Warn("cannot read terminal size", "error", err)
	}
	canvas := draw.NewCanvas(cols, rows, float64(cfg.Client.UnitsPerCell))
	fw, fh := canvas.FieldSize()

	game := loop.NewGame(cfg, loop.Deps{
		Field:  object.Field{Width: fw, Height: fh},
		Rand:   opts.Rand,
		Clock:  opts.Clock,
		Ledger: opts.Ledger,
		Player: opts.Player,
		Logger: opts.Logger,
	})

	return &Client{
		game:      game,
		stream:    input.StartStream(r, cfg.Client.KeyHold),
		canvas:    canvas,
		cw:        draw.NewChunkWriter(w),
		renderer:  NewRenderer(opts.Renderer),
		termSize:  opts.TermSize,
		logger:    opts.Logger,
		frameTime: time.Second / time.Duration(cfg.Client.FrameRate),
		screen:    ScreenTitle,
		overlay:   overlayState{screen: -1},
		running:   true,
	}
}

// Game returns the simulation the client drives.
func (c *Client) Game() *loop.Game {
	return c.game
}

// Run starts the client loop. It blocks until the player quits, the input
// ends or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	c.cw.HideCursor()
	c.cw.ClearScreen()
	defer func() {
		c.cw.ShowCursor()
		c.cw.ClearScreen()
		_ = c.cw.Flush()
	}()

	for c.running {
		frameStart := time.Now()

		c.handleInput(c.stream.Poll(frameStart))
		if c.stream.Closed() {
			c.logger.Debug("input closed")
			return nil
		}
		c.updateScreen()

		if c.screen == ScreenPlaying {
			c.game.Step()
		}

		if err := c.drawFrame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.frameTime - time.Since(frameStart)):
		}
	}
	return nil
}

// handleInput applies key edges to the current screen.
func (c *Client) handleInput(events []input.Event) {
	for _, ev := range events {
		if !ev.Down {
			if k, ok := gameKeys[ev.Key]; ok && c.screen == ScreenPlaying {
				c.game.KeyUp(k)
			}
			continue
		}

		switch {
		case ev.Key == input.KeyQuit:
			c.running = false
			return
		case c.screen == ScreenTitle:
			if ev.Key == input.KeyEnter {
				c.start()
			}
		case c.game.Phase() == loop.PhaseAwaitingAck:
			if ev.Key == input.KeyEnter {
				c.game.Acknowledge()
				c.stream.Reset()
			}
		default:
			if k, ok := gameKeys[ev.Key]; ok {
				c.game.KeyDown(k)
			}
		}
	}
}

func (c *Client) start() {
	c.screen = ScreenPlaying
	c.stream.Reset()
	c.logger.Info("game started")
}

// updateScreen follows terminal resizes. The play field always matches the
// visible area.
func (c *Client) updateScreen() {
	cols, rows, err := c.termSize()
	if err != nil {
		return
	}
	if cur, curRows := c.canvas.Size(); cur == cols && curRows == rows {
		return
	}
	c.canvas.Resize(cols, rows)
	c.canvas.ForceRedraw()
	c.cw.ClearScreen()
	c.game.SetField(c.canvas.FieldSize())
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	snap := c.game.Snapshot()
	cols, rows := c.canvas.Size()

	// Clear the terminal when the text layout changes so nothing stale stays.
	st := overlayState{screen: c.screen, phase: snap.Phase, dialog: snap.Dialog, notice: snap.Notice}
	if st != c.overlay {
		c.cw.ClearScreen()
		c.canvas.ForceRedraw()
		c.overlay = st
	}

	c.canvas.Clear()
	var texts []Text
	if c.screen == ScreenTitle {
		texts = c.renderer.Title(snap.TopScores, cols, rows)
	} else {
		c.renderer.World(c.canvas, snap)
		texts = append(c.renderer.HUD(snap, cols, rows), c.renderer.Dialog(snap, cols, rows)...)
	}

	c.canvas.Render(c.cw)
	for _, t := range texts {
		c.cw.WriteAt(t.Col, t.Row, t.S)
		c.canvas.MarkTextDirty(t.Col, t.Row, lipgloss.Width(t.S))
	}
	return c.cw.Flush()
}
