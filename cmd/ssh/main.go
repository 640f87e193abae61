package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/loop/client"
	"github.com/tomz197/polyroids/internal/scores"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyroids-ssh",
	})

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	cfg, err := config.Load(config.GetEnv("POLYROIDS_CONFIG", ""))
	if err != nil {
		return err
	}
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath,
		"ledger", cfg.Ledger.Backend, "ledgerPath", cfg.Ledger.Path)

	// One ledger shared by every session
	ledger, closeLedger, err := scores.Open(cfg.Ledger.Backend, cfg.Ledger.Path, cfg.Ledger.Capacity, logger)
	if ledger == nil {
		return err
	}
	defer closeLedger()
	if err != nil {
		logger.Warn("ledger not loaded, starting empty", "error", err)
	}

	games := &sessions{cfg: cfg, ledger: ledger, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithIdleTimeout(cfg.SSH.IdleTimeout),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("shutting down server", "sessions", games.active())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// sessions runs one independent game per SSH session over a shared ledger.
type sessions struct {
	cfg    config.Settings
	ledger *scores.Ledger
	logger *log.Logger

	mu    sync.Mutex
	count int
	seed  int64
}

func (s *sessions) start() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.seed++
	return time.Now().UnixNano() + s.seed
}

func (s *sessions) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count--
}

func (s *sessions) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// middleware handles SSH sessions and runs the game client.
func (s *sessions) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		seed := s.start()
		defer s.end()

		logger := s.logger.With("user", sess.User())
		logger.Info("game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		renderer := lipgloss.NewRenderer(sess)
		renderer.SetColorProfile(termenv.ANSI256)

		c := client.New(sess, sess, client.Options{
			Settings: s.cfg,
			Ledger:   s.ledger,
			Player:   sess.User(),
			Logger:   logger,
			Rand:     rand.New(rand.NewSource(seed)),
			TermSize: sizeTracker.getSize,
			Renderer: renderer,
		})
		if err := c.Run(sess.Context()); err != nil {
			logger.Error("game error", "error", err)
		}

		logger.Info("session ended", "score", c.Game().Score())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
