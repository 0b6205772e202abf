package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/loop"
)

func main() {
	cfg, err := config.Load[config.Server]()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	logger, closeLog, err := cfg.Game.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal("failed to create logger", "err", err)
	}
	defer func() {
		_ = closeLog()
	}()

	tuning, err := cfg.Game.Tuning()
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", cfg.Host, "port", cfg.Port, "hostKeyPath", cfg.HostKeyPath, "workingDir", workingDir)

	// Sessions stop when serverCtx is canceled on shutdown.
	serverCtx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	handler := &gameHandler{
		ctx:    serverCtx,
		tuning: tuning,
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			handler.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(cfg.Host, cfg.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// End running games so their sessions can close.
	handler.close()
	cancelSessions()
	waitTimeout(&handler.sessions, 5*time.Second, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	ctx    context.Context
	tuning config.Tuning
	logger *log.Logger

	mu       sync.Mutex
	closing  bool
	sessions sync.WaitGroup
}

// begin registers a session. It fails once close was called, so no Add
// races with the shutdown Wait.
func (h *gameHandler) begin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.sessions.Add(1)
	return true
}

// close stops new sessions from starting.
func (h *gameHandler) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closing = true
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		if !h.begin() {
			fmt.Fprintln(sess, "Server is shutting down.")
			return
		}
		defer h.sessions.Done()

		logger := h.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		reader := bufio.NewReader(sess)
		runOpts := loop.RunOptions{
			Tuning:       h.tuning,
			Logger:       logger,
			TermSizeFunc: sizeTracker.getSize,
		}
		if err := loop.Run(ctx, reader, sess, runOpts); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// waitTimeout waits for wg or gives up after d.
func waitTimeout(wg *sync.WaitGroup, d time.Duration, logger *log.Logger) {
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(d):
		logger.Warn("sessions still running after shutdown timeout")
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
