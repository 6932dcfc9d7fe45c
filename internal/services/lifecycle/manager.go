// Package lifecycle sequences graceful shutdown for the server process:
// components register stop callbacks as they come up and are torn down in
// reverse order when a termination signal arrives.
package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownFunc stops one component. It must respect ctx's deadline.
type ShutdownFunc func(ctx context.Context) error

type registration struct {
	name string
	stop ShutdownFunc
}

// Manager collects shutdown callbacks and runs them once the process is asked
// to stop. Registration order is startup order, so teardown walks it
// backwards: the HTTP server closes before the pools it depends on.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	stack []registration
}

// New returns a Manager whose Shutdown runs under the given timeout. A
// non-positive timeout falls back to 15 seconds.
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{timeout: timeout, logger: logger}
}

// Register appends a named shutdown callback. Nil callbacks are ignored.
func (m *Manager) Register(name string, fn ShutdownFunc) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.stack = append(m.stack, registration{name: name, stop: fn})
	m.mu.Unlock()
}

// Shutdown tears components down in reverse registration order. A failing
// callback is logged and joined into the returned error; the remaining
// components still get stopped.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs error
	for i := len(m.stack) - 1; i >= 0; i-- {
		reg := m.stack[i]
		if err := reg.stop(ctx); err != nil {
			m.logger.Error("shutdown hook failed", zap.String("component", reg.name), zap.Error(err))
			errs = errors.Join(errs, err)
			continue
		}
		m.logger.Info("component stopped", zap.String("component", reg.name))
	}
	return errs
}

// Listen watches for SIGTERM/SIGINT in the background and fires cancel on the
// first one.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(sigCh)
		sig := <-sigCh
		m.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()
}
