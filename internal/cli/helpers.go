package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/registrar/internal/logging"
)

// ErrInterrupted is returned by reads abandoned because of a signal.
var ErrInterrupted = errors.New("interrupted")

// SignalContext is cancelled on SIGINT or SIGTERM and remembers the signal.
type SignalContext struct {
	context.Context
	Cancel context.CancelFunc

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()
	return sc
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// InterruptibleReader returns ErrInterrupted as soon as done is closed,
// even while the underlying Read is still blocked.
type InterruptibleReader struct {
	base io.Reader
	done <-chan struct{}
}

func NewInterruptibleReader(base io.Reader, done <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{base: base, done: done}
}

func (r *InterruptibleReader) Read(p []byte) (int, error) {
	select {
	case <-r.done:
		return 0, ErrInterrupted
	default:
	}

	type result struct {
		n   int
		err error
	}
	buf := make([]byte, len(p))
	ch := make(chan result, 1)
	go func() {
		n, err := r.base.Read(buf)
		ch <- result{n, err}
	}()

	select {
	case res := <-ch:
		copy(p, buf[:res.n])
		return res.n, res.err
	case <-r.done:
		return 0, ErrInterrupted
	}
}

// createLogger discards logs unless debug is set, in which case they go to w.
func createLogger(debug bool, w io.Writer) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug, w)
	}
	return logging.NewNop()
}

func isInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF)
}

// handleExecutionError maps end of input and interruptions to a clean exit.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}

func logCompletion(w io.Writer, logger *slog.Logger, err error, sig os.Signal) {
	switch {
	case err == nil:
		logger.Info("session finished")
	case sig == os.Interrupt:
		fmt.Fprintln(w, "[CTRL+C]")
		logger.Info("session interrupted")
	case sig != nil:
		fmt.Fprintln(w)
		logger.Info("session terminated", "signal", sig.String())
	case errors.Is(err, io.EOF):
		fmt.Fprintln(w)
		logger.Info("input closed")
	default:
		logger.Error("session failed", "error", err)
	}
}
