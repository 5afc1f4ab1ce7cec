package menu

import (
	"log/slog"
)

// Option configures a Navigator.
type Option func(*Navigator)

// WithConsole configures the terminal used for rendering and reading choices.
func WithConsole(term Terminal) Option {
	return func(n *Navigator) {
		n.term = term
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// WithErrorReporter replaces how failed actions are shown to the user.
func WithErrorReporter(report func(err error)) Option {
	return func(n *Navigator) {
		n.report = report
	}
}

// WithClearScreen erases the previous menu before rendering the next one
// when no action output sits in between.
func WithClearScreen(enabled bool) Option {
	return func(n *Navigator) {
		n.clear = enabled
	}
}
