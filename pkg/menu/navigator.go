package menu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/console"
)

// ChoicePrompt is written before every menu selection.
const ChoicePrompt = "> "

// Terminal renders menus and reads selection tokens.
type Terminal interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Println(a ...any)
}

type clearer interface {
	Clear(lines int)
	Lines() int
}

// Navigator drives the interactive loop over a stack of menus.
type Navigator struct {
	stack  []*Menu
	term   Terminal
	logger *slog.Logger
	report func(err error)
	clear  bool

	// lines from the last render up to its accepted choice; 0 once an
	// action has written in between.
	erasable int
}

// NewNavigator creates a navigator whose stack holds only root.
func NewNavigator(root *Menu, opts ...Option) *Navigator {
	n := &Navigator{
		stack: []*Menu{root},
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.term == nil {
		n.term = console.New(nil, nil)
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if n.report == nil {
		n.report = func(err error) {
			n.term.Println("Error:", binder.Cause(err))
		}
	}
	return n
}

// Current returns the menu on top of the stack.
func (n *Navigator) Current() *Menu {
	return n.stack[len(n.stack)-1]
}

// Root returns the menu at the bottom of the stack.
func (n *Navigator) Root() *Menu {
	return n.stack[0]
}

// Depth returns the number of open menus. It is never less than 1.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Run executes the navigation loop until the user types "quit".
// It returns nil on quit and the input error when the input stream fails.
func (n *Navigator) Run(ctx context.Context) error {
	for {
		current := n.Current()
		mark := n.render(current)

		token, err := n.readChoice(ctx, current)
		if err != nil {
			n.logger.Debug("navigator input closed", "err", err)
			return err
		}
		n.erasable = n.linesSince(mark)

		stop, err := n.Apply(ctx, token)
		if err != nil {
			return err
		}
		if stop {
			n.logger.Debug("navigator stopped", "depth", n.Depth())
			return nil
		}
	}
}

// Apply performs the transition for one valid token against the current menu.
// It reports whether the loop should stop. Invalid tokens are ignored.
// Action errors are reported and swallowed unless they are input failures.
func (n *Navigator) Apply(ctx context.Context, token string) (bool, error) {
	switch token {
	case TokenQuit:
		return true, nil
	case TokenBack:
		n.pop()
		return false, nil
	}

	current := n.Current()
	item, ok := current.Lookup(token)
	if !ok {
		return false, nil
	}

	if item.Submenu != nil {
		n.push(item.Submenu)
	}
	if item.Action == nil {
		return false, nil
	}

	n.erasable = 0
	n.logger.Debug("action invoked", "menu", current.Title, "item", item.Label)
	if err := item.Action.Invoke(ctx); err != nil {
		if isInputFailure(err) {
			return false, err
		}
		n.logger.Debug("action failed", "item", item.Label, "err", err)
		n.report(err)
	}
	return false, nil
}

func (n *Navigator) push(m *Menu) {
	n.stack = append(n.stack, m)
	n.logger.Debug("menu push", "menu", m.Title, "depth", len(n.stack))
}

func (n *Navigator) pop() {
	if len(n.stack) == 1 {
		return
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.logger.Debug("menu pop", "menu", n.Current().Title, "depth", len(n.stack))
}

// render prints m, first erasing the previous menu when clearing is on.
// It returns the terminal line count taken before printing.
func (n *Navigator) render(m *Menu) int {
	mark := 0
	if c, ok := n.clearer(); ok {
		if n.erasable > 0 {
			c.Clear(n.erasable)
		}
		mark = c.Lines()
	}
	for _, line := range m.Lines() {
		n.term.Println(line)
	}
	return mark
}

func (n *Navigator) clearer() (clearer, bool) {
	if !n.clear {
		return nil, false
	}
	c, ok := n.term.(clearer)
	return c, ok
}

func (n *Navigator) linesSince(mark int) int {
	if c, ok := n.clearer(); ok {
		return c.Lines() - mark
	}
	return 0
}

func (n *Navigator) readChoice(ctx context.Context, m *Menu) (string, error) {
	valid := make(map[string]bool, m.Len()+2)
	for _, t := range m.ValidTokens() {
		valid[t] = true
	}
	for {
		line, err := n.term.ReadLine(ctx, ChoicePrompt)
		if err != nil {
			return "", err
		}
		if token := strings.TrimSpace(line); valid[token] {
			return token, nil
		}
	}
}

func isInputFailure(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, console.ErrReadFailed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
