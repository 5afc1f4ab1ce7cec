package registrar

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/registrar/internal/students"
	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/console"
	"github.com/aretw0/registrar/pkg/domain"
	"github.com/aretw0/registrar/pkg/menu"
	"github.com/aretw0/registrar/pkg/ports"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// App is the high-level entry point of the registrar.
// It binds the record store operations to the menu tree and drives the session.
type App struct {
	store    ports.RecordStore
	console  *console.Console
	registry *binder.Registry
	service  *students.Service
	root     *menu.Menu
	logger   *slog.Logger
	rich     bool
	clear    bool
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithConsole sets the console used for menus, prompts and listings.
func WithConsole(c *console.Console) Option {
	return func(a *App) {
		a.console = c
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithRichOutput renders listings as tables through the console renderer.
func WithRichOutput(enabled bool) Option {
	return func(a *App) {
		a.rich = enabled
	}
}

// WithClearScreen erases the previous menu before the next render.
func WithClearScreen(enabled bool) Option {
	return func(a *App) {
		a.clear = enabled
	}
}

// New wires every operation to store and assembles the menu tree.
// It fails when an operation has no target or the tree is malformed.
func New(store ports.RecordStore, opts ...Option) (*App, error) {
	a := &App{
		store:    store,
		registry: binder.NewRegistry(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.console == nil {
		a.console = console.New(nil, nil)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a.service = students.NewService(store, a.console,
		students.WithLogger(a.logger),
		students.WithRichOutput(a.rich),
	)
	a.service.Register(a.registry)
	if missing := a.registry.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("operations without target: %v", missing)
	}

	a.root = students.BuildMenu(a.registry, a.service)
	if err := menu.Validate(a.root); err != nil {
		return nil, fmt.Errorf("invalid menu tree: %w", err)
	}
	return a, nil
}

// Menu returns the root menu.
func (a *App) Menu() *menu.Menu {
	return a.root
}

// Registry exposes the operation registry, e.g. to replace a target.
func (a *App) Registry() *binder.Registry {
	return a.registry
}

// Import bulk-loads rows through the bulk load operation.
func (a *App) Import(ctx context.Context, rows []domain.Student) error {
	return a.registry.Bind(binder.OpBulkLoad, binder.Literal(rows)).Invoke(ctx)
}

// Run drives the menu session until quit or until input ends.
func (a *App) Run(ctx context.Context) error {
	nav := menu.NewNavigator(a.root,
		menu.WithConsole(a.console),
		menu.WithLogger(a.logger),
		menu.WithClearScreen(a.clear),
	)
	a.logger.Debug("session started", "menu", a.root.Title)
	return nav.Run(ctx)
}
