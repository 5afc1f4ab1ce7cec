package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/registrar"
	"github.com/aretw0/registrar/internal/importer"
	"github.com/aretw0/registrar/internal/logging"
	"github.com/aretw0/registrar/internal/presentation/tui"
	"github.com/aretw0/registrar/pkg/console"
	"github.com/google/uuid"
)

// RunSession opens the store, runs the startup import and drives one menu session.
// The store is closed on every path out of the session.
func RunSession(opts RunOptions) (err error) {
	cfg := opts.Config
	stdin, stdout, stderr := opts.Stdin, opts.Stdout, opts.Stderr
	interactive := stdin == nil && stdout == nil && tui.IsInteractive()
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := logging.ForSession(createLogger(cfg.Log.Debug, stderr), uuid.NewString())

	if cfg.UI.Banner && interactive {
		tui.PrintBanner(stdout, opts.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	store, err := OpenStore(sigCtx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close store: %w", cerr)
		}
	}()
	logger.Info("store opened", "driver", cfg.Store.Driver)

	consoleOpts := []console.Option{}
	if cfg.UI.Rich {
		render, rerr := tui.NewRenderer()
		if rerr != nil {
			logger.Warn("rich output disabled", "error", rerr)
		} else {
			consoleOpts = append(consoleOpts, console.WithRenderer(render))
		}
	}
	term := console.New(NewInterruptibleReader(stdin, sigCtx.Done()), stdout, consoleOpts...)

	app, err := registrar.New(store,
		registrar.WithConsole(term),
		registrar.WithLogger(logger),
		registrar.WithRichOutput(cfg.UI.Rich),
		registrar.WithClearScreen(cfg.UI.Clear),
	)
	if err != nil {
		return err
	}

	if cfg.Import.Path != "" {
		rows, err := importer.LoadFile(cfg.Import.Path)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := app.Import(sigCtx, rows); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		logger.Info("import finished", "path", cfg.Import.Path, "rows", len(rows))
	}

	runErr := app.Run(sigCtx)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	logCompletion(stdout, logger, runErr, sigCtx.Signal())

	return handleExecutionError(runErr)
}
