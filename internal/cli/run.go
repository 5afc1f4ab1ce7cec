package cli

import (
	"io"

	"github.com/aretw0/registrar/internal/config"
)

// RunOptions contains everything a session needs.
type RunOptions struct {
	Config  config.Config
	Version string

	// Nil streams default to the process standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
