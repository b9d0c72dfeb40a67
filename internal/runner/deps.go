package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/bartekus/purp/internal/config"
	"github.com/bartekus/purp/internal/execx"
	"github.com/bartekus/purp/internal/scanner"
)

// Deps contains the collaborators a Runner drives.
type Deps struct {
	Exec   execx.Executor
	Finder scanner.Finder
	Tools  config.Tools
	// OutputDir is where the compiler writes one directory per module.
	OutputDir string
	// Out receives the status lines.
	Out    io.Writer
	Logger *log.Logger
}
