package ports

import (
	"context"

	"scanenv/internal/types"
)

// CatalogSourcePort loads a catalog overlay file holding the package
// manager's resolved install paths.
type CatalogSourcePort interface {
	LoadOverlay(path string) ([]types.DependencyDescriptor, error)
}

// AmbientPort snapshots the ambient process environment.  Materialization
// takes the snapshot as an explicit input so it stays pure in tests.
type AmbientPort interface {
	Snapshot() map[string]string
}

// ScriptSinkPort writes generated script text into dir as an executable
// artifact and returns its absolute path.
type ScriptSinkPort interface {
	WriteScript(dir string, name string, text string) (string, error)
}

// RunnerPort executes an external program with an environment overlay,
// wiring the process's stdio through.  An empty workDir inherits the
// calling process's working directory.
type RunnerPort interface {
	Run(ctx context.Context, path string, args []string, extraEnv map[string]string, workDir string) error
}
