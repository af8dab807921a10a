package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"scanenv/internal/env"
	"scanenv/internal/script"
	"scanenv/internal/types"
)

// ScannerBinary is the fixed executable path inside the packaged build.
var ScannerBinary = filepath.Join(script.InstallPrefix, "bin", "nmap")

// Run dispatches a named app: the packaged scanner binary, or one of the
// generated wrapper scripts.  The resolved environment is applied to the
// child process only; the invoking process is never mutated.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	cat, err := s.effectiveCatalog(req.CatalogPath)
	if err != nil {
		return RunResult{}, err
	}
	materializer := env.NewMaterializer(cat, s.Registry)
	resolved, err := materializer.Materialize(req.Profile, req.Platform, s.Ambient.Snapshot())
	if err != nil {
		return RunResult{}, err
	}

	workDir := req.WorkDir
	if workDir == "" {
		workDir = "."
	}

	switch req.App {
	case types.AppScanner:
		return RunResult{}, s.Runner.Run(ctx, ScannerBinary, req.Args, resolved.Vars, workDir)
	case types.AppConfigure:
		return s.runScript(ctx, types.ScriptConfigure, resolved, workDir)
	case types.AppBuild:
		if err := s.checkBuildPrecondition(workDir); err != nil {
			return RunResult{}, err
		}
		return s.runScript(ctx, types.ScriptBuild, resolved, workDir)
	default:
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown app %q", req.App))
	}
}

// runScript writes the wrapper into workDir and executes it there, so the
// control-file guard and the wrapped tool's own scripts see the scanner
// source tree rather than the invoking process's directory.
func (s Service) runScript(ctx context.Context, kind types.ScriptKind, resolved types.ResolvedEnvironment, workDir string) (RunResult, error) {
	text, err := script.Generate(kind, resolved, s.Jobs)
	if err != nil {
		return RunResult{}, err
	}
	path, err := s.ScriptSink.WriteScript(workDir, scriptName(kind), text)
	if err != nil {
		return RunResult{}, err
	}
	log.Info().Str("script", path).Msg("running generated wrapper")
	if err := s.Runner.Run(ctx, path, nil, resolved.Vars, workDir); err != nil {
		return RunResult{ScriptPath: path}, err
	}
	return RunResult{ScriptPath: path}, nil
}

// checkBuildPrecondition rejects a build before configure has produced the
// control file.  The generated script carries the same guard for standalone
// use; checking here keeps the failure a single clean diagnostic with no
// build action started.
func (s Service) checkBuildPrecondition(workDir string) error {
	controlPath := filepath.Join(workDir, script.BuildControlFile)
	if _, err := os.Stat(controlPath); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no %s found in %s; run `scanenv run configure` first", script.BuildControlFile, workDir)).
			WithCause(err)
	}
	return nil
}

func scriptName(kind types.ScriptKind) string {
	return "scanenv-" + string(kind) + ".sh"
}
