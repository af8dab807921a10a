package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ExecRunnerAdapter runs external programs with the process environment
// plus an overlay of derived variables, stdio passed through.
type ExecRunnerAdapter struct{}

func NewExecRunnerAdapter() ExecRunnerAdapter {
	return ExecRunnerAdapter{}
}

func (a ExecRunnerAdapter) Run(ctx context.Context, path string, args []string, extraEnv map[string]string, workDir string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = workDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	for name, value := range extraEnv {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", name, value))
	}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("%s exited with status %d", path, exitErr.ExitCode())).
				WithCause(err)
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to run %s", path)).
			WithCause(err)
	}
	return nil
}

// OSAmbientAdapter snapshots the real process environment.
type OSAmbientAdapter struct{}

func NewOSAmbientAdapter() OSAmbientAdapter {
	return OSAmbientAdapter{}
}

func (a OSAmbientAdapter) Snapshot() map[string]string {
	snapshot := map[string]string{}
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				snapshot[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	return snapshot
}
