package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ScriptWriterAdapter writes generated wrapper scripts into a target
// directory, marked executable.
type ScriptWriterAdapter struct{}

func NewScriptWriterAdapter() ScriptWriterAdapter {
	return ScriptWriterAdapter{}
}

func (a ScriptWriterAdapter) WriteScript(dir string, name string, text string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("script name is empty")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create script directory").
			WithCause(err)
	}
	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve script path").
			WithCause(err)
	}
	if err := os.WriteFile(path, []byte(text), 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write script").
			WithCause(err)
	}
	return path, nil
}
