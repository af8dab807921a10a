package adapters

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()
	writer := NewScriptWriterAdapter()

	path, err := writer.WriteScript(dir, "scanenv-configure.sh", "#!/bin/sh\necho ok\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scanenv-configure.sh"), path)
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho ok\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0o111, "script must be executable")
	}
}

func TestWriteScriptCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "scripts")
	writer := NewScriptWriterAdapter()

	path, err := writer.WriteScript(dir, "scanenv-build.sh", "#!/bin/sh\n")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteScriptRelativeDirYieldsAbsolutePath(t *testing.T) {
	base := t.TempDir()
	t.Chdir(base)
	writer := NewScriptWriterAdapter()

	path, err := writer.WriteScript("src", "scanenv-build.sh", "#!/bin/sh\n")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.FileExists(t, path)
}

func TestWriteScriptEmptyDirDefaultsToCurrent(t *testing.T) {
	t.Chdir(t.TempDir())
	writer := NewScriptWriterAdapter()

	path, err := writer.WriteScript("", "scanenv-configure.sh", "#!/bin/sh\n")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestWriteScriptEmptyName(t *testing.T) {
	writer := NewScriptWriterAdapter()
	_, err := writer.WriteScript(t.TempDir(), "  ", "#!/bin/sh\n")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
