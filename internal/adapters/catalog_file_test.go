package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `dependencies:
  - name: openssl
    version: "3.2.1"
    prefix: /usr/local/ssl
    header_path: /usr/local/ssl/include
    library_path: /usr/local/ssl/lib
    pkg_config_path: /usr/local/ssl/lib/pkgconfig
  - name: lua
    version: "5.4.7"
    prefix: /usr/local/lua
    runtime_data_paths:
      - /usr/local/lua/share/lua/5.4
    runtime_native_paths:
      - /usr/local/lua/lib/lua/5.4
`

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	entries, err := NewCatalogFileAdapter().LoadOverlay(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "openssl", entries[0].Name)
	assert.Equal(t, "/usr/local/ssl/lib/pkgconfig", entries[0].PkgConfigPath)
	assert.Equal(t, []string{"/usr/local/lua/share/lua/5.4"}, entries[1].RuntimeDataPaths)
	assert.Equal(t, []string{"/usr/local/lua/lib/lua/5.4"}, entries[1].RuntimeNativePaths)
}

func TestLoadOverlayMissingFile(t *testing.T) {
	_, err := NewCatalogFileAdapter().LoadOverlay(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadOverlayBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dependencies: {not a list"), 0o644))

	_, err := NewCatalogFileAdapter().LoadOverlay(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadOverlayRejectsNamelessEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dependencies:\n  - version: \"1.0\"\n"), 0o644))

	_, err := NewCatalogFileAdapter().LoadOverlay(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
