package env

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanenv/internal/catalog"
	"scanenv/internal/registry"
	"scanenv/internal/types"
)

func newMaterializer() Materializer {
	return NewMaterializer(catalog.Default(), registry.New())
}

func TestMaterializeIsDeterministic(t *testing.T) {
	m := newMaterializer()
	ambient := map[string]string{VarPkgConfigPath: "/ambient/pkgconfig"}

	first, err := m.Materialize(types.ProfileDefault, types.PlatformLinux, ambient)
	require.NoError(t, err)
	second, err := m.Materialize(types.ProfileDefault, types.PlatformLinux, ambient)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated materialization differs (-first +second):\n%s", diff)
	}
}

func TestMaterializePreservesAmbientValue(t *testing.T) {
	m := newMaterializer()
	resolved, err := m.Materialize(types.ProfileMinimal, types.PlatformLinux, map[string]string{
		VarLibraryPath: "/x",
	})
	require.NoError(t, err)

	value := resolved.Var(VarLibraryPath)
	assert.True(t, strings.HasSuffix(value, ":/x"), "ambient value must stay reachable, got %q", value)
	assert.NotEqual(t, "/x", value, "derived entries must precede the ambient value")
}

func TestMaterializeDependencyOrderMatchesRegistry(t *testing.T) {
	m := newMaterializer()
	resolved, err := m.Materialize(types.ProfileMinimal, types.PlatformLinux, nil)
	require.NoError(t, err)

	names, err := m.Registry.Resolve(types.ProfileMinimal, types.PlatformLinux)
	require.NoError(t, err)
	if diff := cmp.Diff(names, resolved.Order); diff != "" {
		t.Fatalf("order mismatch (-registry +resolved):\n%s", diff)
	}

	// Library paths inside LIBRARY_PATH follow the same order.
	var libPaths []string
	for _, name := range names {
		entry := resolved.Deps[name]
		if entry.LibraryPath != "" {
			libPaths = append(libPaths, entry.LibraryPath)
		}
	}
	assert.Equal(t, strings.Join(libPaths, ":"), resolved.Var(VarLibraryPath))
}

func TestMaterializeMinimalLinuxVariables(t *testing.T) {
	m := newMaterializer()
	resolved, err := m.Materialize(types.ProfileMinimal, types.PlatformLinux, nil)
	require.NoError(t, err)

	assert.Len(t, resolved.Order, 12)
	assert.NotContains(t, resolved.Order, "musl-gcc")

	for _, name := range []string{"openssl", "libpcap", "pcre2", "libssh2", "zlib", "lua"} {
		entry := resolved.Deps[name]
		assert.Contains(t, resolved.Var(VarIncludePath), entry.HeaderPath)
		assert.Contains(t, resolved.Var(VarLibraryPath), entry.LibraryPath)
		assert.Contains(t, resolved.Var(VarCFlags), "-I"+entry.HeaderPath)
		assert.Contains(t, resolved.Var(VarLDFlags), "-L"+entry.LibraryPath)
	}

	// Minimal has no orchestration interpreter, so no interpreter vars.
	assert.Empty(t, resolved.Var(VarInterpreterPath))
	assert.Empty(t, resolved.Var(VarInterpreterCPath))

	// The scripting engine contributes its module directories.
	assert.NotEmpty(t, resolved.Var(VarScriptEnginePath))
	assert.NotEmpty(t, resolved.Var(VarScriptEngineCPath))
}

func TestMaterializeDefaultCarriesInterpreterPaths(t *testing.T) {
	m := newMaterializer()
	resolved, err := m.Materialize(types.ProfileDefault, types.PlatformLinux, nil)
	require.NoError(t, err)
	assert.Contains(t, resolved.Var(VarInterpreterPath), "guile")
	assert.Contains(t, resolved.Var(VarInterpreterCPath), "site-ccache")
}

func TestMaterializeUnknownProfile(t *testing.T) {
	m := newMaterializer()
	_, err := m.Materialize(types.ProfileID("nonexistent-profile"), types.PlatformLinux, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestMaterializeAggregatesMissingDependencies(t *testing.T) {
	// A catalog stripped of two entries must report both names at once.
	stripped := catalog.New(nil)
	full := catalog.Default()
	for _, name := range full.Names() {
		if name == "openssl" || name == "zlib" {
			continue
		}
		entry, err := full.Lookup(name)
		require.NoError(t, err)
		stripped = stripped.Merge([]types.DependencyDescriptor{entry})
	}

	m := NewMaterializer(stripped, registry.New())
	_, err := m.Materialize(types.ProfileMinimal, types.PlatformLinux, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "openssl")
	assert.Contains(t, err.Error(), "zlib")
	assert.NotContains(t, err.Error(), "libpcap")
}

func TestMaterializeVarOrderIsStable(t *testing.T) {
	m := newMaterializer()
	resolved, err := m.Materialize(types.ProfileDefault, types.PlatformLinux, nil)
	require.NoError(t, err)

	expected := []string{
		VarPkgConfigPath, VarIncludePath, VarLibraryPath,
		VarInterpreterPath, VarInterpreterCPath,
		VarScriptEnginePath, VarScriptEngineCPath,
		VarCFlags, VarLDFlags,
	}
	if diff := cmp.Diff(expected, resolved.VarOrder); diff != "" {
		t.Fatalf("unexpected variable order (-want +got):\n%s", diff)
	}
}
