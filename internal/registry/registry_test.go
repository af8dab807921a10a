package registry

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanenv/internal/types"
)

func TestResolveMinimalLinux(t *testing.T) {
	reg := New()
	names, err := reg.Resolve(types.ProfileMinimal, types.PlatformLinux)
	require.NoError(t, err)

	expected := []string{
		"gcc", "make", "autoconf", "automake", "libtool", "pkg-config",
		"openssl", "libpcap", "pcre2", "libssh2", "zlib", "lua",
	}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Fatalf("unexpected dependency order (-want +got):\n%s", diff)
	}
}

func TestResolvePreservesDeclaredOrder(t *testing.T) {
	reg := New()
	for _, profile := range reg.Profiles() {
		names, err := reg.Resolve(profile.ID, types.PlatformDarwin)
		require.NoError(t, err)
		if diff := cmp.Diff(profile.Required, names); diff != "" {
			t.Fatalf("profile %s reordered dependencies (-want +got):\n%s", profile.ID, diff)
		}
	}
}

func TestResolveStaticPlatformExtras(t *testing.T) {
	reg := New()

	linux, err := reg.Resolve(types.ProfileStatic, types.PlatformLinux)
	require.NoError(t, err)
	assert.Contains(t, linux, "musl-gcc")
	assert.Equal(t, "musl-gcc", linux[len(linux)-1], "platform extras append after required names")

	darwin, err := reg.Resolve(types.ProfileStatic, types.PlatformDarwin)
	require.NoError(t, err)
	assert.NotContains(t, darwin, "musl-gcc")
}

func TestMinimalHasNoStaticExtras(t *testing.T) {
	reg := New()
	names, err := reg.Resolve(types.ProfileMinimal, types.PlatformLinux)
	require.NoError(t, err)
	assert.NotContains(t, names, "musl-gcc")
	assert.NotContains(t, names, "mingw-w64")
}

func TestResolveUnknownProfile(t *testing.T) {
	reg := New()
	_, err := reg.Resolve(types.ProfileID("nonexistent-profile"), types.PlatformLinux)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "nonexistent-profile")
}

func TestProfilesListsClosedEnumeration(t *testing.T) {
	reg := New()
	var ids []types.ProfileID
	for _, profile := range reg.Profiles() {
		ids = append(ids, profile.ID)
	}
	expected := []types.ProfileID{
		types.ProfileDefault,
		types.ProfileMinimal,
		types.ProfileStatic,
		types.ProfileCrossWindows,
		types.ProfileRelease,
	}
	if diff := cmp.Diff(expected, ids); diff != "" {
		t.Fatalf("unexpected profile listing (-want +got):\n%s", diff)
	}
}

func TestStaticFlagsMergeAmbientLDFLAGS(t *testing.T) {
	reg := New()
	profile, err := reg.Get(types.ProfileStatic)
	require.NoError(t, err)
	require.Contains(t, profile.ExtraConfigureFlags, "--enable-static")
	assert.Contains(t, profile.ExtraConfigureFlags, `"LDFLAGS=-static ${LDFLAGS:-}"`,
		"static linking must extend LDFLAGS, not replace the derived -L tokens")
}

func TestCrossWindowsCarriesCrossToolchain(t *testing.T) {
	reg := New()
	names, err := reg.Resolve(types.ProfileCrossWindows, types.PlatformLinux)
	require.NoError(t, err)
	assert.Contains(t, names, "mingw-w64")
}
