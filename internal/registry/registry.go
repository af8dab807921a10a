// Package registry holds the closed set of build profiles.  A profile names
// the catalog entries one build scenario needs, in declaration order, plus
// platform-conditional extras and configure flags.
package registry

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"scanenv/internal/types"
)

// toolchain is the common compiler/build-driver/autotools set shared by
// every profile.  Order matters: derived path variables follow it verbatim.
var toolchain = []string{
	"gcc", "make", "autoconf", "automake", "libtool", "pkg-config",
}

var libraries = []string{
	"openssl", "libpcap", "pcre2", "libssh2", "zlib", "lua",
}

var profiles = map[types.ProfileID]types.Profile{
	types.ProfileDefault: {
		ID:          types.ProfileDefault,
		Description: "full development shell with all libraries and the orchestration interpreter",
		Required:    join(toolchain, []string{"binutils"}, libraries, []string{"guile"}),
	},
	types.ProfileMinimal: {
		ID:          types.ProfileMinimal,
		Description: "smallest set that still configures and builds (CI)",
		Required:    join(toolchain, libraries),
	},
	types.ProfileStatic: {
		ID:          types.ProfileStatic,
		Description: "static/portable binary build",
		Required:    join(toolchain, libraries),
		PlatformExtra: map[types.PlatformTag][]string{
			types.PlatformLinux: {"musl-gcc"},
		},
		// -static is prepended to the exported LDFLAGS so the derived -L
		// search paths survive the override.
		ExtraConfigureFlags: []string{"--enable-static", `"LDFLAGS=-static ${LDFLAGS:-}"`},
	},
	types.ProfileCrossWindows: {
		ID:                  types.ProfileCrossWindows,
		Description:         "Windows cross-compile from a Unix host",
		Required:            join(toolchain, []string{"binutils", "mingw-w64"}, libraries),
		ExtraConfigureFlags: []string{"--host=x86_64-w64-mingw32"},
	},
	types.ProfileRelease: {
		ID:          types.ProfileRelease,
		Description: "packaged build target",
		Required:    join(toolchain, []string{"binutils"}, libraries, []string{"guile"}),
	},
}

// ids fixes the listing order for Profiles.
var ids = []types.ProfileID{
	types.ProfileDefault,
	types.ProfileMinimal,
	types.ProfileStatic,
	types.ProfileCrossWindows,
	types.ProfileRelease,
}

type Registry struct{}

func New() Registry {
	return Registry{}
}

// Get returns the profile definition for id.
func (r Registry) Get(id types.ProfileID) (types.Profile, error) {
	profile, ok := profiles[id]
	if !ok {
		return types.Profile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown profile %q", id))
	}
	return profile, nil
}

// Resolve returns the ordered dependency-name list for a profile on a
// platform: the declared required names followed by the platform's extras.
// No deduplication, no reordering; later stages rely on this order to build
// byte-identical derived variables.
func (r Registry) Resolve(id types.ProfileID, platform types.PlatformTag) ([]string, error) {
	profile, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	names := append([]string(nil), profile.Required...)
	names = append(names, profile.PlatformExtra[platform]...)
	return names, nil
}

// Profiles returns every profile definition in fixed listing order.
func (r Registry) Profiles() []types.Profile {
	out := make([]types.Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, profiles[id])
	}
	return out
}

func join(groups ...[]string) []string {
	var out []string
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
