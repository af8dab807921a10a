// Package env turns a profile selection into the concrete environment
// variable set a shell or build invocation needs to locate the profile's
// dependencies.  Materialization is a pure function of (profile, platform,
// catalog, ambient snapshot); the ambient process environment is passed in
// explicitly and the result is returned as a value for the caller to apply.
package env

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"scanenv/internal/catalog"
	"scanenv/internal/registry"
	"scanenv/internal/shared"
	"scanenv/internal/types"
)

// Derived variable names.  These are a contract: downstream build tooling
// reads them verbatim.
const (
	VarPkgConfigPath     = "PKG_CONFIG_PATH"
	VarIncludePath       = "C_INCLUDE_PATH"
	VarLibraryPath       = "LIBRARY_PATH"
	VarInterpreterPath   = "GUILE_LOAD_PATH"
	VarInterpreterCPath  = "GUILE_LOAD_COMPILED_PATH"
	VarScriptEnginePath  = "LUA_PATH"
	VarScriptEngineCPath = "LUA_CPATH"
	VarCFlags            = "CFLAGS"
	VarLDFlags           = "LDFLAGS"
)

// varOrder fixes the render order of derived variables.
var varOrder = []string{
	VarPkgConfigPath,
	VarIncludePath,
	VarLibraryPath,
	VarInterpreterPath,
	VarInterpreterCPath,
	VarScriptEnginePath,
	VarScriptEngineCPath,
	VarCFlags,
	VarLDFlags,
}

type Materializer struct {
	Catalog  catalog.Catalog
	Registry registry.Registry
}

func NewMaterializer(cat catalog.Catalog, reg registry.Registry) Materializer {
	return Materializer{Catalog: cat, Registry: reg}
}

// Materialize resolves every dependency of the profile and derives the
// variable set.  Missing catalog entries are accumulated and reported in one
// aggregate error rather than failing on the first, since a human fixing
// the catalog wants the full list at once.  All-or-nothing: on any failure
// no partial environment is returned.
func (m Materializer) Materialize(id types.ProfileID, platform types.PlatformTag, ambient map[string]string) (types.ResolvedEnvironment, error) {
	names, err := m.Registry.Resolve(id, platform)
	if err != nil {
		return types.ResolvedEnvironment{}, err
	}

	deps := make(map[string]types.DependencyDescriptor, len(names))
	var missing []string
	for _, name := range names {
		entry, err := m.Catalog.Lookup(name)
		if err != nil {
			missing = append(missing, name)
			continue
		}
		deps[name] = entry
	}
	if len(missing) > 0 {
		return types.ResolvedEnvironment{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("profile %q has unresolved dependencies: %s", id, strings.Join(missing, ", ")))
	}

	profile, err := m.Registry.Get(id)
	if err != nil {
		return types.ResolvedEnvironment{}, err
	}

	resolved := types.ResolvedEnvironment{
		Profile:             id,
		Platform:            platform,
		Order:               names,
		Deps:                deps,
		Vars:                deriveVars(names, deps, platform, ambient),
		ExtraConfigureFlags: append([]string(nil), profile.ExtraConfigureFlags...),
	}
	resolved.VarOrder = presentVars(resolved.Vars)

	log.Debug().
		Str("profile", string(id)).
		Str("platform", string(platform)).
		Int("dependencies", len(names)).
		Msg("materialized environment")
	return resolved, nil
}

func deriveVars(order []string, deps map[string]types.DependencyDescriptor, platform types.PlatformTag, ambient map[string]string) map[string]string {
	var pkgConfig, headers, libs []string
	var interpData, interpNative, engineData, engineNative []string
	for _, name := range order {
		entry := deps[name]
		if entry.PkgConfigPath != "" {
			pkgConfig = append(pkgConfig, entry.PkgConfigPath)
		}
		if entry.HeaderPath != "" {
			headers = append(headers, entry.HeaderPath)
		}
		if entry.LibraryPath != "" {
			libs = append(libs, entry.LibraryPath)
		}
		switch name {
		case "lua":
			engineData = append(engineData, entry.RuntimeDataPaths...)
			engineNative = append(engineNative, entry.RuntimeNativePaths...)
		default:
			interpData = append(interpData, entry.RuntimeDataPaths...)
			interpNative = append(interpNative, entry.RuntimeNativePaths...)
		}
	}

	vars := map[string]string{}
	searchPath := func(key string, paths []string) {
		if len(paths) == 0 {
			return
		}
		vars[key] = shared.JoinSearchPath(platform, paths, ambient[key])
	}
	searchPath(VarPkgConfigPath, pkgConfig)
	searchPath(VarIncludePath, headers)
	searchPath(VarLibraryPath, libs)
	searchPath(VarInterpreterPath, interpData)
	searchPath(VarInterpreterCPath, interpNative)
	searchPath(VarScriptEnginePath, engineData)
	searchPath(VarScriptEngineCPath, engineNative)

	if len(headers) > 0 {
		vars[VarCFlags] = shared.JoinFlagTokens("-I", headers)
	}
	if len(libs) > 0 {
		vars[VarLDFlags] = shared.JoinFlagTokens("-L", libs)
	}
	return vars
}

// presentVars filters the canonical order down to variables that were
// actually derived, so empty categories produce no export line at all.
func presentVars(vars map[string]string) []string {
	var out []string
	for _, key := range varOrder {
		if _, ok := vars[key]; ok {
			out = append(out, key)
		}
	}
	// Guard against a derived key falling outside the canonical list.
	if len(out) != len(vars) {
		extra := make([]string, 0, len(vars)-len(out))
		known := map[string]struct{}{}
		for _, key := range out {
			known[key] = struct{}{}
		}
		for key := range vars {
			if _, ok := known[key]; !ok {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		out = append(out, extra...)
	}
	return out
}
