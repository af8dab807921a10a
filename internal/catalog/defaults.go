package catalog

import (
	"path/filepath"

	"scanenv/internal/types"
)

// DefaultRoot is where the package manager installs per-dependency prefixes
// on a stock host.  A catalog overlay file replaces these entries when the
// real install layout differs.
const DefaultRoot = "/opt/scanenv/deps"

// Default returns the built-in catalog: the toolchain and native libraries
// needed to compile the scanner from source, one prefix per dependency.
func Default() Catalog {
	return New([]types.DependencyDescriptor{
		tool("gcc", "13.2.0", "10.0.0"),
		tool("make", "4.4.1", "4.0"),
		tool("autoconf", "2.72", ""),
		tool("automake", "1.16.5", ""),
		tool("libtool", "2.4.7", ""),
		tool("pkg-config", "0.29.2", "0.29"),
		tool("binutils", "2.42", ""),
		tool("musl-gcc", "1.2.5", ""),
		tool("mingw-w64", "11.0.1", ""),
		library("openssl", "3.0.13", "1.1.1"),
		library("libpcap", "1.10.4", "1.0.0"),
		library("pcre2", "10.43", ""),
		library("libssh2", "1.11.0", ""),
		library("zlib", "1.3.1", ""),
		luaEntry("5.4.6"),
		guileEntry("3.0.9"),
	})
}

func tool(name string, version string, minVersion string) types.DependencyDescriptor {
	prefix := filepath.Join(DefaultRoot, name+"-"+version)
	return types.DependencyDescriptor{
		Name:       name,
		Version:    version,
		Prefix:     prefix,
		MinVersion: minVersion,
	}
}

func library(name string, version string, minVersion string) types.DependencyDescriptor {
	prefix := filepath.Join(DefaultRoot, name+"-"+version)
	return types.DependencyDescriptor{
		Name:          name,
		Version:       version,
		Prefix:        prefix,
		HeaderPath:    filepath.Join(prefix, "include"),
		LibraryPath:   filepath.Join(prefix, "lib"),
		PkgConfigPath: filepath.Join(prefix, "lib", "pkgconfig"),
		MinVersion:    minVersion,
	}
}

// luaEntry carries the scripting-engine module directories on top of the
// usual library layout.
func luaEntry(version string) types.DependencyDescriptor {
	entry := library("lua", version, "5.3.0")
	entry.RuntimeDataPaths = []string{filepath.Join(entry.Prefix, "share", "lua", "5.4")}
	entry.RuntimeNativePaths = []string{filepath.Join(entry.Prefix, "lib", "lua", "5.4")}
	return entry
}

// guileEntry is the build-orchestration interpreter; its module and
// compiled-module directories feed the interpreter search-path variables.
func guileEntry(version string) types.DependencyDescriptor {
	entry := library("guile", version, "")
	entry.RuntimeDataPaths = []string{filepath.Join(entry.Prefix, "share", "guile", "3.0")}
	entry.RuntimeNativePaths = []string{filepath.Join(entry.Prefix, "lib", "guile", "3.0", "site-ccache")}
	return entry
}
