package types

// DependencyDescriptor holds the resolved install locations for one native
// library or toolchain component.  The paths are environment-supplied (the
// system package manager's install layout); nothing here is computed beyond
// carrying them around.  A descriptor is immutable once loaded and is
// identified by Name within a catalog.
type DependencyDescriptor struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	Prefix        string `yaml:"prefix"`
	HeaderPath    string `yaml:"header_path,omitempty"`
	LibraryPath   string `yaml:"library_path,omitempty"`
	PkgConfigPath string `yaml:"pkg_config_path,omitempty"`

	// RuntimeDataPaths lists interpreter or scripting-engine module
	// directories contributed by this dependency (e.g. Lua module dirs).
	// RuntimeNativePaths lists the compiled/native counterparts.
	RuntimeDataPaths   []string `yaml:"runtime_data_paths,omitempty"`
	RuntimeNativePaths []string `yaml:"runtime_native_paths,omitempty"`

	// MinVersion, when set, is the oldest version the build environment
	// accepts for this dependency.  Checked by catalog validation.
	MinVersion string `yaml:"min_version,omitempty"`
}

// Profile is a named, fixed bundle of dependencies and configure flags
// representing one build scenario.  Profiles are statically defined; there
// is no runtime creation.
type Profile struct {
	ID ProfileID

	// Required lists catalog names in declaration order.  The order is a
	// contract: derived search-path variables join paths in exactly this
	// order so repeated materializations are byte-identical.
	Required []string

	// PlatformExtra maps a platform tag to additional catalog names
	// appended after Required.  Expressed as data so the registry stays
	// declarative and testable under any platform tag.
	PlatformExtra map[PlatformTag][]string

	// ExtraConfigureFlags are passed through to the wrapped tool's
	// configure invocation verbatim.
	ExtraConfigureFlags []string

	Description string
}
