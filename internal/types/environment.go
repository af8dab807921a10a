package types

// ResolvedEnvironment is the outcome of materializing a profile on a
// platform: every dependency resolved to its descriptor plus the derived
// environment variables a shell or build invocation needs.  Built fresh per
// invocation and never mutated afterwards; not persisted anywhere.
type ResolvedEnvironment struct {
	Profile  ProfileID
	Platform PlatformTag

	// Order preserves the registry's declared dependency order.  Deps is
	// keyed by name for lookup; iteration must go through Order.
	Order []string
	Deps  map[string]DependencyDescriptor

	// Vars maps environment variable name to its fully derived value,
	// ambient value already merged in.
	Vars map[string]string

	// VarOrder lists the keys of Vars in render order so export output is
	// stable across invocations.
	VarOrder []string

	ExtraConfigureFlags []string
}

// Var returns the derived value for name, or the empty string when the
// materialization produced no entry for it.
func (e ResolvedEnvironment) Var(name string) string {
	return e.Vars[name]
}
