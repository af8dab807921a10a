package app

import "scanenv/internal/types"

type ActivateRequest struct {
	Profile     types.ProfileID
	Platform    types.PlatformTag
	CatalogPath string
}

type ActivateResult struct {
	Environment types.ResolvedEnvironment

	// ExportLines are ready-to-eval shell export statements.
	ExportLines []string

	// Summary is the human-readable resolution report: dependency
	// versions plus suggested next commands.
	Summary string
}

type RunRequest struct {
	App         types.AppName
	Profile     types.ProfileID
	Platform    types.PlatformTag
	CatalogPath string

	// Args are forwarded to the packaged binary for AppScanner.
	Args []string

	// WorkDir is where wrapper scripts are written and where the build
	// control file is expected.  Empty means the current directory.
	WorkDir string
}

type RunResult struct {
	// ScriptPath is the generated wrapper path, empty for AppScanner.
	ScriptPath string
}

type ProfilesResult struct {
	Profiles []ProfileSummary
}

type ProfileSummary struct {
	ID           types.ProfileID
	Description  string
	Dependencies int
}

type CatalogRequest struct {
	CatalogPath string
	Validate    bool
}

type CatalogResult struct {
	Entries []types.DependencyDescriptor
}
