package app

import (
	"fmt"
	"strings"

	"scanenv/internal/env"
	"scanenv/internal/types"
)

// Activate materializes a profile and renders the export lines plus a
// resolution summary for an interactive shell.  Nothing is exported here;
// the caller applies the returned value to its own process.  On failure no
// partial output is produced.
func (s Service) Activate(req ActivateRequest) (ActivateResult, error) {
	cat, err := s.effectiveCatalog(req.CatalogPath)
	if err != nil {
		return ActivateResult{}, err
	}

	materializer := env.NewMaterializer(cat, s.Registry)
	resolved, err := materializer.Materialize(req.Profile, req.Platform, s.Ambient.Snapshot())
	if err != nil {
		return ActivateResult{}, err
	}

	return ActivateResult{
		Environment: resolved,
		ExportLines: exportLines(resolved),
		Summary:     activationSummary(resolved),
	}, nil
}

func exportLines(resolved types.ResolvedEnvironment) []string {
	var lines []string
	for _, name := range resolved.VarOrder {
		lines = append(lines, fmt.Sprintf("export %s=%q", name, resolved.Vars[name]))
	}
	return lines
}

func activationSummary(resolved types.ResolvedEnvironment) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "profile %s (%s), %d dependencies:\n", resolved.Profile, resolved.Platform, len(resolved.Order))
	for _, name := range resolved.Order {
		entry := resolved.Deps[name]
		fmt.Fprintf(&sb, "  %-12s %s\n", name, entry.Version)
	}
	sb.WriteString("next: scanenv run configure && scanenv run build\n")
	return sb.String()
}
