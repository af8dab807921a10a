// Package shared provides small formatting helpers used across multiple
// packages in the scanenv codebase.
package shared

import (
	"strings"

	"scanenv/internal/types"
)

// ListSeparator returns the search-path list separator for a platform tag.
// Hosts outside the linux/darwin enumeration get the semicolon convention.
func ListSeparator(platform types.PlatformTag) string {
	switch platform {
	case types.PlatformLinux, types.PlatformDarwin:
		return ":"
	default:
		return ";"
	}
}

// JoinSearchPath joins paths with the platform separator and appends the
// ambient value last, so newly contributed entries win in search order while
// the pre-existing ambient configuration stays reachable.  Empty segments
// are skipped.
func JoinSearchPath(platform types.PlatformTag, paths []string, ambient string) string {
	sep := ListSeparator(platform)
	var parts []string
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, p)
	}
	if strings.TrimSpace(ambient) != "" {
		parts = append(parts, ambient)
	}
	return strings.Join(parts, sep)
}

// JoinFlagTokens prefixes each path with a flag token (-I, -L) and joins
// with single spaces, preserving input order.
func JoinFlagTokens(token string, paths []string) string {
	var parts []string
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		parts = append(parts, token+p)
	}
	return strings.Join(parts, " ")
}

