// Package catalog is the static registry mapping symbolic dependency names
// to concrete installable descriptors.  Entries carry environment-supplied
// install paths; the only logic here is name lookup and validation.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"scanenv/internal/types"
)

type Catalog struct {
	entries map[string]types.DependencyDescriptor
}

func New(entries []types.DependencyDescriptor) Catalog {
	byName := make(map[string]types.DependencyDescriptor, len(entries))
	for _, entry := range entries {
		byName[entry.Name] = entry
	}
	return Catalog{entries: byName}
}

// Lookup resolves a symbolic dependency name to its descriptor.  A miss is
// a configuration-authoring error, surfaced with the offending name.
func (c Catalog) Lookup(name string) (types.DependencyDescriptor, error) {
	entry, ok := c.entries[name]
	if !ok {
		return types.DependencyDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown dependency %q", name))
	}
	return entry, nil
}

// Has reports whether name is registered without resolving it.
func (c Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Names returns all registered names, sorted for stable inspection output.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a copy of the catalog with overlay entries replacing or
// extending the built-in ones.  The receiver is left untouched.
func (c Catalog) Merge(overlay []types.DependencyDescriptor) Catalog {
	merged := make(map[string]types.DependencyDescriptor, len(c.entries)+len(overlay))
	for name, entry := range c.entries {
		merged[name] = entry
	}
	for _, entry := range overlay {
		merged[entry.Name] = entry
	}
	return Catalog{entries: merged}
}

// Validate checks structural invariants of every entry: name and prefix are
// set, the version parses as a Debian-style version, and when a minimum
// version is declared the entry meets it.
func (c Catalog) Validate(ctx context.Context) error {
	for _, name := range c.Names() {
		entry := c.entries[name]
		assert.NotEmpty(ctx, entry.Name, "catalog entry name must be set")
		assert.NotEmpty(ctx, entry.Prefix, "catalog entry prefix must be set")
		if strings.TrimSpace(entry.Version) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("catalog entry %q has no version", name))
		}
		current, err := debversion.NewVersion(entry.Version)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("catalog entry %q version %q is not parseable", name, entry.Version)).
				WithCause(err)
		}
		if strings.TrimSpace(entry.MinVersion) == "" {
			continue
		}
		minimum, err := debversion.NewVersion(entry.MinVersion)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("catalog entry %q min_version %q is not parseable", name, entry.MinVersion)).
				WithCause(err)
		}
		if current.LessThan(minimum) {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("catalog entry %q version %s is below minimum %s", name, entry.Version, entry.MinVersion))
		}
	}
	return nil
}
