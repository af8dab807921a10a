package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"scanenv/internal/types"
)

// CatalogFileAdapter reads a catalog overlay: a YAML list of dependency
// descriptors with the install paths the host's package manager actually
// produced.
type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

type catalogFile struct {
	Dependencies []types.DependencyDescriptor `yaml:"dependencies"`
}

func (a CatalogFileAdapter) LoadOverlay(path string) ([]types.DependencyDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	for _, entry := range parsed.Dependencies {
		if entry.Name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog entry without a name")
		}
	}
	return parsed.Dependencies, nil
}
