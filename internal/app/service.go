package app

import (
	"runtime"

	"scanenv/internal/adapters"
	"scanenv/internal/catalog"
	"scanenv/internal/ports"
	"scanenv/internal/registry"
)

type Service struct {
	Catalog       catalog.Catalog
	Registry      registry.Registry
	CatalogSource ports.CatalogSourcePort
	Ambient       ports.AmbientPort
	ScriptSink    ports.ScriptSinkPort
	Runner        ports.RunnerPort

	// Jobs sizes the downstream parallel build.
	Jobs int
}

func NewService() Service {
	return Service{
		Catalog:       catalog.Default(),
		Registry:      registry.New(),
		CatalogSource: adapters.NewCatalogFileAdapter(),
		Ambient:       adapters.NewOSAmbientAdapter(),
		ScriptSink:    adapters.NewScriptWriterAdapter(),
		Runner:        adapters.NewExecRunnerAdapter(),
		Jobs:          runtime.NumCPU(),
	}
}

// effectiveCatalog returns the built-in catalog, with the overlay file
// merged in when one is configured.
func (s Service) effectiveCatalog(overlayPath string) (catalog.Catalog, error) {
	if overlayPath == "" {
		return s.Catalog, nil
	}
	overlay, err := s.CatalogSource.LoadOverlay(overlayPath)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return s.Catalog.Merge(overlay), nil
}
